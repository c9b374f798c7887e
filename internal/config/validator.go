package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
	"CATALOG_PATH",
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// envWarning flags a setting that is legal but probably a mistake
type envWarning struct {
	applies func() bool
	message string
}

var envWarnings = []envWarning{
	{
		applies: func() bool { return os.Getenv("DB_PASSWORD") == "change_this_secure_password" },
		message: "DB_PASSWORD appears to be using the example value - please use a secure password",
	},
	{
		applies: func() bool { return os.Getenv("API_KEY") == "generate_with_openssl_rand_hex_32" },
		message: "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32",
	},
	{
		applies: func() bool { return os.Getenv("BLOB_ACCESS_KEY") == "" || os.Getenv("BLOB_SECRET_KEY") == "" },
		message: "BLOB_ACCESS_KEY/BLOB_SECRET_KEY not set - plan documents are kept in memory and lost on restart",
	},
	{
		applies: func() bool {
			digits, err := strconv.Atoi(os.Getenv("PLAN_ROUNDING_DIGITS"))
			return err == nil && digits > maxMeaningfulDigits
		},
		message: fmt.Sprintf("PLAN_ROUNDING_DIGITS above %d exceeds float64 precision - rates are stored unrounded beyond that", maxMeaningfulDigits),
	},
	{
		applies: func() bool {
			age, err := time.ParseDuration(os.Getenv("ORPHAN_SWEEP_MIN_AGE"))
			return err == nil && age < time.Minute
		},
		message: "ORPHAN_SWEEP_MIN_AGE under one minute may delete documents of plans that are still being saved",
	},
}

// maxMeaningfulDigits is the number of fractional digits float64 rates can carry
const maxMeaningfulDigits = 15

// ValidateEnvWithWarnings runs ValidateEnv and returns warnings for settings
// that are accepted but look wrong
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, w := range envWarnings {
		if w.applies() {
			warnings = append(warnings, w.message)
		}
	}
	return warnings, nil
}
