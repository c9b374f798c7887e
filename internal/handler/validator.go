package handler

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync/atomic"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/FactoryPlanner_Go/internal/config"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// Plan amount bounds for the planamount tag, stored as float64 bits
var (
	minPlanAmountBits atomic.Uint64
	maxPlanAmountBits atomic.Uint64
)

func init() {
	SetPlanAmountBounds(config.DefaultMinPlanAmount, config.DefaultMaxPlanAmount)
}

// SetPlanAmountBounds changes the range enforced by the planamount tag.
// An unusable maximum falls back to the default; an unusable minimum, or one
// above the maximum, falls back to the default minimum capped at the maximum.
func SetPlanAmountBounds(minimum, maximum float64) {
	if !domainAmount(maximum) {
		maximum = config.DefaultMaxPlanAmount
	}
	if !domainAmount(minimum) || minimum > maximum {
		minimum = math.Min(config.DefaultMinPlanAmount, maximum)
	}
	minPlanAmountBits.Store(math.Float64bits(minimum))
	maxPlanAmountBits.Store(math.Float64bits(maximum))
}

func domainAmount(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// MinPlanAmount returns the lower bound enforced by the planamount tag
func MinPlanAmount() float64 {
	return math.Float64frombits(minPlanAmountBits.Load())
}

// MaxPlanAmount returns the upper bound enforced by the planamount tag
func MaxPlanAmount() float64 {
	return math.Float64frombits(maxPlanAmountBits.Load())
}

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Register custom validation for plan amounts
	_ = v.RegisterValidation("planamount", validatePlanAmount)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// This prevents leaking internal struct names and provides cleaner error messages
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "planamount":
			errs[field] = fmt.Sprintf("Must be between %g and %g", MinPlanAmount(), MaxPlanAmount())
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validatePlanAmount accepts finite amounts in [MinPlanAmount, MaxPlanAmount]
func validatePlanAmount(fl validator.FieldLevel) bool {
	amount := fl.Field().Float()
	if !domainAmount(amount) {
		return false
	}
	return amount >= MinPlanAmount() && amount <= MaxPlanAmount()
}
