package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/osse101/FactoryPlanner_Go/internal/database"
)

const setupTimeout = 2 * time.Minute

// dbSettings are the connection settings read from the environment
type dbSettings struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

func settingsFromEnv() dbSettings {
	return dbSettings{
		Host:     envOr("DB_HOST", "localhost"),
		Port:     envOr("DB_PORT", "5432"),
		User:     envOr("DB_USER", "postgres"),
		Password: envOr("DB_PASSWORD", "postgres"),
		Name:     envOr("DB_NAME", "factoryplanner"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// connString returns the URL for database on the configured server
func (s dbSettings) connString(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", s.User, s.Password, s.Host, s.Port, database)
}

func main() {
	if err := newSetupCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newSetupCommand() *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create the planner database and apply migrations",
		Long: `Create the database named by DB_NAME if it does not exist, then apply
the embedded schema migrations. With --reset the database is dropped
first, which deletes every saved plan.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "No .env file found, using environment variables")
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), setupTimeout)
			defer cancel()
			return runSetup(ctx, cmd, settingsFromEnv(), reset)
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "drop and recreate the database before migrating")
	return cmd
}

func runSetup(ctx context.Context, cmd *cobra.Command, settings dbSettings, reset bool) error {
	out := cmd.OutOrStdout()

	conn, err := pgx.Connect(ctx, settings.connString("postgres"))
	if err != nil {
		return fmt.Errorf("unable to connect to postgres database: %w", err)
	}
	defer conn.Close(context.Background())

	ident := pgx.Identifier{settings.Name}.Sanitize()

	if reset {
		fmt.Fprintf(out, "Dropping database %s...\n", settings.Name)
		_, err := conn.Exec(ctx, `
			SELECT pg_terminate_backend(pid)
			FROM pg_stat_activity
			WHERE datname = $1 AND pid <> pg_backend_pid()`, settings.Name)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to terminate connections: %v\n", err)
		}
		if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+ident); err != nil {
			return fmt.Errorf("failed to drop database: %w", err)
		}
	}

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", settings.Name).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		fmt.Fprintf(out, "Database %s already exists.\n", settings.Name)
	} else {
		fmt.Fprintf(out, "Creating database %s...\n", settings.Name)
		if _, err := conn.Exec(ctx, "CREATE DATABASE "+ident); err != nil {
			return fmt.Errorf("failed to create database: %w", err)
		}
	}

	pool, err := database.NewPool(ctx, settings.connString(settings.Name), database.PoolConfig{
		MaxConns:    2,
		MaxIdleTime: time.Minute,
		MaxLifetime: 5 * time.Minute,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	fmt.Fprintln(out, "Running migrations...")
	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}
	fmt.Fprintln(out, "Migrations completed successfully.")
	return nil
}
