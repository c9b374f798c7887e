package schema

import "embed"

// MigrationsDir is the directory inside Migrations holding the goose files
const MigrationsDir = "migrations"

// Migrations contains the goose migrations for saved plans
//
//go:embed migrations/*.sql
var Migrations embed.FS
