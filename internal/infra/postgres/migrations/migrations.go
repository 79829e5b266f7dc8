package migrations

import "github.com/uptrace/bun/migrate"

// Migrations holds the schema steps; each file registers one in init.
var Migrations = migrate.NewMigrations()
