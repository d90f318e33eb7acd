// Package migrations holds the schema of the carts and items tables.
// Both scripts are idempotent and applied when a store is opened.
package migrations

import _ "embed"

//go:embed 01_carts_items.up.sql
var Postgres string

//go:embed sqlite/01_carts_items.up.sql
var SQLite string
