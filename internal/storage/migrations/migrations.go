// Package migrations embeds the goose migration scripts for the SQL-backed
// blob stores. SQLite and Postgres keep separate scripts because of the
// BLOB/BYTEA type difference.
package migrations

import "embed"

//go:embed sqlite/*.sql
var SQLite embed.FS

//go:embed postgres/*.sql
var Postgres embed.FS
