// Package migrations embeds the goose schema migrations for each
// supported backing store dialect.
package migrations

import "embed"

//go:embed sqlite/*.sql
var Sqlite embed.FS

//go:embed postgres/*.sql
var Postgres embed.FS
