package migrations

import "embed"

// FS contains embedded SQLite migrations for signup storage.
//
//go:embed *.sql
var FS embed.FS
