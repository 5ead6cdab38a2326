// Package migrations embeds the SQL migrations for the PostgreSQL event
// log backend.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
