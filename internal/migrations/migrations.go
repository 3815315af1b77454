// Package migrations embeds the SQL files that create the tracker schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
