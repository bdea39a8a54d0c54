// Package earlyaccess embeds the database migrations of the placeholder
// backend so the binary can apply them without shipping SQL files.
package earlyaccess

import "embed"

// Migrations holds the goose migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
