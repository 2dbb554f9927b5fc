// Package migrations embeds the goose SQL files describing the relational
// schema this service expects.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
