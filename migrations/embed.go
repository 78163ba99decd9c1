// Package migrations embeds the goose SQL migrations so the server and
// the migrate command can apply them without the source tree.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
