package migrations

import "embed"

// FS embeds the SQL migrations applied by the migrate command.
//
//go:embed *.sql
var FS embed.FS

const Version = 1
