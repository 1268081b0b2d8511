// Package schema embeds the SQL that builds the sanctions-law database.
package schema

import "embed"

// FS contains the schema scripts, applied in file-name order.
//
//go:embed *.sql
var FS embed.FS
