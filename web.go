// Package timesplit embeds the planner's browser client.
package timesplit

import "embed"

// WebFS holds the static client form served by the HTTP server.
//
//go:embed web
var WebFS embed.FS
