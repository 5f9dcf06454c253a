package static

import "embed"

// FS exposes the activity signup front-end for HTTP serving.
//
//go:embed index.html *.css *.js
var FS embed.FS
