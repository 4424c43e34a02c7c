package web

import (
	"embed"
)

//go:embed static/*.css
var staticFS embed.FS
