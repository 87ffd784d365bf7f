// Package web embeds the single-page UI served at "/".
package web

import "embed"

// FS holds index.html and the static/ assets it references.
//
//go:embed index.html static
var FS embed.FS
