package web

import (
	"embed"
	"io/fs"
	"log"
)

//go:embed static
var content embed.FS

// StaticFS returns the static file system.
func StaticFS() fs.FS {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		log.Fatalf("failed to create static sub-filesystem: %v", err)
	}
	return sub
}

// IndexHTML returns the scanner page.
func IndexHTML() []byte {
	page, err := content.ReadFile("static/index.html")
	if err != nil {
		log.Fatalf("failed to read embedded index page: %v", err)
	}
	return page
}
