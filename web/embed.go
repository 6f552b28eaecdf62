// Package web embeds the default site: page skeletons, the project
// catalog and static assets. A site_dir in the configuration replaces it.
package web

import (
	"embed"
	"io/fs"
)

//go:embed all:site
var files embed.FS

// Site returns the embedded site rooted at its top directory
func Site() fs.FS {
	site, err := fs.Sub(files, "site")
	if err != nil {
		panic("embedded site missing: " + err.Error())
	}
	return site
}
