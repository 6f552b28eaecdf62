package render

import (
	"bytes"
	"errors"
	"io/fs"
	"path"

	"akellar.dev/internal/catalog"
	"akellar.dev/internal/dom"
	"akellar.dev/internal/models"
)

const (
	// IndexPage is served for an empty final path segment
	IndexPage = "index.html"
	// ProjectPage is the shared skeleton for catalog entries without
	// their own file
	ProjectPage = "project.html"
)

// Skeleton returns the unpopulated page for a final path segment
func Skeleton(site fs.FS, name string, cat *models.Catalog) ([]byte, error) {
	file := name
	if file == "" {
		file = IndexPage
	}
	if !fs.ValidPath(file) || path.Base(file) != file {
		return nil, fs.ErrNotExist
	}

	data, err := fs.ReadFile(site, file)
	if err == nil {
		return data, nil
	}
	if errors.Is(err, fs.ErrNotExist) && cat.Has(name) {
		return fs.ReadFile(site, ProjectPage)
	}
	return nil, err
}

// BuildPage parses the skeleton for urlPath and populates it.
// A nil catalog leaves the page as it is in the site.
func BuildPage(site fs.FS, cat *models.Catalog, urlPath string, opts Options) (*dom.Document, error) {
	name := catalog.PageName(urlPath)
	skeleton, err := Skeleton(site, name, cat)
	if err != nil {
		return nil, err
	}

	doc, err := dom.Parse(bytes.NewReader(skeleton))
	if err != nil {
		return nil, err
	}

	if cat != nil {
		Populate(doc, cat, catalog.ResolvePage(urlPath, cat), opts)
	}
	return doc, nil
}
