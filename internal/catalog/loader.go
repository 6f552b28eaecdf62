// Package catalog loads the project catalog and decides which page
// populators apply to a request path.
package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"

	"akellar.dev/internal/models"
)

// maxCatalogSize bounds remote catalog responses
const maxCatalogSize = 8 << 20

// IsRemote reports whether source is fetched over HTTP
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// Load fetches the catalog from source in a single attempt.
// source is an http(s) URL, a directory of markdown files, or a JSON file.
func Load(ctx context.Context, source string) (*models.Catalog, error) {
	if IsRemote(source) {
		return loadRemote(ctx, source)
	}

	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", source, err)
	}
	if info.IsDir() {
		return LoadDir(os.DirFS(source), ".")
	}
	return LoadFile(source)
}

// LoadFile reads a JSON catalog from disk
func LoadFile(path string) (*models.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return models.ParseCatalog(data)
}

// LoadFS reads a JSON catalog from fsys
func LoadFS(fsys fs.FS, name string) (*models.Catalog, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", name, err)
	}
	return models.ParseCatalog(data)
}

func loadRemote(ctx context.Context, url string) (*models.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch catalog: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog body: %w", err)
	}
	return models.ParseCatalog(data)
}

// markdownProject is a project file's frontmatter
type markdownProject struct {
	models.Project `yaml:",inline"`
	Order          int    `yaml:"order"`
	Page           string `yaml:"page"`
}

// LoadDir builds a catalog from the *.md files directly under dir.
// Each file's frontmatter holds the record and its body becomes the
// long-form description. Keys default to the file name with an .html
// extension; entries are ordered by the order field, then by key.
func LoadDir(fsys fs.FS, dir string) (*models.Catalog, error) {
	matches, err := fs.Glob(fsys, filepath.ToSlash(filepath.Join(dir, "*.md")))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	type ordered struct {
		order int
		entry models.Entry
	}
	var items []ordered

	for _, name := range matches {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}

		var mp markdownProject
		body, err := frontmatter.Parse(bytes.NewReader(data), &mp)
		if err != nil {
			return nil, fmt.Errorf("failed to parse frontmatter in %s: %w", name, err)
		}

		key := mp.Page
		if key == "" {
			key = strings.TrimSuffix(filepath.Base(name), ".md") + ".html"
		}
		mp.Project.Body = strings.TrimSpace(string(body))
		items = append(items, ordered{order: mp.Order, entry: models.Entry{Key: key, Project: mp.Project}})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].order != items[j].order {
			return items[i].order < items[j].order
		}
		return items[i].entry.Key < items[j].entry.Key
	})

	entries := make([]models.Entry, len(items))
	for i, it := range items {
		entries[i] = it.entry
	}
	return models.NewCatalog(entries), nil
}
