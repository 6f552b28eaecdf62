package main

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"akellar.dev/internal/catalog"
	"akellar.dev/internal/config"
	"akellar.dev/internal/models"
	"akellar.dev/web"
)

// siteSources resolves the page skeletons and the catalog store.
// watchPath is empty when the catalog cannot be watched.
func siteSources(cfg *config.Config, logger *zap.Logger) (site fs.FS, store *catalog.Store, watchPath string) {
	if catalog.IsRemote(cfg.Catalog) {
		return siteFS(cfg), catalog.SourceStore(cfg.Catalog, cfg.CacheCatalog, logger), ""
	}

	source := cfg.Catalog
	if cfg.SiteDir != "" && !filepath.IsAbs(source) {
		source = filepath.Join(cfg.SiteDir, source)
	}

	// The embedded site carries its own catalog
	if cfg.SiteDir == "" {
		if _, err := os.Stat(source); os.IsNotExist(err) {
			embedded := web.Site()
			load := func(ctx context.Context) (*models.Catalog, error) {
				return catalog.LoadFS(embedded, cfg.Catalog)
			}
			return embedded, catalog.NewStore(load, cfg.CacheCatalog, logger), ""
		}
	}

	return siteFS(cfg), catalog.SourceStore(source, cfg.CacheCatalog, logger), source
}

func siteFS(cfg *config.Config) fs.FS {
	if cfg.SiteDir == "" {
		return web.Site()
	}
	return os.DirFS(cfg.SiteDir)
}
