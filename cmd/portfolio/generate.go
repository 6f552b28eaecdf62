package main

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"akellar.dev/internal/handlers"
	"akellar.dev/internal/models"
	"akellar.dev/internal/render"
)

// catalogFile is the name the client-side scripts fetch the catalog from
const catalogFile = "projects-data.json"

var generateCmd = &cobra.Command{
	Use:   "generate <output-dir>",
	Short: "Render the portfolio as a static site",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		site, store, _ := siteSources(cfg, logger)

		cat, err := store.Get(cmd.Context())
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}

		n, err := generateSite(cmd.Context(), site, cat, args[0], handlers.DefaultRenderOptions(cfg), logger)
		if err != nil {
			return err
		}
		logger.Info("Site generated", zap.String("output", args[0]), zap.Int("pages", n))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

// generateSite copies the site assets to outDir and writes every page
// populated from cat. It returns the number of pages written.
func generateSite(ctx context.Context, site fs.FS, cat *models.Catalog, outDir string, opts render.Options, logger *zap.Logger) (int, error) {
	pages, err := copyAssets(site, outDir)
	if err != nil {
		return 0, err
	}

	for _, key := range cat.Keys() {
		if !pages[key] && fs.ValidPath(key) && path.Base(key) == key {
			pages[key] = true
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for name := range pages {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := render.BuildPage(site, cat, "/"+name, opts)
			if err != nil {
				return fmt.Errorf("building %s: %w", name, err)
			}
			var buf bytes.Buffer
			if err := doc.Render(&buf); err != nil {
				return fmt.Errorf("rendering %s: %w", name, err)
			}
			logger.Debug("Page written", zap.String("page", name))
			return os.WriteFile(filepath.Join(outDir, name), buf.Bytes(), 0o644)
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	data, err := cat.MarshalJSON()
	if err != nil {
		return 0, fmt.Errorf("encoding catalog: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, catalogFile), data, 0o644); err != nil {
		return 0, err
	}

	return len(pages), nil
}

// copyAssets mirrors every file of site into outDir except top-level
// pages, which it returns by name for rendering.
func copyAssets(site fs.FS, outDir string) (map[string]bool, error) {
	pages := make(map[string]bool)

	err := fs.WalkDir(site, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(outDir, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if !strings.Contains(p, "/") && strings.HasSuffix(p, ".html") {
			pages[p] = true
			return nil
		}
		if p == catalogFile {
			return nil
		}
		data, err := fs.ReadFile(site, p)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
	if err != nil {
		return nil, fmt.Errorf("copying site: %w", err)
	}
	return pages, nil
}
