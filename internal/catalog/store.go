package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"akellar.dev/internal/models"
)

// LoadFunc loads a fresh catalog
type LoadFunc func(ctx context.Context) (*models.Catalog, error)

// Store hands out the current immutable catalog.
// With caching disabled every Get performs a fresh load.
type Store struct {
	load   LoadFunc
	cache  bool
	logger *zap.Logger

	current atomic.Pointer[models.Catalog]
}

// NewStore creates a Store around load
func NewStore(load LoadFunc, cache bool, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{load: load, cache: cache, logger: logger}
}

// SourceStore creates a Store that loads from a path or URL
func SourceStore(source string, cache bool, logger *zap.Logger) *Store {
	return NewStore(func(ctx context.Context) (*models.Catalog, error) {
		return Load(ctx, source)
	}, cache, logger)
}

// Get returns the catalog, loading it when nothing is cached
func (s *Store) Get(ctx context.Context) (*models.Catalog, error) {
	if s.cache {
		if cat := s.current.Load(); cat != nil {
			return cat, nil
		}
	}

	cat, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache {
		s.current.Store(cat)
	}
	return cat, nil
}

// Invalidate drops the cached catalog so the next Get reloads
func (s *Store) Invalidate() {
	s.current.Store(nil)
}

// Watch invalidates the cache whenever path changes on disk.
// It blocks until ctx is done. Remote sources cannot be watched.
func (s *Store) Watch(ctx context.Context, path string) error {
	if IsRemote(path) {
		return fmt.Errorf("cannot watch remote catalog %s", path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent so editors that replace the file are still seen
	target := filepath.Clean(path)
	dir := target
	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		dir = filepath.Dir(target)
	}
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	s.logger.Info("Watching catalog", zap.String("path", target))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if dir != target && filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				s.logger.Debug("Catalog changed", zap.String("event", event.String()))
				s.Invalidate()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("Catalog watcher error", zap.Error(err))
		}
	}
}
