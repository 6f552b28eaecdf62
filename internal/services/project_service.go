package services

import (
	"context"
	"fmt"

	"akellar.dev/internal/catalog"
	"akellar.dev/internal/models"
)

// ProjectService handles project-related operations
type ProjectService struct {
	store *catalog.Store
}

// NewProjectService creates a new ProjectService
func NewProjectService(store *catalog.Store) *ProjectService {
	return &ProjectService{store: store}
}

// Catalog returns the current catalog
func (s *ProjectService) Catalog(ctx context.Context) (*models.Catalog, error) {
	return s.store.Get(ctx)
}

// GetAll returns all projects in catalog order
func (s *ProjectService) GetAll(ctx context.Context) ([]models.Entry, error) {
	cat, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	return cat.Entries(), nil
}

// GetByID returns a specific project by its page filename
func (s *ProjectService) GetByID(ctx context.Context, id string) (*models.Entry, error) {
	cat, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	project, ok := cat.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	return &models.Entry{Key: id, Project: project}, nil
}

// Others returns every project except id, the carousel contents
func (s *ProjectService) Others(ctx context.Context, id string) ([]models.Entry, error) {
	cat, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !cat.Has(id) {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	return cat.Others(id), nil
}
