package service

import (
	"context"
	"io"

	"github.com/lmoura/vidcat/internal/catalog"
	"github.com/lmoura/vidcat/internal/model"
	"github.com/lmoura/vidcat/internal/search"
)

// ExportJSON builds the catalog document of the working set.
func (s *CatalogService) ExportJSON(ctx context.Context, cameraModel string) (model.Catalog, error) {
	videos, err := s.db.ListVideos(ctx)
	if err != nil {
		return model.Catalog{}, err
	}
	return catalog.NewCatalog(cameraModel, catalog.ProjectForExport(videos)), nil
}

// ExportCSV writes the working set as a spreadsheet to w.
func (s *CatalogService) ExportCSV(ctx context.Context, w io.Writer) error {
	videos, err := s.db.ListVideos(ctx)
	if err != nil {
		return err
	}
	return catalog.WriteCSV(w, catalog.ProjectForExport(videos))
}

// Stats derives summary counters over the working set.
func (s *CatalogService) Stats(ctx context.Context) (catalog.Stats, error) {
	videos, err := s.db.ListVideos(ctx)
	if err != nil {
		return catalog.Stats{}, err
	}
	return catalog.ComputeStats(videos), nil
}

// Search returns working set entries matching the query, best first.
func (s *CatalogService) Search(ctx context.Context, q search.Query) ([]model.VideoFile, error) {
	videos, err := s.db.ListVideos(ctx)
	if err != nil {
		return nil, err
	}
	return search.Find(videos, q), nil
}

// ListVideos returns the whole working set ordered by filename.
func (s *CatalogService) ListVideos(ctx context.Context) ([]model.VideoFile, error) {
	return s.db.ListVideos(ctx)
}
