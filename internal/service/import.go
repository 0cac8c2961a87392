package service

import (
	"context"

	"github.com/apex/log"
	"github.com/lmoura/vidcat/internal/catalog"
)

// ImportCatalogs merges previously exported catalog payloads into the
// working set. Payloads are processed in the given order; a rejected
// payload is reported in the result and does not abort the batch. Only
// entries with new filenames are persisted, existing entries are never
// overwritten.
func (s *CatalogService) ImportCatalogs(ctx context.Context, payloads [][]byte) (catalog.MergeResult, error) {
	unlocker, err := s.lockWorkingSet(ctx)
	if err != nil {
		return catalog.MergeResult{}, err
	}
	defer unlocker.Unlock()

	working, err := s.db.ListVideos(ctx)
	if err != nil {
		return catalog.MergeResult{}, err
	}

	result := catalog.Merge(working, payloads, s.newID)
	for _, mergeErr := range result.Errors {
		log.Warnf("Import: %s", mergeErr)
	}

	added := result.Merged[len(working):]
	if err := s.db.AddVideos(ctx, added); err != nil {
		return result, err
	}

	log.WithFields(log.Fields{
		"imported": result.Imported,
		"skipped":  result.Skipped,
		"invalid":  result.Invalid,
		"rejected": len(result.Errors),
	}).Info("Catalogs imported")

	return result, nil
}
