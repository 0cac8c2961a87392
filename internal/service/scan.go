package service

import (
	"context"

	"github.com/apex/log"
	"github.com/lmoura/vidcat/internal/model"
	"github.com/lmoura/vidcat/internal/parser"
	"github.com/lmoura/vidcat/internal/scanner"
)

// ScanResult is the outcome of adding scanned files to the working set.
type ScanResult struct {
	// Added counts created entries
	Added int

	// Skipped counts files whose filename was already present
	Skipped int
}

// AddVideos creates working set entries for scanned files. Metadata is
// inferred from each filename by the grammar of vendorLabel; files with
// an unparseable name still get an entry, just without auto-detected
// fields. A filename already in the set is left untouched.
func (s *CatalogService) AddVideos(ctx context.Context, vendorLabel string, files []scanner.File) (ScanResult, error) {
	unlocker, err := s.lockWorkingSet(ctx)
	if err != nil {
		return ScanResult{}, err
	}
	defer unlocker.Unlock()

	result := ScanResult{}
	created := make([]model.VideoFile, 0, len(files))

	// The walk is recursive but entries are keyed by basename, so the
	// same name in two subdirectories is still one entry.
	seen := map[string]struct{}{}

	for _, f := range files {
		if _, ok := seen[f.Name]; ok {
			result.Skipped++
			continue
		}
		seen[f.Name] = struct{}{}

		existing, err := s.db.GetVideo(ctx, f.Name)
		if err != nil {
			return result, err
		}
		if existing != nil {
			result.Skipped++
			continue
		}

		video := model.VideoFile{
			ID:       s.newID(),
			Filename: f.Name,
			Size:     f.Size,
			Metadata: newMetadata(f.Name, vendorLabel),
		}
		created = append(created, video)
		result.Added++
	}

	if err := s.db.AddVideos(ctx, created); err != nil {
		return result, err
	}

	log.WithFields(log.Fields{
		"camera":  vendorLabel,
		"added":   result.Added,
		"skipped": result.Skipped,
	}).Info("Scan results stored")

	return result, nil
}

func newMetadata(filename, vendorLabel string) model.VideoMetadata {
	meta := model.VideoMetadata{
		Tags:        []string{},
		CameraModel: vendorLabel,
	}

	r := parser.Parse(filename, vendorLabel)
	if r == nil {
		return meta
	}

	meta.Date = r.Date
	meta.RecordingTime = r.Time
	meta.Lens = r.Lens
	meta.ClipNumber = r.ClipNumber
	if meta.ClipNumber == 0 {
		meta.ClipNumber = r.FileNumber
	}
	return meta
}
