// Package catalog implements the merge engine of the video cataloger:
// validation of imported catalog payloads, filename-keyed deduplication
// against the working set, statistics derivation and the export
// projections (JSON catalog shape and CSV).
//
// Everything here is a pure one-shot transformation over slices the
// caller owns; the package keeps no state and never mutates its inputs.
package catalog

import (
	"fmt"

	"github.com/lmoura/vidcat/internal/model"
)

// MergeResult is the outcome of reconciling imported payloads into the
// working set.
type MergeResult struct {
	// Merged is the combined working set, a fresh slice
	Merged []model.VideoFile

	// Imported counts entries added from the payloads
	Imported int

	// Skipped counts entries whose filename was already present
	Skipped int

	// Invalid counts entries dropped for a missing or unusable filename
	Invalid int

	// Errors holds one error per rejected payload
	Errors []error
}

// Merge combines previously exported catalog payloads into the working
// set. The join key is the raw filename, compared by exact equality.
// Once a filename is present, later sources can not replace its fields:
// imported data only fills gaps, it never overwrites live edits. A
// payload that fails validation is reported and skipped without
// aborting the rest of the batch, so the caller controls determinism by
// fixing the payload order.
//
// newID supplies identifiers for created entries; payloads carry none.
func Merge(working []model.VideoFile, payloads [][]byte, newID func() string) MergeResult {
	res := MergeResult{
		Merged: append([]model.VideoFile(nil), working...),
	}

	seen := make(map[string]struct{}, len(working))
	for i := range working {
		seen[working[i].Filename] = struct{}{}
	}

	for i, data := range payloads {
		p, err := DecodePayload(data)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("payload %d: %w", i+1, err))
			continue
		}
		res.Invalid += p.Invalid

		for _, entry := range p.Entries {
			if _, ok := seen[entry.Filename]; ok {
				res.Skipped++
				continue
			}
			seen[entry.Filename] = struct{}{}
			res.Merged = append(res.Merged, fromExport(entry, p.CameraModel, newID()))
			res.Imported++
		}
	}

	return res
}

// fromExport turns a wire entry into a working set entry, defaulting
// every absent optional field. Size is display-only and not part of the
// wire shape, so imported entries report zero.
func fromExport(entry model.VideoExport, cameraModel string, id string) model.VideoFile {
	if entry.CameraModel != "" {
		cameraModel = entry.CameraModel
	}

	tags := entry.Tags
	if tags == nil {
		tags = []string{}
	}
	customFields := entry.CustomFields
	if customFields == nil {
		customFields = []model.CustomField{}
	}

	return model.VideoFile{
		ID:       id,
		Filename: entry.Filename,
		Metadata: model.VideoMetadata{
			Title:         entry.Title,
			Date:          entry.Date,
			Location:      entry.Location,
			Tags:          tags,
			Notes:         entry.Notes,
			Favorite:      entry.Favorite,
			RecordingTime: entry.RecordingTime,
			Lens:          entry.Lens,
			ClipNumber:    entry.ClipNumber,
			CameraModel:   cameraModel,
			Thumbnail:     entry.Thumbnail,
			CustomFields:  customFields,
		},
	}
}
