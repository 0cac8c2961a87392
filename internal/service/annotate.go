package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lmoura/vidcat/internal/model"
)

// updateMetadata loads an entry by filename, applies the change and
// stores it back under the working set lock.
func (s *CatalogService) updateMetadata(ctx context.Context, filename string, apply func(*model.VideoMetadata)) error {
	unlocker, err := s.lockWorkingSet(ctx)
	if err != nil {
		return err
	}
	defer unlocker.Unlock()

	video, err := s.db.GetVideo(ctx, filename)
	if err != nil {
		return err
	}
	if video == nil {
		return fmt.Errorf("%w: %s", ErrVideoNotFound, filename)
	}

	apply(&video.Metadata)
	return s.db.UpdateVideo(ctx, video)
}

func (s *CatalogService) SetTitle(ctx context.Context, filename, title string) error {
	return s.updateMetadata(ctx, filename, func(m *model.VideoMetadata) {
		m.Title = title
	})
}

// SetDate sets the recording date. An empty value clears it; anything
// else must be an ISO date.
func (s *CatalogService) SetDate(ctx context.Context, filename, date string) error {
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return fmt.Errorf("invalid date %q: %w", date, err)
		}
	}
	return s.updateMetadata(ctx, filename, func(m *model.VideoMetadata) {
		m.Date = date
	})
}

func (s *CatalogService) SetLocation(ctx context.Context, filename, location string) error {
	return s.updateMetadata(ctx, filename, func(m *model.VideoMetadata) {
		m.Location = location
	})
}

func (s *CatalogService) SetNotes(ctx context.Context, filename, notes string) error {
	return s.updateMetadata(ctx, filename, func(m *model.VideoMetadata) {
		m.Notes = notes
	})
}

func (s *CatalogService) SetFavorite(ctx context.Context, filename string, favorite bool) error {
	return s.updateMetadata(ctx, filename, func(m *model.VideoMetadata) {
		m.Favorite = favorite
	})
}

func (s *CatalogService) SetThumbnail(ctx context.Context, filename, thumbnail string) error {
	return s.updateMetadata(ctx, filename, func(m *model.VideoMetadata) {
		m.Thumbnail = thumbnail
	})
}

// AddTag appends a tag. Adding a tag the entry already has is a
// deliberate no-op: stored duplicates (for example from an import) are
// kept as-is, but this operation never creates one.
func (s *CatalogService) AddTag(ctx context.Context, filename, tag string) error {
	return s.updateMetadata(ctx, filename, func(m *model.VideoMetadata) {
		for _, t := range m.Tags {
			if t == tag {
				return
			}
		}
		m.Tags = append(m.Tags, tag)
	})
}

func (s *CatalogService) RemoveTag(ctx context.Context, filename, tag string) error {
	return s.updateMetadata(ctx, filename, func(m *model.VideoMetadata) {
		tags := make([]string, 0, len(m.Tags))
		for _, t := range m.Tags {
			if t != tag {
				tags = append(tags, t)
			}
		}
		m.Tags = tags
	})
}

// SetCustomField sets a user-defined annotation. An existing key is
// updated in place, a new one is appended.
func (s *CatalogService) SetCustomField(ctx context.Context, filename, key, value string) error {
	return s.updateMetadata(ctx, filename, func(m *model.VideoMetadata) {
		for i := range m.CustomFields {
			if m.CustomFields[i].Key == key {
				m.CustomFields[i].Value = value
				return
			}
		}
		m.CustomFields = append(m.CustomFields, model.CustomField{Key: key, Value: value})
	})
}

func (s *CatalogService) RemoveCustomField(ctx context.Context, filename, key string) error {
	return s.updateMetadata(ctx, filename, func(m *model.VideoMetadata) {
		fields := make([]model.CustomField, 0, len(m.CustomFields))
		for _, f := range m.CustomFields {
			if f.Key != key {
				fields = append(fields, f)
			}
		}
		if len(fields) == 0 {
			m.CustomFields = nil
			return
		}
		m.CustomFields = fields
	})
}
