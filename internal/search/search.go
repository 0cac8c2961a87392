// Package search ranks catalog entries against a text query.
package search

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
	"github.com/lmoura/vidcat/internal/model"
)

// maxDistance bounds fuzzy matching. Larger edit distances are not
// considered matches at all.
const maxDistance = 3

// Query narrows the catalog to matching entries.
type Query struct {
	// Text is matched against filename, title, location and tags
	Text string

	// Camera keeps only entries of the given camera model
	Camera string

	// FavoritesOnly keeps only entries marked as favorite
	FavoritesOnly bool
}

type match struct {
	video model.VideoFile
	rank  int
}

// Find returns entries matching q, best matches first. Entries with the
// same rank keep filename order.
func Find(videos []model.VideoFile, q Query) []model.VideoFile {
	matches := make([]match, 0, len(videos))

	for _, v := range videos {
		if q.Camera != "" && v.Metadata.CameraModel != q.Camera {
			continue
		}
		if q.FavoritesOnly && !v.Metadata.Favorite {
			continue
		}
		rank, ok := rankVideo(v, q.Text)
		if !ok {
			continue
		}
		matches = append(matches, match{video: v, rank: rank})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].rank != matches[j].rank {
			return matches[i].rank < matches[j].rank
		}
		return matches[i].video.Filename < matches[j].video.Filename
	})

	result := make([]model.VideoFile, len(matches))
	for i := range matches {
		result[i] = matches[i].video
	}
	return result
}

func rankVideo(v model.VideoFile, text string) (int, bool) {
	if text == "" {
		return 0, true
	}

	fields := []string{v.Filename, v.Metadata.Title, v.Metadata.Location}
	fields = append(fields, v.Metadata.Tags...)

	target := strings.ToLower(text)
	best := -1
	for _, f := range fields {
		rank, ok := rankField(strings.ToLower(f), target)
		if !ok {
			continue
		}
		if best < 0 || rank < best {
			best = rank
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

func rankField(field, target string) (int, bool) {
	if field == "" {
		return 0, false
	}
	if strings.Contains(field, target) {
		return 0, true
	}
	d := matchr.Levenshtein(field, target)
	if d > maxDistance {
		return 0, false
	}
	return d, true
}
