package catalog

import (
	"testing"

	"github.com/lmoura/vidcat/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	videos := []model.VideoFile{
		{Filename: "a.mp4", Metadata: model.VideoMetadata{Title: "A", Tags: []string{"trail"}, CameraModel: "GoPro Hero 12", Favorite: true}},
		{Filename: "b.mp4", Metadata: model.VideoMetadata{Location: "Parque", CameraModel: "GoPro Hero 12"}},
		{Filename: "c.mp4", Metadata: model.VideoMetadata{Title: "C", CameraModel: "Sony ZV-1"}},
		{Filename: "d.mp4", Metadata: model.VideoMetadata{}},
	}

	stats := ComputeStats(videos)

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 2, stats.WithTitle)
	assert.Equal(t, 1, stats.WithLocation)
	assert.Equal(t, 1, stats.WithTags)
	assert.Equal(t, 1, stats.Favorites)

	assert.Equal(t, 2, stats.ByCamera["GoPro Hero 12"])
	assert.Equal(t, 1, stats.ByCamera["Sony ZV-1"])
	assert.Equal(t, 1, stats.ByCamera[UnknownCamera])

	sum := 0
	for _, n := range stats.ByCamera {
		sum += n
	}
	assert.Equal(t, stats.Total, sum)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)
	assert.Equal(t, 0, stats.Total)
	assert.Empty(t, stats.ByCamera)
}
