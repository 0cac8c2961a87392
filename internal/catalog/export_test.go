package catalog

import (
	"encoding/json"
	"testing"

	"github.com/lmoura/vidcat/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectForExportSparse(t *testing.T) {
	videos := []model.VideoFile{
		{
			ID:       "internal-id",
			Filename: "VID_20240115_143025_00_001.mp4",
			Size:     123456789,
			Metadata: model.VideoMetadata{
				Title:         "Trilha",
				Date:          "2024-01-15",
				RecordingTime: "14:30:25",
				Lens:          "Traseira",
				ClipNumber:    1,
				Tags:          []string{"mtb", "trilha"},
				CameraModel:   "Insta360 X5",
				CustomFields:  []model.CustomField{{Key: "Equipamento", Value: "Specialized Epic"}},
			},
		},
		{
			ID:       "other-id",
			Filename: "plain.mp4",
			Size:     42,
			Metadata: model.VideoMetadata{},
		},
	}

	exports := ProjectForExport(videos)
	require.Len(t, exports, 2)

	data, err := json.Marshal(exports[0])
	require.NoError(t, err)
	full := string(data)

	// internal fields never reach the wire
	assert.NotContains(t, full, "internal-id")
	assert.NotContains(t, full, "123456789")
	assert.Contains(t, full, `"recordingTime":"14:30:25"`)
	assert.Contains(t, full, `"customFields"`)

	data, err = json.Marshal(exports[1])
	require.NoError(t, err)
	sparse := string(data)

	// required fields stay even when empty, optional ones vanish
	assert.Contains(t, sparse, `"filename":"plain.mp4"`)
	assert.Contains(t, sparse, `"title":""`)
	assert.Contains(t, sparse, `"tags":[]`)
	assert.Contains(t, sparse, `"notes":""`)
	assert.NotContains(t, sparse, "recordingTime")
	assert.NotContains(t, sparse, "lens")
	assert.NotContains(t, sparse, "clipNumber")
	assert.NotContains(t, sparse, "cameraModel")
	assert.NotContains(t, sparse, "customFields")
	assert.NotContains(t, sparse, "favorite")
}

func TestNewCatalogInvariant(t *testing.T) {
	cat := NewCatalog("GoPro Hero 12", make([]model.VideoExport, 3))
	assert.Equal(t, 3, cat.TotalVideos)
	assert.Len(t, cat.Videos, 3)
	assert.Equal(t, "GoPro Hero 12", cat.CameraModel)
	assert.False(t, cat.GeneratedAt.IsZero())

	empty := NewCatalog("Outro", nil)
	assert.Equal(t, 0, empty.TotalVideos)
	assert.NotNil(t, empty.Videos)
}

func TestExportImportRoundTrip(t *testing.T) {
	videos := []model.VideoFile{
		{
			ID:       "rt-1",
			Filename: "VID_20240115_143025_00_001.mp4",
			Size:     100,
			Metadata: model.VideoMetadata{
				Title:         "Trilha",
				Date:          "2024-01-15",
				Location:      "Parque Ibirapuera",
				Tags:          []string{"mtb"},
				Notes:         "subida forte",
				Favorite:      true,
				RecordingTime: "14:30:25",
				Lens:          "Traseira",
				ClipNumber:    1,
				CameraModel:   "Insta360 X5",
				CustomFields:  []model.CustomField{{Key: "Bike", Value: "Epic"}},
			},
		},
		{
			ID:       "rt-2",
			Filename: "GX010042.mp4",
			Size:     200,
			Metadata: model.VideoMetadata{Tags: []string{}, CustomFields: []model.CustomField{}},
		},
	}

	cat := NewCatalog("Insta360 X5", ProjectForExport(videos))
	data, err := json.Marshal(cat)
	require.NoError(t, err)

	res := Merge(nil, [][]byte{data}, sequentialIDs())
	require.Empty(t, res.Errors)
	require.Len(t, res.Merged, len(videos))

	for i := range videos {
		assert.Equal(t, videos[i].Filename, res.Merged[i].Filename)
		want := videos[i].Metadata
		got := res.Merged[i].Metadata
		if want.CameraModel == "" {
			// entries without a camera model inherit the catalog header
			want.CameraModel = "Insta360 X5"
		}
		assert.Equal(t, want, got, "filename: %s", videos[i].Filename)
	}
}
