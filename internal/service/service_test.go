package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"testing"

	"github.com/lmoura/vidcat/internal/catalog"
	"github.com/lmoura/vidcat/internal/lock"
	"github.com/lmoura/vidcat/internal/model"
	"github.com/lmoura/vidcat/internal/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memDB struct {
	videos map[string]model.VideoFile
}

func newMemDB() *memDB {
	return &memDB{videos: map[string]model.VideoFile{}}
}

func (db *memDB) AddVideos(_ context.Context, videos []model.VideoFile) error {
	for _, v := range videos {
		db.videos[v.Filename] = v
	}
	return nil
}

func (db *memDB) UpdateVideo(_ context.Context, video *model.VideoFile) error {
	db.videos[video.Filename] = *video
	return nil
}

func (db *memDB) ListVideos(_ context.Context) ([]model.VideoFile, error) {
	result := make([]model.VideoFile, 0, len(db.videos))
	for _, v := range db.videos {
		result = append(result, v)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Filename < result[j].Filename })
	return result, nil
}

func (db *memDB) GetVideo(_ context.Context, filename string) (*model.VideoFile, error) {
	v, ok := db.videos[filename]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (db *memDB) DeleteVideo(_ context.Context, filename string) error {
	delete(db.videos, filename)
	return nil
}

func (db *memDB) Reset(_ context.Context) error {
	db.videos = map[string]model.VideoFile{}
	return nil
}

func newTestService(db Database) *CatalogService {
	next := 0
	return NewService(Settings{
		Database: db,
		Locker:   lock.NewLocker(),
		NewID: func() string {
			next++
			return fmt.Sprintf("id-%d", next)
		},
	})
}

func TestAddVideos(t *testing.T) {
	db := newMemDB()
	s := newTestService(db)
	ctx := context.Background()

	files := []scanner.File{
		{Name: "VID_20240115_143025_00_001.mp4", Size: 100},
		{Name: "randomfile.mp4", Size: 50},
	}

	result, err := s.AddVideos(ctx, "Insta360 X5", files)
	require.NoError(t, err)
	assert.Equal(t, ScanResult{Added: 2}, result)

	v, err := s.db.GetVideo(ctx, "VID_20240115_143025_00_001.mp4")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "2024-01-15", v.Metadata.Date)
	assert.Equal(t, "14:30:25", v.Metadata.RecordingTime)
	assert.Equal(t, "Traseira", v.Metadata.Lens)
	assert.Equal(t, 1, v.Metadata.ClipNumber)
	assert.Equal(t, "Insta360 X5", v.Metadata.CameraModel)

	// an unparseable name still gets an entry
	v, err = s.db.GetVideo(ctx, "randomfile.mp4")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.False(t, v.HasAutoFields())
	assert.Equal(t, []string{}, v.Metadata.Tags)

	// scanning again changes nothing
	result, err = s.AddVideos(ctx, "Insta360 X5", files)
	require.NoError(t, err)
	assert.Equal(t, ScanResult{Skipped: 2}, result)
}

func TestAddVideosDuplicateNamesInBatch(t *testing.T) {
	db := newMemDB()
	s := newTestService(db)
	ctx := context.Background()

	// same basename in two subdirectories of the scanned tree
	files := []scanner.File{
		{Name: "GX010042.mp4", Size: 100},
		{Name: "GX010042.mp4", Size: 200},
	}

	result, err := s.AddVideos(ctx, "GoPro Hero 11", files)
	require.NoError(t, err)
	assert.Equal(t, ScanResult{Added: 1, Skipped: 1}, result)

	videos, err := s.ListVideos(ctx)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, int64(100), videos[0].Size)
}

func TestAddVideosGoProFileNumber(t *testing.T) {
	db := newMemDB()
	s := newTestService(db)
	ctx := context.Background()

	_, err := s.AddVideos(ctx, "GoPro Hero 11", []scanner.File{{Name: "GX010042.mp4"}})
	require.NoError(t, err)

	v, err := s.db.GetVideo(ctx, "GX010042.mp4")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 42, v.Metadata.ClipNumber)
}

func TestImportCatalogs(t *testing.T) {
	db := newMemDB()
	s := newTestService(db)
	ctx := context.Background()

	existing := model.VideoFile{
		ID:       "live-1",
		Filename: "C0001.mp4",
		Metadata: model.VideoMetadata{Title: "Edição local", Tags: []string{}},
	}
	require.NoError(t, db.AddVideos(ctx, []model.VideoFile{existing}))

	doc := catalog.NewCatalog("Sony A7 IV", []model.VideoExport{
		{Filename: "C0001.mp4", Title: "Importado", Tags: []string{}},
		{Filename: "C0002.mp4", Title: "Novo", Tags: []string{}},
	})
	payload, err := json.Marshal(doc)
	require.NoError(t, err)

	result, err := s.ImportCatalogs(ctx, [][]byte{payload, []byte("not json")})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	assert.Len(t, result.Errors, 1)

	// the live edit survives the import
	v, err := s.db.GetVideo(ctx, "C0001.mp4")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "Edição local", v.Metadata.Title)

	// the new entry inherits the payload camera model
	v, err = s.db.GetVideo(ctx, "C0002.mp4")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "Novo", v.Metadata.Title)
	assert.Equal(t, "Sony A7 IV", v.Metadata.CameraModel)
}

func TestAnnotate(t *testing.T) {
	db := newMemDB()
	s := newTestService(db)
	ctx := context.Background()

	_, err := s.AddVideos(ctx, "Canon EOS R6", []scanner.File{{Name: "MVI_1234.MP4"}})
	require.NoError(t, err)

	require.NoError(t, s.SetTitle(ctx, "MVI_1234.MP4", "Aniversário"))
	require.NoError(t, s.SetDate(ctx, "MVI_1234.MP4", "2024-03-01"))
	require.NoError(t, s.SetLocation(ctx, "MVI_1234.MP4", "São Paulo"))
	require.NoError(t, s.SetNotes(ctx, "MVI_1234.MP4", "bolo"))
	require.NoError(t, s.SetFavorite(ctx, "MVI_1234.MP4", true))
	require.NoError(t, s.AddTag(ctx, "MVI_1234.MP4", "família"))
	require.NoError(t, s.AddTag(ctx, "MVI_1234.MP4", "família"))
	require.NoError(t, s.AddTag(ctx, "MVI_1234.MP4", "festa"))
	require.NoError(t, s.RemoveTag(ctx, "MVI_1234.MP4", "festa"))
	require.NoError(t, s.SetCustomField(ctx, "MVI_1234.MP4", "projeto", "retrospectiva"))
	require.NoError(t, s.SetCustomField(ctx, "MVI_1234.MP4", "projeto", "vlog"))

	v, err := s.db.GetVideo(ctx, "MVI_1234.MP4")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "Aniversário", v.Metadata.Title)
	assert.Equal(t, "2024-03-01", v.Metadata.Date)
	assert.Equal(t, "São Paulo", v.Metadata.Location)
	assert.Equal(t, "bolo", v.Metadata.Notes)
	assert.True(t, v.Metadata.Favorite)
	assert.Equal(t, []string{"família"}, v.Metadata.Tags)
	assert.Equal(t, []model.CustomField{{Key: "projeto", Value: "vlog"}}, v.Metadata.CustomFields)

	require.NoError(t, s.RemoveCustomField(ctx, "MVI_1234.MP4", "projeto"))
	v, err = s.db.GetVideo(ctx, "MVI_1234.MP4")
	require.NoError(t, err)
	assert.Empty(t, v.Metadata.CustomFields)

	assert.Error(t, s.SetDate(ctx, "MVI_1234.MP4", "01/03/2024"))
	assert.ErrorIs(t, s.SetTitle(ctx, "nope.mp4", "x"), ErrVideoNotFound)
}

func TestRemoveAndReset(t *testing.T) {
	db := newMemDB()
	s := newTestService(db)
	ctx := context.Background()

	_, err := s.AddVideos(ctx, "Canon", []scanner.File{{Name: "MVI_0001.MP4"}, {Name: "MVI_0002.MP4"}})
	require.NoError(t, err)

	require.NoError(t, s.RemoveVideo(ctx, "MVI_0001.MP4"))
	assert.ErrorIs(t, s.RemoveVideo(ctx, "MVI_0001.MP4"), ErrVideoNotFound)

	require.NoError(t, s.Reset(ctx))
	videos, err := s.ListVideos(ctx)
	require.NoError(t, err)
	assert.Empty(t, videos)
}
