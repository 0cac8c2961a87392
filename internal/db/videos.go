package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/lmoura/vidcat/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (d *Database) AddVideos(ctx context.Context, videos []model.VideoFile) error {
	if len(videos) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	docs := make([]interface{}, 0, len(videos))
	for i := range videos {
		docs = append(docs, &videos[i])
	}

	if _, err := d.videos.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert videos failed: %w", err)
	}
	return nil
}

func (d *Database) UpdateVideo(ctx context.Context, video *model.VideoFile) error {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	filter := bson.D{{Key: "_id", Value: video.ID}}

	if _, err := d.videos.ReplaceOne(ctx, filter, video, opts); err != nil {
		return fmt.Errorf("update video failed: %w", err)
	}
	return nil
}

// ListVideos returns the whole working set ordered by filename, so
// every operation over it is deterministic.
func (d *Database) ListVideos(ctx context.Context) ([]model.VideoFile, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "filename", Value: 1}})

	cur, err := d.videos.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("fetch videos failed: %w", err)
	}

	var results []model.VideoFile
	if err = cur.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode videos failed: %w", err)
	}

	return results, nil
}

// GetVideo finds an entry by its filename. A missing entry is nil, not
// an error.
func (d *Database) GetVideo(ctx context.Context, filename string) (*model.VideoFile, error) {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	filter := bson.D{{Key: "filename", Value: filename}}
	result := d.videos.FindOne(ctx, filter)
	if errors.Is(result.Err(), mongo.ErrNoDocuments) {
		return nil, nil
	}
	if result.Err() != nil {
		return nil, fmt.Errorf("fetch video failed: %w", result.Err())
	}

	video := model.VideoFile{}
	if err := result.Decode(&video); err != nil {
		return nil, fmt.Errorf("decode video record failed: %w", err)
	}

	return &video, nil
}

func (d *Database) DeleteVideo(ctx context.Context, filename string) error {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	_, err := d.videos.DeleteOne(ctx, bson.D{{Key: "filename", Value: filename}})
	return err
}

// Reset drops the whole working set.
func (d *Database) Reset(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, databaseTimeout)
	defer cancel()

	_, err := d.videos.DeleteMany(ctx, bson.D{})
	return err
}
