package service

import (
	"context"

	"github.com/lmoura/vidcat/internal/model"
)

// Database requires some methods for load and store the working set
type Database interface {
	AddVideos(ctx context.Context, videos []model.VideoFile) error
	UpdateVideo(ctx context.Context, video *model.VideoFile) error
	ListVideos(ctx context.Context) ([]model.VideoFile, error)
	GetVideo(ctx context.Context, filename string) (*model.VideoFile, error)
	DeleteVideo(ctx context.Context, filename string) error
	Reset(ctx context.Context) error
}
