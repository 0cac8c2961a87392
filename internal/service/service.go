// Package service exposes the catalog operations over the working set.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lmoura/vidcat/internal/lock"
	"github.com/lmoura/vidcat/internal/model"
)

// workingSetResource names the lock guarding the working set. All
// mutators take it, so the set has a single writer at a time.
const workingSetResource = "working-set"

const lockTimeout = time.Minute

var ErrVideoNotFound = errors.New("video not found")

// CatalogService is the API over the video working set
type CatalogService struct {
	db    Database
	lk    lock.Locker
	newID func() string
}

// Settings holds all dependencies of service
type Settings struct {
	Database Database
	Locker   lock.Locker

	// NewID overrides entry identifier generation; nil means random
	NewID func() string
}

func NewService(settings Settings) *CatalogService {
	newID := settings.NewID
	if newID == nil {
		newID = model.NewID
	}

	return &CatalogService{
		db:    settings.Database,
		lk:    settings.Locker,
		newID: newID,
	}
}

func (s *CatalogService) lockWorkingSet(ctx context.Context) (lock.Unlocker, error) {
	return lock.TimedLock(ctx, s.lk, workingSetResource, lockTimeout)
}

// RemoveVideo drops one entry of the working set by filename.
func (s *CatalogService) RemoveVideo(ctx context.Context, filename string) error {
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

	return s.db.DeleteVideo(ctx, filename)
}

// Reset drops the entire working set.
func (s *CatalogService) Reset(ctx context.Context) error {
	unlocker, err := s.lockWorkingSet(ctx)
	if err != nil {
		return err
	}
	defer unlocker.Unlock()

	return s.db.Reset(ctx)
}
