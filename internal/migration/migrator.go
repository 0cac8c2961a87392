// Package migration upgrades records written by earlier releases to
// the current schema before the service starts using them.
package migration

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/lmoura/vidcat/internal/config"
	"github.com/lmoura/vidcat/internal/db"
)

type Migrator struct {
	CurrentVersion string
	Database       *db.Database
	Config         config.Configuration
}

type migratorFn func(ctx context.Context) error

func (m *Migrator) Run(ctx context.Context) error {
	mi, err := m.Database.GetMetaInfo(ctx)
	if err != nil {
		return fmt.Errorf("get metainformation failed: %w", err)
	}

	if db.Version != mi.DatabaseVersion {
		log.Warnf("database schema version changed, migrate")
		if mi.DatabaseVersion > db.Version {
			return fmt.Errorf("cannot migrate database from future version: %d", mi.DatabaseVersion)
		}

		migrations := m.getMigrations()
		for cur := mi.DatabaseVersion; cur < db.Version; cur++ {
			if err = migrations[cur](ctx); err != nil {
				return fmt.Errorf("migrate database from %d to %d failed: %w", cur, cur+1, err)
			}
			mi.DatabaseVersion = cur + 1
			if err = m.Database.SetMetaInfo(ctx, *mi); err != nil {
				return fmt.Errorf("update meta information failed: %w", err)
			}
		}
	}

	if m.CurrentVersion != mi.Version {
		mi.Version = m.CurrentVersion
		if err = m.Database.SetMetaInfo(ctx, *mi); err != nil {
			return fmt.Errorf("update meta information failed: %w", err)
		}
	}

	return nil
}

func (m *Migrator) getMigrations() []migratorFn {
	return []migratorFn{
		m.migrateDatabaseV0ToV1,
	}
}
