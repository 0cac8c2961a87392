package migration

import (
	"context"
	"fmt"
	"time"

	"github.com/apex/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const migrationTimeout = 2 * time.Minute

// The first release stored user notes in a "description" field and
// wrote no tags array at all when a video had none. Both shapes break
// the stats derivation, so they get rewritten in place.
func (m *Migrator) migrateDatabaseV0ToV1(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, migrationTimeout)
	defer cancel()

	cli, err := mongo.Connect(ctx, options.Client().ApplyURI(m.Config.Database))
	if err != nil {
		return fmt.Errorf("connect to db failed: %w", err)
	}
	defer func() { _ = cli.Disconnect(context.Background()) }()

	videos := cli.Database("vidcat").Collection("videos")

	renamed, err := videos.UpdateMany(ctx,
		bson.D{{Key: "metadata.description", Value: bson.D{{Key: "$exists", Value: true}}}},
		bson.D{{Key: "$rename", Value: bson.D{{Key: "metadata.description", Value: "metadata.notes"}}}},
	)
	if err != nil {
		return fmt.Errorf("rename legacy description field failed: %w", err)
	}

	filled, err := videos.UpdateMany(ctx,
		bson.D{{Key: "metadata.tags", Value: bson.D{{Key: "$exists", Value: false}}}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "metadata.tags", Value: bson.A{}}}}},
	)
	if err != nil {
		return fmt.Errorf("backfill tags array failed: %w", err)
	}

	log.WithFields(log.Fields{
		"renamed": renamed.ModifiedCount,
		"filled":  filled.ModifiedCount,
	}).Info("legacy records upgraded")

	return nil
}
