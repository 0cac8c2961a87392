package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Database keeps the working set between sessions. The catalog core
// never touches it: entries are loaded, transformed in memory and
// written back by the service layer.
type Database struct {
	cli    *mongo.Client
	db     *mongo.Database
	videos *mongo.Collection
	meta   *mongo.Collection
}

const databaseTimeout = 40 * time.Second

// Version is the current schema version of stored records
const Version uint = 1

// Connect creates database connection
func Connect(uri string) (*Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), databaseTimeout)
	defer cancel()

	cli, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to db failed: %w", err)
	}

	if err = cli.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("connect to db failed: %w", err)
	}

	db := &Database{
		cli:    cli,
		db:     cli.Database("vidcat"),
		videos: cli.Database("vidcat").Collection("videos"),
		meta:   cli.Database("vidcat").Collection("meta"),
	}

	return db, nil
}

// Close terminates the connection
func (d *Database) Close(ctx context.Context) error {
	return d.cli.Disconnect(ctx)
}
