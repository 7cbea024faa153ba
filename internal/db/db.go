package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/example/qa-board/internal/config"
)

// Database wraps the Mongo client and the application database handle. It is
// created once at startup and injected into the repositories.
type Database struct {
	Client *mongo.Client
	Mongo  *mongo.Database
}

func Connect(cfg *config.Config) (*Database, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Database{
		Client: client,
		Mongo:  client.Database(cfg.MongoDB),
	}, nil
}

func (d *Database) Collection(name string) *mongo.Collection {
	return d.Mongo.Collection(name)
}

func (d *Database) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return d.Client.Disconnect(ctx)
}
