package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoStorage struct {
	Client   *mongo.Client
	Database *mongo.Database
}

func New(ctx context.Context, uri, database string) (*MongoStorage, error) {
	// Writes happen inside explicitly managed transactions; retryable writes
	// would retry the lock-stamping update outside our control.
	opts := options.Client().ApplyURI(uri).SetRetryWrites(false)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &MongoStorage{
		Client:   client,
		Database: client.Database(database),
	}, nil
}

func (that *MongoStorage) Close(ctx context.Context) error {
	if err := that.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}

	return nil
}
