package suite

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	expireDuration  = 120
	maxWaitDuration = 120 * time.Second
)

const (
	mongoPort  = "27017/tcp"
	mongoImage = "mongo"
	mongoTag   = "7"

	databaseName = "connectfour_test"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Storage *storage.MongoStorage
}

// New boots a single-node MongoDB replica set in docker. A replica set is
// required because the repository runs multi-document transactions; a plain
// standalone mongod rejects them.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("could not connect to docker: %v", err)
	}

	// pulls an image, creates a container based on it and runs it
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: mongoImage,
		Tag:        mongoTag,
		Cmd:        []string{"mongod", "--replSet", "rs0", "--bind_ip_all"},
	}, func(config *docker.HostConfig) {
		// set AutoRemove to true so that stopped container goes away by itself
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start resource: %v", err)
	}

	// never returns error
	_ = resource.Expire(expireDuration) // Tell docker to hard kill the container in 120 seconds

	mongoHost := resource.GetHostPort(mongoPort)
	uri := fmt.Sprintf("mongodb://%s/?directConnection=true", mongoHost)

	// exponential backoff-retry, because the application in the container might not be ready to accept connections yet
	pool.MaxWait = maxWaitDuration

	var client *mongo.Client
	if err = pool.Retry(func() error {
		var connErr error
		client, connErr = mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if connErr != nil {
			return connErr
		}
		return client.Ping(ctx, readpref.PrimaryPreferred())
	}); err != nil {
		if err = pool.Purge(resource); err != nil {
			t.Fatalf("could not purge resource: %v", err)
		}

		t.Fatalf("could not connect to mongo: %v", err)
	}

	// Initiate the replica set and wait for the node to elect itself primary;
	// transactions are rejected until then.
	replicaConfig := bson.M{
		"_id": "rs0",
		"members": []bson.M{
			{"_id": 0, "host": "localhost:27017"},
		},
	}
	if err = client.Database("admin").RunCommand(ctx, bson.D{{Key: "replSetInitiate", Value: replicaConfig}}).Err(); err != nil {
		t.Logf("replica set initiate: %v", err) // already initialized is fine on container reuse
	}

	if err = pool.Retry(func() error {
		return client.Ping(ctx, readpref.Primary())
	}); err != nil {
		if err = pool.Purge(resource); err != nil {
			t.Fatalf("could not purge resource: %v", err)
		}

		t.Fatalf("replica set did not become primary: %v", err)
	}

	if err = client.Database(databaseName).Drop(ctx); err != nil {
		t.Fatalf("could not drop database: %v", err)
	}

	t.Cleanup(func() {
		t.Helper()

		if err = pool.Purge(resource); err != nil {
			t.Fatalf("could not purge resource: %v", err)
		}
	})

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Storage: &storage.MongoStorage{
			Client:   client,
			Database: client.Database(databaseName),
		},
	}
}
