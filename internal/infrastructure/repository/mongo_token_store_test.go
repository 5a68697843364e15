//go:build integration
// +build integration

package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func setupTestMongo(t *testing.T) (*mongo.Database, func()) {
	t.Helper()

	if _, err := os.Stat("/var/run/docker.sock"); os.IsNotExist(err) {
		t.Skip("docker socket not found; skipping docker-dependent tests")
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("could not create dockertest pool: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{Repository: "mongo", Tag: "7"})
	if err != nil {
		t.Fatalf("could not start mongo container: %v", err)
	}

	uri := fmt.Sprintf("mongodb://localhost:%s", resource.GetPort("27017/tcp"))

	var client *mongo.Client
	if err := pool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		var cerr error
		client, cerr = mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if cerr != nil {
			return cerr
		}
		return client.Ping(ctx, nil)
	}); err != nil {
		_ = pool.Purge(resource)
		t.Fatalf("could not connect to mongo in container: %v", err)
	}

	return client.Database("course_export_test"), func() {
		_ = client.Disconnect(context.Background())
		_ = pool.Purge(resource)
	}
}

func TestMongoTokenStore(t *testing.T) {
	db, cleanup := setupTestMongo(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store := NewMongoTokenStore(db).(*MongoTokenStore)
	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}

	exerciseTokenStore(t, store)

	count, err := db.Collection("shop_tokens").CountDocuments(ctx, map[string]string{})
	if err != nil {
		t.Fatalf("count documents: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 document after overwrite, got %d", count)
	}
}
