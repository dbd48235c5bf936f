package config

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	mongoClient *mongo.Client
	mongoDBName string
	mongoMu     sync.Mutex
)

// Collection names in the document store.
const (
	ColBookings = "bookings"
	ColAccounts = "accounts"
	ColHandlers = "handlers"
	ColRecords  = "bookingRecords"
)

// ConnectMongo initializes the shared document-store client (idempotent).
func ConnectMongo(uri, dbName string) *mongo.Client {
	mongoMu.Lock()
	defer mongoMu.Unlock()

	if mongoClient != nil {
		return mongoClient
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("mongo connect failed: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("mongo ping failed: %v", err)
	}

	mongoClient = client
	mongoDBName = dbName
	return mongoClient
}

// CloseMongo disconnects the shared client.
func CloseMongo() {
	mongoMu.Lock()
	defer mongoMu.Unlock()
	if mongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(ctx)
		mongoClient = nil
	}
}

// Collection returns a handle into the shared database, nil when the store
// has not been connected (tests inject their own fetchers instead).
func Collection(name string) *mongo.Collection {
	mongoMu.Lock()
	defer mongoMu.Unlock()
	if mongoClient == nil {
		return nil
	}
	return mongoClient.Database(mongoDBName).Collection(name)
}

// MongoPing verifies document-store connectivity for health checks.
func MongoPing(ctx context.Context) error {
	mongoMu.Lock()
	client := mongoClient
	mongoMu.Unlock()
	if client == nil {
		return mongo.ErrClientDisconnected
	}
	return client.Ping(ctx, nil)
}
