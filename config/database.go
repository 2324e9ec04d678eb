package config

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	client *mongo.Client
	db     *mongo.Database
)

// InitDatabase establishes a connection to MongoDB using configuration values
// and ensures the indexes the application relies on.
func InitDatabase() *mongo.Database {
	if db != nil {
		return db
	}

	cfg := Get()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var err error
	client, err = mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Ping at boot to expose network/auth problems early instead of on the first query.
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("database ping failed: %v", err)
	}

	db = client.Database(cfg.MongoDB)

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	return db
}

// DB provides access to the initialized mongo database handle.
func DB() *mongo.Database {
	if db == nil {
		log.Fatal("database not initialized, call InitDatabase first")
	}
	return db
}

// CloseDatabase disconnects the mongo client. Used during graceful shutdown.
func CloseDatabase() error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}

// ensureIndexes creates the uniqueness constraints the services depend on.
// The unique mobile index is what resolves concurrent first-time OTP requests
// for the same number: one insert wins, the other surfaces a duplicate key error.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "mobile", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("categories").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "slug", Value: 1}},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("options").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "category", Value: 1}, {Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("posts").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
	})
	return err
}
