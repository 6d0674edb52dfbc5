package database

import (
	"context"
	"fmt"
	"time"

	"spordate/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the global MongoDB client instance. It stays nil when
// DATABASE_URL is not configured; callers select the fallback store then.
var MongoClient *mongo.Client

// IsConfigured reports whether a managed database was configured.
func IsConfigured() bool {
	return config.AppConfig.DatabaseURL != ""
}

// InitDB initializes the MongoDB connection. Unlike a hard dependency, a
// missing or unreachable database is a supported mode here, so the error is
// returned for the caller to log rather than aborting the process.
func InitDB() error {
	if !IsConfigured() {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	MongoClient = client
	return nil
}

// Database returns the configured application database.
func Database() *mongo.Database {
	if MongoClient == nil {
		return nil
	}
	return MongoClient.Database(config.AppConfig.DatabaseName)
}
