package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"socialpod/internal/config"
	"socialpod/internal/middleware"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Collection names in the document database.
const (
	UsersCollection         = "users"
	PostsCollection         = "posts"
	CommentsCollection      = "comments"
	TagsCollection          = "tags"
	AnnouncementsCollection = "announcements"
)

// ConnectMongo connects to the document database and ensures its indexes.
func ConnectMongo(ctx context.Context, cfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	return OpenMongo(ctx, cfg.MongoConnectionURI(), cfg.MongoDatabase)
}

// OpenMongo connects to uri, pings it and ensures indexes on database name.
func OpenMongo(ctx context.Context, uri, name string) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	db := client.Database(name)
	if err := EnsureMongoIndexes(ctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	middleware.Logger.Info("MongoDB connected successfully", slog.String("database", name))
	return client, db, nil
}

// EnsureMongoIndexes creates the unique email index and lookup indexes.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		PostsCollection: {
			{Keys: bson.D{{Key: "authorEmail", Value: 1}}},
		},
		CommentsCollection: {
			{Keys: bson.D{{Key: "postId", Value: 1}}},
			{Keys: bson.D{{Key: "title", Value: 1}}},
		},
	}
	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create %s indexes: %w", coll, err)
		}
	}
	return nil
}
