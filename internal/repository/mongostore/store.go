package mongostore

import (
	"context"

	"socialpod/internal/database"
	"socialpod/internal/observability"
	"socialpod/internal/repository"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const system = "mongodb"

// New builds a repository.Store on db. client is disconnected by Store.Close.
func New(client *mongo.Client, db *mongo.Database) *repository.Store {
	m := observability.NewStoreMetrics(system)
	return &repository.Store{
		Backend:       system,
		Users:         &userRepository{coll: db.Collection(database.UsersCollection), metrics: m},
		Posts:         &postRepository{coll: db.Collection(database.PostsCollection), metrics: m},
		Comments:      &commentRepository{coll: db.Collection(database.CommentsCollection), metrics: m},
		Tags:          &tagRepository{coll: db.Collection(database.TagsCollection), metrics: m},
		Announcements: &announcementRepository{coll: db.Collection(database.AnnouncementsCollection), metrics: m},
		PingFunc: func(ctx context.Context) error {
			return client.Ping(ctx, readpref.Primary())
		},
		CloseFunc: client.Disconnect,
	}
}

// findAll runs filter on coll and decodes every match.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...options.Lister[options.FindOptions]) ([]T, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	docs := []T{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
