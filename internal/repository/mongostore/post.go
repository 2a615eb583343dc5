package mongostore

import (
	"context"
	"errors"
	"fmt"

	"socialpod/internal/models"
	"socialpod/internal/observability"
	"socialpod/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type postRepository struct {
	coll    *mongo.Collection
	metrics *observability.StoreMetrics
}

func (r *postRepository) observe(ctx context.Context, op string) (context.Context, func()) {
	return repository.Observe(ctx, r.metrics, system, op, r.coll.Name())
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) (models.InsertResult, error) {
	ctx, done := r.observe(ctx, "insert")
	defer done()

	oid, err := objectID(post.ID)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("post id: %w", err)
	}
	doc := postDoc{
		ID:          oid,
		AuthorName:  post.AuthorName,
		AuthorEmail: post.AuthorEmail,
		AuthorImage: post.AuthorImage,
		Title:       post.Title,
		Description: post.Description,
		Tags:        post.Tags,
		CreatedAt:   post.CreatedAt,
	}
	if doc.Tags == nil {
		doc.Tags = []string{}
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = nowMillis()
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("insert post: %w", err)
	}
	*post = doc.model()
	return insertResult(res), nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	ctx, done := r.observe(ctx, "find_one")
	defer done()

	var doc postDoc
	if err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	post := doc.model()
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, skip, limit int) ([]models.Post, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))
	return r.find(ctx, bson.D{}, opts)
}

func (r *postRepository) ListByAuthor(ctx context.Context, email string) ([]models.Post, error) {
	return r.find(ctx, bson.D{{Key: "authorEmail", Value: email}},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
}

func (r *postRepository) find(ctx context.Context, filter bson.D, opts *options.FindOptionsBuilder) ([]models.Post, error) {
	ctx, done := r.observe(ctx, "find")
	defer done()

	docs, err := findAll[postDoc](ctx, r.coll, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	posts := make([]models.Post, 0, len(docs))
	for _, d := range docs {
		posts = append(posts, d.model())
	}
	return posts, nil
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	ctx, done := r.observe(ctx, "count")
	defer done()

	n, err := r.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return n, nil
}

// IncrementVote applies $inc so concurrent votes never lose increments.
func (r *postRepository) IncrementVote(ctx context.Context, id string, kind models.VoteKind) (models.UpdateResult, error) {
	if !kind.Valid() {
		return models.UpdateResult{}, fmt.Errorf("unknown vote kind %q", kind)
	}
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return models.UpdateResult{Acknowledged: true}, nil
	}

	ctx, done := r.observe(ctx, "update_one")
	defer done()

	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: kind.Field(), Value: 1}}}},
	)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("increment %s: %w", kind.Field(), err)
	}
	return updateResult(res), nil
}

func (r *postRepository) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return models.DeleteResult{Acknowledged: true}, nil
	}

	ctx, done := r.observe(ctx, "delete_one")
	defer done()

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("delete post: %w", err)
	}
	return models.DeleteResult{Acknowledged: res.Acknowledged, DeletedCount: res.DeletedCount}, nil
}
