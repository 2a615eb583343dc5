package mongostore

import (
	"context"
	"fmt"

	"socialpod/internal/models"
	"socialpod/internal/observability"
	"socialpod/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type commentRepository struct {
	coll    *mongo.Collection
	metrics *observability.StoreMetrics
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) (models.InsertResult, error) {
	ctx, done := repository.Observe(ctx, r.metrics, system, "insert", r.coll.Name())
	defer done()

	oid, err := objectID(comment.ID)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("comment id: %w", err)
	}
	doc := commentDoc{
		ID:          oid,
		PostID:      comment.PostID,
		Title:       comment.Title,
		Body:        comment.Body,
		AuthorEmail: comment.AuthorEmail,
		CreatedAt:   comment.CreatedAt,
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = nowMillis()
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("insert comment: %w", err)
	}
	*comment = doc.model()
	return insertResult(res), nil
}

func (r *commentRepository) List(ctx context.Context) ([]models.Comment, error) {
	return r.find(ctx, bson.D{})
}

func (r *commentRepository) ListByTitle(ctx context.Context, title string) ([]models.Comment, error) {
	return r.find(ctx, bson.D{{Key: "title", Value: title}})
}

func (r *commentRepository) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	return r.find(ctx, bson.D{{Key: "postId", Value: postID}})
}

func (r *commentRepository) find(ctx context.Context, filter bson.D) ([]models.Comment, error) {
	ctx, done := repository.Observe(ctx, r.metrics, system, "find", r.coll.Name())
	defer done()

	docs, err := findAll[commentDoc](ctx, r.coll, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	comments := make([]models.Comment, 0, len(docs))
	for _, d := range docs {
		comments = append(comments, d.model())
	}
	return comments, nil
}

func (r *commentRepository) Count(ctx context.Context) (int64, error) {
	ctx, done := repository.Observe(ctx, r.metrics, system, "count", r.coll.Name())
	defer done()

	n, err := r.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return n, nil
}
