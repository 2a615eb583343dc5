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

type tagRepository struct {
	coll    *mongo.Collection
	metrics *observability.StoreMetrics
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) (models.InsertResult, error) {
	ctx, done := repository.Observe(ctx, r.metrics, system, "insert", r.coll.Name())
	defer done()

	oid, err := objectID(tag.ID)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("tag id: %w", err)
	}
	res, err := r.coll.InsertOne(ctx, tagDoc{ID: oid, Name: tag.Name})
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("insert tag: %w", err)
	}
	tag.ID = oid.Hex()
	return insertResult(res), nil
}

func (r *tagRepository) List(ctx context.Context) ([]models.Tag, error) {
	ctx, done := repository.Observe(ctx, r.metrics, system, "find", r.coll.Name())
	defer done()

	docs, err := findAll[tagDoc](ctx, r.coll, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	tags := make([]models.Tag, 0, len(docs))
	for _, d := range docs {
		tags = append(tags, models.Tag{ID: d.ID.Hex(), Name: d.Name})
	}
	return tags, nil
}

type announcementRepository struct {
	coll    *mongo.Collection
	metrics *observability.StoreMetrics
}

func (r *announcementRepository) Create(ctx context.Context, a *models.Announcement) (models.InsertResult, error) {
	ctx, done := repository.Observe(ctx, r.metrics, system, "insert", r.coll.Name())
	defer done()

	oid, err := objectID(a.ID)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("announcement id: %w", err)
	}
	doc := announcementDoc{
		ID:          oid,
		AuthorName:  a.AuthorName,
		AuthorImage: a.AuthorImage,
		Title:       a.Title,
		Content:     a.Content,
		CreatedAt:   a.CreatedAt,
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = nowMillis()
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("insert announcement: %w", err)
	}
	*a = doc.model()
	return insertResult(res), nil
}

func (r *announcementRepository) List(ctx context.Context) ([]models.Announcement, error) {
	ctx, done := repository.Observe(ctx, r.metrics, system, "find", r.coll.Name())
	defer done()

	docs, err := findAll[announcementDoc](ctx, r.coll, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	list := make([]models.Announcement, 0, len(docs))
	for _, d := range docs {
		list = append(list, d.model())
	}
	return list, nil
}
