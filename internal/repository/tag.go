package repository

import (
	"context"
	"fmt"

	"socialpod/internal/models"
	"socialpod/internal/observability"

	"gorm.io/gorm"
)

type tagRepository struct {
	db      *gorm.DB
	metrics *observability.StoreMetrics
}

// NewTagRepository returns a GORM-backed TagRepository.
func NewTagRepository(db *gorm.DB, m *observability.StoreMetrics) TagRepository {
	return &tagRepository{db: db, metrics: m}
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) (models.InsertResult, error) {
	ctx, done := Observe(ctx, r.metrics, r.db.Dialector.Name(), "insert", "tags")
	defer done()

	if tag.ID == "" {
		tag.ID = models.NewID()
	}
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		return models.InsertResult{}, fmt.Errorf("insert tag: %w", err)
	}
	return inserted(tag.ID), nil
}

func (r *tagRepository) List(ctx context.Context) ([]models.Tag, error) {
	ctx, done := Observe(ctx, r.metrics, r.db.Dialector.Name(), "find", "tags")
	defer done()

	tags := []models.Tag{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}
