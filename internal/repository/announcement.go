package repository

import (
	"context"
	"fmt"
	"time"

	"socialpod/internal/models"
	"socialpod/internal/observability"

	"gorm.io/gorm"
)

type announcementRepository struct {
	db      *gorm.DB
	metrics *observability.StoreMetrics
}

// NewAnnouncementRepository returns a GORM-backed AnnouncementRepository.
func NewAnnouncementRepository(db *gorm.DB, m *observability.StoreMetrics) AnnouncementRepository {
	return &announcementRepository{db: db, metrics: m}
}

func (r *announcementRepository) Create(ctx context.Context, a *models.Announcement) (models.InsertResult, error) {
	ctx, done := Observe(ctx, r.metrics, r.db.Dialector.Name(), "insert", "announcements")
	defer done()

	if a.ID == "" {
		a.ID = models.NewID()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return models.InsertResult{}, fmt.Errorf("insert announcement: %w", err)
	}
	return inserted(a.ID), nil
}

func (r *announcementRepository) List(ctx context.Context) ([]models.Announcement, error) {
	ctx, done := Observe(ctx, r.metrics, r.db.Dialector.Name(), "find", "announcements")
	defer done()

	list := []models.Announcement{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	return list, nil
}
