package repository

import (
	"context"
	"fmt"
	"time"

	"socialpod/internal/models"
	"socialpod/internal/observability"

	"gorm.io/gorm"
)

type commentRepository struct {
	db      *gorm.DB
	metrics *observability.StoreMetrics
}

// NewCommentRepository returns a GORM-backed CommentRepository.
func NewCommentRepository(db *gorm.DB, m *observability.StoreMetrics) CommentRepository {
	return &commentRepository{db: db, metrics: m}
}

func (r *commentRepository) observe(ctx context.Context, op string) (context.Context, func()) {
	return Observe(ctx, r.metrics, r.db.Dialector.Name(), op, "comments")
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) (models.InsertResult, error) {
	ctx, done := r.observe(ctx, "insert")
	defer done()

	if comment.ID == "" {
		comment.ID = models.NewID()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.InsertResult{}, fmt.Errorf("insert comment: %w", err)
	}
	return inserted(comment.ID), nil
}

func (r *commentRepository) List(ctx context.Context) ([]models.Comment, error) {
	return r.find(ctx, "", nil)
}

func (r *commentRepository) ListByTitle(ctx context.Context, title string) ([]models.Comment, error) {
	return r.find(ctx, "title = ?", title)
}

func (r *commentRepository) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	return r.find(ctx, "post_id = ?", postID)
}

func (r *commentRepository) find(ctx context.Context, where string, arg any) ([]models.Comment, error) {
	ctx, done := r.observe(ctx, "find")
	defer done()

	comments := []models.Comment{}
	q := r.db.WithContext(ctx).Order("id ASC")
	if where != "" {
		q = q.Where(where, arg)
	}
	if err := q.Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (r *commentRepository) Count(ctx context.Context) (int64, error) {
	ctx, done := r.observe(ctx, "count")
	defer done()

	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Comment{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return n, nil
}
