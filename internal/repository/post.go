package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"socialpod/internal/models"
	"socialpod/internal/observability"

	"gorm.io/gorm"
)

// voteColumns maps vote kinds to their SQL columns.
var voteColumns = map[models.VoteKind]string{
	models.VoteUp:   "up_vote",
	models.VoteDown: "down_vote",
}

type postRepository struct {
	db      *gorm.DB
	metrics *observability.StoreMetrics
}

// NewPostRepository returns a GORM-backed PostRepository.
func NewPostRepository(db *gorm.DB, m *observability.StoreMetrics) PostRepository {
	return &postRepository{db: db, metrics: m}
}

func (r *postRepository) observe(ctx context.Context, op string) (context.Context, func()) {
	return Observe(ctx, r.metrics, r.db.Dialector.Name(), op, "posts")
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) (models.InsertResult, error) {
	ctx, done := r.observe(ctx, "insert")
	defer done()

	if post.ID == "" {
		post.ID = models.NewID()
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.InsertResult{}, fmt.Errorf("insert post: %w", err)
	}
	return inserted(post.ID), nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	ctx, done := r.observe(ctx, "find_one")
	defer done()

	var post models.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, skip, limit int) ([]models.Post, error) {
	ctx, done := r.observe(ctx, "find")
	defer done()

	posts := []models.Post{}
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, email string) ([]models.Post, error) {
	ctx, done := r.observe(ctx, "find")
	defer done()

	posts := []models.Post{}
	if err := r.db.WithContext(ctx).Where("author_email = ?", email).Order("id ASC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts by author: %w", err)
	}
	return posts, nil
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	ctx, done := r.observe(ctx, "count")
	defer done()

	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return n, nil
}

// IncrementVote issues a single UPDATE ... SET col = col + 1 so concurrent
// votes never lose increments.
func (r *postRepository) IncrementVote(ctx context.Context, id string, kind models.VoteKind) (models.UpdateResult, error) {
	column, ok := voteColumns[kind]
	if !ok {
		return models.UpdateResult{}, fmt.Errorf("unknown vote kind %q", kind)
	}

	ctx, done := r.observe(ctx, "update_one")
	defer done()

	result := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	if result.Error != nil {
		return models.UpdateResult{}, fmt.Errorf("increment %s: %w", column, result.Error)
	}
	return updated(result.RowsAffected), nil
}

func (r *postRepository) Delete(ctx context.Context, id string) (models.DeleteResult, error) {
	ctx, done := r.observe(ctx, "delete_one")
	defer done()

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Post{})
	if result.Error != nil {
		return models.DeleteResult{}, fmt.Errorf("delete post: %w", result.Error)
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: result.RowsAffected}, nil
}
