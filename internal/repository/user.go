package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"socialpod/internal/models"
	"socialpod/internal/observability"

	"gorm.io/gorm"
)

type userRepository struct {
	db      *gorm.DB
	metrics *observability.StoreMetrics
}

// NewUserRepository returns a GORM-backed UserRepository.
func NewUserRepository(db *gorm.DB, m *observability.StoreMetrics) UserRepository {
	return &userRepository{db: db, metrics: m}
}

func (r *userRepository) observe(ctx context.Context, op string) (context.Context, func()) {
	return Observe(ctx, r.metrics, r.db.Dialector.Name(), op, "users")
}

func (r *userRepository) Create(ctx context.Context, user *models.User) (models.InsertResult, error) {
	ctx, done := r.observe(ctx, "insert")
	defer done()

	if user.ID == "" {
		user.ID = models.NewID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicateKey(err) {
			return models.InsertResult{}, ErrDuplicateKey
		}
		return models.InsertResult{}, fmt.Errorf("insert user: %w", err)
	}
	return inserted(user.ID), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, done := r.observe(ctx, "find_one")
	defer done()

	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, search string) ([]models.User, error) {
	ctx, done := r.observe(ctx, "find")
	defer done()

	users := []models.User{}
	q := r.db.WithContext(ctx).Order("id ASC")
	if search != "" {
		q = q.Where(`LOWER(name) LIKE ? ESCAPE '\'`, "%"+EscapeLike(strings.ToLower(search))+"%")
	}
	if err := q.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *userRepository) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	ctx, done := r.observe(ctx, "find")
	defer done()

	users := []models.User{}
	if err := r.db.WithContext(ctx).Where("role = ?", role).Order("id ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}
	return users, nil
}

func (r *userRepository) SetRole(ctx context.Context, id, role string) (models.UpdateResult, error) {
	return r.update(ctx, "id = ?", id, "role", role)
}

func (r *userRepository) SetRoleByEmail(ctx context.Context, email, role string) (models.UpdateResult, error) {
	return r.update(ctx, "email = ?", email, "role", role)
}

func (r *userRepository) SetBadge(ctx context.Context, email, badge string) (models.UpdateResult, error) {
	return r.update(ctx, "email = ?", email, "badge", badge)
}

func (r *userRepository) update(ctx context.Context, where string, arg any, column string, value any) (models.UpdateResult, error) {
	ctx, done := r.observe(ctx, "update_one")
	defer done()

	result := r.db.WithContext(ctx).Model(&models.User{}).Where(where, arg).UpdateColumn(column, value)
	if result.Error != nil {
		return models.UpdateResult{}, fmt.Errorf("update user %s: %w", column, result.Error)
	}
	return updated(result.RowsAffected), nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	ctx, done := r.observe(ctx, "count")
	defer done()

	var n int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
