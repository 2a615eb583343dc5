// Package repository provides the data access layer: one interface per
// collection, a GORM implementation, and the Store that bundles them.
package repository

import (
	"context"
	"errors"
	"strings"

	"socialpod/internal/models"
	"socialpod/internal/observability"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a single-document lookup matches nothing.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateKey is returned when an insert violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (models.InsertResult, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// List returns users whose name contains search, case-insensitively.
	// An empty search returns everyone.
	List(ctx context.Context, search string) ([]models.User, error)
	ListByRole(ctx context.Context, role string) ([]models.User, error)
	SetRole(ctx context.Context, id, role string) (models.UpdateResult, error)
	SetRoleByEmail(ctx context.Context, email, role string) (models.UpdateResult, error)
	SetBadge(ctx context.Context, email, badge string) (models.UpdateResult, error)
	Count(ctx context.Context) (int64, error)
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) (models.InsertResult, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	// List returns posts in insertion order.
	List(ctx context.Context, skip, limit int) ([]models.Post, error)
	ListByAuthor(ctx context.Context, email string) ([]models.Post, error)
	Count(ctx context.Context) (int64, error)
	// IncrementVote atomically adds one to the counter selected by kind.
	IncrementVote(ctx context.Context, id string, kind models.VoteKind) (models.UpdateResult, error)
	Delete(ctx context.Context, id string) (models.DeleteResult, error)
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) (models.InsertResult, error)
	List(ctx context.Context) ([]models.Comment, error)
	ListByTitle(ctx context.Context, title string) ([]models.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]models.Comment, error)
	Count(ctx context.Context) (int64, error)
}

// TagRepository defines persistence operations for tags.
type TagRepository interface {
	Create(ctx context.Context, tag *models.Tag) (models.InsertResult, error)
	List(ctx context.Context) ([]models.Tag, error)
}

// AnnouncementRepository defines persistence operations for announcements.
type AnnouncementRepository interface {
	Create(ctx context.Context, a *models.Announcement) (models.InsertResult, error)
	List(ctx context.Context) ([]models.Announcement, error)
}

// Store bundles the repositories of one backend with its lifecycle.
type Store struct {
	Backend       string
	Users         UserRepository
	Posts         PostRepository
	Comments      CommentRepository
	Tags          TagRepository
	Announcements AnnouncementRepository

	PingFunc  func(ctx context.Context) error
	CloseFunc func(ctx context.Context) error
}

// Ping checks the backend is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.PingFunc == nil {
		return errors.New("store not initialized")
	}
	return s.PingFunc(ctx)
}

// Close releases the backend connection.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.CloseFunc == nil {
		return nil
	}
	return s.CloseFunc(ctx)
}

// NewGormStore builds a Store on an open GORM connection.
func NewGormStore(db *gorm.DB) *Store {
	backend := db.Dialector.Name()
	m := observability.NewStoreMetrics(backend)
	return &Store{
		Backend:       backend,
		Users:         NewUserRepository(db, m),
		Posts:         NewPostRepository(db, m),
		Comments:      NewCommentRepository(db, m),
		Tags:          NewTagRepository(db, m),
		Announcements: NewAnnouncementRepository(db, m),
		PingFunc: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		CloseFunc: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	}
}

// Observe starts a span and a latency timer for one store call. The returned
// function ends both.
func Observe(ctx context.Context, m *observability.StoreMetrics, system, operation, collection string) (context.Context, func()) {
	done := m.TrackQuery(operation, collection)
	ctx, span := observability.StartStoreSpan(ctx, system, operation, collection)
	return ctx, func() {
		span.End()
		done()
	}
}

// isDuplicateKey recognizes unique violations from every SQL dialect in use,
// with or without GORM's error translation.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}

// EscapeLike escapes LIKE wildcards so s matches literally under ESCAPE '\'.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func inserted(id string) models.InsertResult {
	return models.InsertResult{Acknowledged: true, InsertedID: id}
}

func updated(rows int64) models.UpdateResult {
	return models.UpdateResult{Acknowledged: true, MatchedCount: rows, ModifiedCount: rows}
}
