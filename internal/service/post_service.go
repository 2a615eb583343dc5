package service

import (
	"context"
	"math"
	"strings"
	"time"

	"socialpod/internal/cache"
	"socialpod/internal/featureflags"
	"socialpod/internal/models"
	"socialpod/internal/observability"
	"socialpod/internal/repository"
	"socialpod/internal/validation"
)

type PostService struct {
	posts repository.PostRepository
	cache *cache.Cache
	flags *featureflags.Manager
}

type CreatePostInput struct {
	AuthorName  string   `json:"authorName" validate:"required,max=120"`
	AuthorEmail string   `json:"authorEmail" validate:"required,email"`
	AuthorImage string   `json:"authorImage" validate:"omitempty,url"`
	Title       string   `json:"title" validate:"required,max=300"`
	Description string   `json:"description" validate:"required,max=50000"`
	Tags        []string `json:"tags" validate:"max=20,dive,required,max=50"`
}

type VoteInput struct {
	Type string `json:"type" validate:"required"`
}

func NewPostService(posts repository.PostRepository, c *cache.Cache, flags *featureflags.Manager) *PostService {
	return &PostService{posts: posts, cache: c, flags: flags}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.InsertResult, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	res, err := s.posts.Create(ctx, &models.Post{
		AuthorName:  in.AuthorName,
		AuthorEmail: in.AuthorEmail,
		AuthorImage: in.AuthorImage,
		Title:       in.Title,
		Description: in.Description,
		Tags:        tags,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, storeError(err)
	}
	s.cache.Invalidate(ctx, cache.PostCountKey)
	return &res, nil
}

// ListPosts returns one page of posts in insertion order.
func (s *PostService) ListPosts(ctx context.Context, page, size int) ([]models.Post, error) {
	if page < 0 || size < 0 {
		return nil, models.NewValidationError("page and size must not be negative")
	}
	if size > 0 && page > math.MaxInt/size {
		return nil, models.NewValidationError("page is out of range")
	}
	posts, err := s.posts.List(ctx, page*size, size)
	return posts, storeError(err)
}

func (s *PostService) ListByAuthor(ctx context.Context, email string) ([]models.Post, error) {
	posts, err := s.posts.ListByAuthor(ctx, email)
	return posts, storeError(err)
}

func (s *PostService) CountPosts(ctx context.Context) (int64, error) {
	var n int64
	err := s.cache.Aside(ctx, cache.PostCountKey, &n, cache.CountTTL, func() error {
		var err error
		n, err = s.posts.Count(ctx)
		return err
	})
	return n, storeError(err)
}

// GetPost returns the post, or nil when it does not exist.
func (s *PostService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}

	var post models.Post
	err := s.cache.Aside(ctx, cache.PostKey(id), &post, cache.PostTTL, func() error {
		found, err := s.posts.GetByID(ctx, id)
		if err != nil {
			return err
		}
		post = *found
		return nil
	})
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError(err)
	}
	return &post, nil
}

// Vote increments one counter of the post. subject is the caller identity used
// for flag rollout and may be empty.
func (s *PostService) Vote(ctx context.Context, id string, in VoteInput, subject string) (*models.UpdateResult, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	legacy := s.flags.Enabled(featureflags.LegacyVoteFallback, subject)
	kind, err := models.ParseVoteKind(in.Type, legacy)
	if err != nil {
		return nil, err
	}

	ctx, span := observability.StartServiceSpan(ctx, "PostService", "Vote")
	res, err := s.posts.IncrementVote(ctx, id, kind)
	observability.EndSpan(span, err)
	if err != nil {
		return nil, storeError(err)
	}

	observability.VotesTotal.WithLabelValues(string(kind)).Inc()
	s.cache.Invalidate(ctx, cache.PostKey(id))
	return &res, nil
}

func (s *PostService) DeletePost(ctx context.Context, id string) (*models.DeleteResult, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	res, err := s.posts.Delete(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	s.cache.InvalidatePost(ctx, id)
	return &res, nil
}
