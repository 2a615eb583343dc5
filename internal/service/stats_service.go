package service

import (
	"context"

	"socialpod/internal/models"
	"socialpod/internal/repository"
)

type StatsService struct {
	users    repository.UserRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
}

func NewStatsService(users repository.UserRepository, posts repository.PostRepository, comments repository.CommentRepository) *StatsService {
	return &StatsService{users: users, posts: posts, comments: comments}
}

// Stats returns approximate collection sizes.
func (s *StatsService) Stats(ctx context.Context) (*models.Stats, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	posts, err := s.posts.Count(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	comments, err := s.comments.Count(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return &models.Stats{Users: users, Posts: posts, Comments: comments}, nil
}
