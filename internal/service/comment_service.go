package service

import (
	"context"
	"time"

	"socialpod/internal/models"
	"socialpod/internal/repository"
	"socialpod/internal/validation"
)

type CommentService struct {
	comments repository.CommentRepository
}

type CreateCommentInput struct {
	PostID      string `json:"postId" validate:"required,objectid"`
	Title       string `json:"title" validate:"required,max=300"`
	Body        string `json:"body" validate:"required,max=5000"`
	AuthorEmail string `json:"authorEmail" validate:"required,email"`
}

func NewCommentService(comments repository.CommentRepository) *CommentService {
	return &CommentService{comments: comments}
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.InsertResult, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	res, err := s.comments.Create(ctx, &models.Comment{
		PostID:      in.PostID,
		Title:       in.Title,
		Body:        in.Body,
		AuthorEmail: in.AuthorEmail,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, storeError(err)
	}
	return &res, nil
}

func (s *CommentService) ListComments(ctx context.Context) ([]models.Comment, error) {
	comments, err := s.comments.List(ctx)
	return comments, storeError(err)
}

func (s *CommentService) ListByTitle(ctx context.Context, title string) ([]models.Comment, error) {
	comments, err := s.comments.ListByTitle(ctx, title)
	return comments, storeError(err)
}

func (s *CommentService) ListByPost(ctx context.Context, postID string) ([]models.Comment, error) {
	if err := requireID("postId", postID); err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByPost(ctx, postID)
	return comments, storeError(err)
}
