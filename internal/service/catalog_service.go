package service

import (
	"context"
	"strings"
	"time"

	"socialpod/internal/cache"
	"socialpod/internal/models"
	"socialpod/internal/repository"
	"socialpod/internal/validation"
)

// CatalogService manages the admin-curated collections: tags and announcements.
type CatalogService struct {
	tags          repository.TagRepository
	announcements repository.AnnouncementRepository
	cache         *cache.Cache
}

type CreateTagInput struct {
	Name string `json:"name" validate:"required,max=50"`
}

type CreateAnnouncementInput struct {
	AuthorName  string `json:"authorName" validate:"max=120"`
	AuthorImage string `json:"authorImage" validate:"omitempty,url"`
	Title       string `json:"title" validate:"max=300"`
	Content     string `json:"content" validate:"required,max=5000"`
}

func NewCatalogService(tags repository.TagRepository, announcements repository.AnnouncementRepository, c *cache.Cache) *CatalogService {
	return &CatalogService{tags: tags, announcements: announcements, cache: c}
}

func (s *CatalogService) CreateTag(ctx context.Context, in CreateTagInput) (*models.InsertResult, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	res, err := s.tags.Create(ctx, &models.Tag{Name: in.Name})
	if err != nil {
		return nil, storeError(err)
	}
	s.cache.InvalidateTags(ctx)
	return &res, nil
}

func (s *CatalogService) ListTags(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	err := s.cache.Aside(ctx, cache.TagsKey, &tags, cache.TagsTTL, func() error {
		var err error
		tags, err = s.tags.List(ctx)
		return err
	})
	return tags, storeError(err)
}

func (s *CatalogService) CreateAnnouncement(ctx context.Context, in CreateAnnouncementInput) (*models.InsertResult, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	res, err := s.announcements.Create(ctx, &models.Announcement{
		AuthorName:  in.AuthorName,
		AuthorImage: in.AuthorImage,
		Title:       in.Title,
		Content:     in.Content,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, storeError(err)
	}
	s.cache.InvalidateAnnouncements(ctx)
	return &res, nil
}

func (s *CatalogService) ListAnnouncements(ctx context.Context) ([]models.Announcement, error) {
	var list []models.Announcement
	err := s.cache.Aside(ctx, cache.AnnouncementsKey, &list, cache.AnnouncementTTL, func() error {
		var err error
		list, err = s.announcements.List(ctx)
		return err
	})
	return list, storeError(err)
}
