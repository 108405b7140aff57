package service

import (
	"context"
	"strings"

	"newsboard/internal/apperror"
	"newsboard/internal/models"
	"newsboard/internal/repository"
)

// errNewsNotFound deliberately covers both "no such post" and "not your
// post" so owners cannot be enumerated.
var errNewsNotFound = apperror.New(apperror.NotFound, "news not found")

type NewsService struct {
	newsRepo repository.News
}

func NewNewsService(newsRepo repository.News) *NewsService {
	return &NewsService{newsRepo: newsRepo}
}

var _ News = (*NewsService)(nil)

func validateNewsInput(in NewsInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return apperror.New(apperror.Validation, "title is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		return apperror.New(apperror.Validation, "content is required")
	}
	return nil
}

// List returns everything visible to viewerID: all public posts plus the
// viewer's own private ones. viewerID 0 means anonymous.
func (s *NewsService) List(ctx context.Context, viewerID int) ([]models.News, error) {
	return s.newsRepo.ListVisible(ctx, viewerID)
}

// Get returns an owned post, or NotFound.
func (s *NewsService) Get(ctx context.Context, id, ownerID int) (*models.News, error) {
	n, err := s.newsRepo.GetOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, errNewsNotFound
	}
	return n, nil
}

// Create validates and persists a new post owned by ownerID.
func (s *NewsService) Create(ctx context.Context, ownerID int, in NewsInput) (int, error) {
	if err := validateNewsInput(in); err != nil {
		return 0, err
	}
	return s.newsRepo.Create(ctx, models.News{
		Title:     in.Title,
		Content:   in.Content,
		IsPrivate: in.IsPrivate,
		UserID:    ownerID,
	})
}

// Update overwrites title/content/is_private of an owned post.
func (s *NewsService) Update(ctx context.Context, id, ownerID int, in NewsInput) error {
	if err := validateNewsInput(in); err != nil {
		return err
	}
	updated, err := s.newsRepo.Update(ctx, models.News{
		ID:        id,
		Title:     in.Title,
		Content:   in.Content,
		IsPrivate: in.IsPrivate,
		UserID:    ownerID,
	})
	if err != nil {
		return err
	}
	if !updated {
		return errNewsNotFound
	}
	return nil
}

// Delete permanently removes an owned post.
func (s *NewsService) Delete(ctx context.Context, id, ownerID int) error {
	deleted, err := s.newsRepo.Delete(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return errNewsNotFound
	}
	return nil
}
