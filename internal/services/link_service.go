package services

import (
	"context"

	"movielens-api/internal/models"
	"movielens-api/internal/repository"

	"github.com/sirupsen/logrus"
)

type LinkService interface {
	GetLink(ctx context.Context, movieID int64) (*models.LinkSimple, error)
	ListLinks(ctx context.Context, skip, limit int) ([]models.Link, error)
}

type linkService struct {
	linkRepo repository.LinkRepository
	logger   *logrus.Logger
}

func NewLinkService(linkRepo repository.LinkRepository, logger *logrus.Logger) LinkService {
	return &linkService{
		linkRepo: linkRepo,
		logger:   logger,
	}
}

func (s *linkService) GetLink(ctx context.Context, movieID int64) (*models.LinkSimple, error) {
	if err := validateID("movie id", movieID); err != nil {
		return nil, err
	}

	link, err := s.linkRepo.FindByMovieID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	simple := link.Simple()
	return &simple, nil
}

func (s *linkService) ListLinks(ctx context.Context, skip, limit int) ([]models.Link, error) {
	if err := validatePagination(skip, limit); err != nil {
		return nil, err
	}
	return s.linkRepo.FindAll(ctx, skip, limit)
}
