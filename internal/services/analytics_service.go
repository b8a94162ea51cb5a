package services

import (
	"context"
	"fmt"

	"movielens-api/internal/models"
	"movielens-api/internal/repository"

	"github.com/sirupsen/logrus"
)

type AnalyticsService interface {
	// Statistics computes the dataset summary on demand: entity totals,
	// distinct rating users and the dataset-wide average (null when there
	// are no ratings at all).
	Statistics(ctx context.Context) (*models.Statistics, error)
}

type analyticsService struct {
	movieRepo  repository.MovieRepository
	ratingRepo repository.RatingRepository
	tagRepo    repository.TagRepository
	linkRepo   repository.LinkRepository
	logger     *logrus.Logger
}

func NewAnalyticsService(
	movieRepo repository.MovieRepository,
	ratingRepo repository.RatingRepository,
	tagRepo repository.TagRepository,
	linkRepo repository.LinkRepository,
	logger *logrus.Logger,
) AnalyticsService {
	return &analyticsService{
		movieRepo:  movieRepo,
		ratingRepo: ratingRepo,
		tagRepo:    tagRepo,
		linkRepo:   linkRepo,
		logger:     logger,
	}
}

func (s *analyticsService) Statistics(ctx context.Context) (*models.Statistics, error) {
	stats := &models.Statistics{}
	var err error

	if stats.MovieCount, err = s.movieRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("counting movies: %w", err)
	}
	if stats.RatingCount, err = s.ratingRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("counting ratings: %w", err)
	}
	if stats.TagCount, err = s.tagRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("counting tags: %w", err)
	}
	if stats.LinkCount, err = s.linkRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("counting links: %w", err)
	}
	if stats.UserCount, err = s.ratingRepo.DistinctUserCount(ctx); err != nil {
		return nil, fmt.Errorf("counting users: %w", err)
	}
	if stats.AverageRating, err = s.ratingRepo.GlobalAverage(ctx); err != nil {
		return nil, fmt.Errorf("averaging ratings: %w", err)
	}

	return stats, nil
}
