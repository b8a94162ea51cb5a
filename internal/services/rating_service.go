package services

import (
	"context"

	"movielens-api/internal/models"
	"movielens-api/internal/repository"

	"github.com/sirupsen/logrus"
)

// RatingQuery bundles the rating scan filters. MinRating filters
// individual rows here, not aggregates.
type RatingQuery struct {
	MovieID   int64
	UserID    int64
	MinRating *float64
	Skip      int
	Limit     int
}

func (q RatingQuery) validate() error {
	if err := validatePagination(q.Skip, q.Limit); err != nil {
		return err
	}
	if q.MovieID < 0 {
		return errInvalid("movie id must not be negative")
	}
	if q.UserID < 0 {
		return errInvalid("user id must not be negative")
	}
	if q.MinRating != nil {
		return validateRatingBound("min_rating", *q.MinRating)
	}
	return nil
}

type RatingService interface {
	GetRating(ctx context.Context, userID, movieID int64) (*models.RatingSimple, error)
	ListRatings(ctx context.Context, query RatingQuery) ([]models.RatingSimple, error)
	MovieRatings(ctx context.Context, movieID int64, skip, limit int) ([]models.RatingSimple, error)
	UserRatings(ctx context.Context, userID int64, skip, limit int) ([]models.RatingSimple, error)
	// MovieRatingStats returns the per-movie aggregates. A movie with no
	// ratings yields a zero count and a nil average; that is a normal
	// result, not an error.
	MovieRatingStats(ctx context.Context, movieID int64) (models.MovieRatingStats, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	logger     *logrus.Logger
}

func NewRatingService(ratingRepo repository.RatingRepository, logger *logrus.Logger) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		logger:     logger,
	}
}

func (s *ratingService) GetRating(ctx context.Context, userID, movieID int64) (*models.RatingSimple, error) {
	if err := validateID("user id", userID); err != nil {
		return nil, err
	}
	if err := validateID("movie id", movieID); err != nil {
		return nil, err
	}

	rating, err := s.ratingRepo.FindByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}
	simple := rating.Simple()
	return &simple, nil
}

func (s *ratingService) ListRatings(ctx context.Context, query RatingQuery) ([]models.RatingSimple, error) {
	if err := query.validate(); err != nil {
		return nil, err
	}

	filter := repository.RatingFilter{
		MovieID:   query.MovieID,
		UserID:    query.UserID,
		MinRating: query.MinRating,
	}
	ratings, err := s.ratingRepo.FindAll(ctx, filter, query.Skip, query.Limit)
	if err != nil {
		return nil, err
	}
	return projectRatings(ratings), nil
}

func (s *ratingService) MovieRatings(ctx context.Context, movieID int64, skip, limit int) ([]models.RatingSimple, error) {
	if err := validateID("movie id", movieID); err != nil {
		return nil, err
	}
	return s.ListRatings(ctx, RatingQuery{MovieID: movieID, Skip: skip, Limit: limit})
}

func (s *ratingService) UserRatings(ctx context.Context, userID int64, skip, limit int) ([]models.RatingSimple, error) {
	if err := validateID("user id", userID); err != nil {
		return nil, err
	}
	return s.ListRatings(ctx, RatingQuery{UserID: userID, Skip: skip, Limit: limit})
}

func (s *ratingService) MovieRatingStats(ctx context.Context, movieID int64) (models.MovieRatingStats, error) {
	if err := validateID("movie id", movieID); err != nil {
		return models.MovieRatingStats{}, err
	}
	return s.ratingRepo.StatsForMovie(ctx, movieID)
}

func projectRatings(ratings []models.Rating) []models.RatingSimple {
	simple := make([]models.RatingSimple, 0, len(ratings))
	for _, rating := range ratings {
		simple = append(simple, rating.Simple())
	}
	return simple
}
