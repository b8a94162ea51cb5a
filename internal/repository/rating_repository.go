package repository

import (
	"context"
	"errors"
	"time"

	"movielens-api/internal/database"
	"movielens-api/internal/models"

	"gorm.io/gorm"
)

// RatingFilter is the optional row-level filter set for rating scans.
// MinRating here filters individual rows (rating >= x); it is unrelated to
// the aggregate min_rating threshold of advanced movie search.
type RatingFilter struct {
	MovieID   int64
	UserID    int64
	MinRating *float64
}

type RatingRepository interface {
	FindByUserAndMovie(ctx context.Context, userID, movieID int64) (*models.Rating, error)
	// FindAll returns ratings matching the filter, ordered by the
	// (user_id, movie_id) primary key. A limit <= 0 means no limit.
	FindAll(ctx context.Context, filter RatingFilter, skip, limit int) ([]models.Rating, error)
	// FindAllByUser returns every rating a user has issued, unpaginated.
	// The recommendation engine consumes the full history.
	FindAllByUser(ctx context.Context, userID int64) ([]models.Rating, error)
	// StatsForMovie computes AVG and COUNT over one movie's ratings. A movie
	// with no ratings yields a zero count and a nil average.
	StatsForMovie(ctx context.Context, movieID int64) (models.MovieRatingStats, error)
	// StatsForMovies computes per-movie aggregates for a candidate id set.
	// Movies without ratings are simply absent from the map.
	StatsForMovies(ctx context.Context, movieIDs []int64) (map[int64]models.MovieRatingStats, error)
	// StatsAll computes per-movie aggregates over the whole ratings table.
	StatsAll(ctx context.Context) (map[int64]models.MovieRatingStats, error)
	Count(ctx context.Context) (int64, error)
	DistinctUserCount(ctx context.Context) (int64, error)
	// GlobalAverage is the mean over every rating row, nil when there are none.
	GlobalAverage(ctx context.Context) (*float64, error)
}

type ratingRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewRatingRepository(db *database.Database) RatingRepository {
	return &ratingRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *ratingRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func applyRatingFilter(query *gorm.DB, filter RatingFilter) *gorm.DB {
	if filter.MovieID > 0 {
		query = query.Where("movie_id = ?", filter.MovieID)
	}
	if filter.UserID > 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.MinRating != nil {
		query = query.Where("rating >= ?", *filter.MinRating)
	}
	return query
}

func (r *ratingRepository) FindByUserAndMovie(ctx context.Context, userID, movieID int64) (*models.Rating, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rating models.Rating
	err := r.db.WithContext(ctx).
		First(&rating, "user_id = ? AND movie_id = ?", userID, movieID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) FindAll(ctx context.Context, filter RatingFilter, skip, limit int) ([]models.Rating, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var ratings []models.Rating
	query := applyRatingFilter(r.db.WithContext(ctx).Model(&models.Rating{}), filter).
		Order("user_id ASC, movie_id ASC")
	if err := applyPagination(query, skip, limit).Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) FindAllByUser(ctx context.Context, userID int64) ([]models.Rating, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var ratings []models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("movie_id ASC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// statsRow is the scan target for the aggregate queries.
type statsRow struct {
	MovieID       int64
	AverageRating float64
	RatingCount   int64
}

func (r *ratingRepository) StatsForMovie(ctx context.Context, movieID int64) (models.MovieRatingStats, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var row statsRow
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("COALESCE(AVG(rating), 0) AS average_rating, COUNT(*) AS rating_count").
		Where("movie_id = ?", movieID).
		Scan(&row).Error
	if err != nil {
		return models.MovieRatingStats{}, err
	}

	stats := models.MovieRatingStats{MovieID: movieID, RatingCount: row.RatingCount}
	if row.RatingCount > 0 {
		avg := row.AverageRating
		stats.AverageRating = &avg
	}
	return stats, nil
}

func (r *ratingRepository) StatsForMovies(ctx context.Context, movieIDs []int64) (map[int64]models.MovieRatingStats, error) {
	if len(movieIDs) == 0 {
		return map[int64]models.MovieRatingStats{}, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []statsRow
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("movie_id, AVG(rating) AS average_rating, COUNT(*) AS rating_count").
		Where("movie_id IN ?", movieIDs).
		Group("movie_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return statsRowsToMap(rows), nil
}

func (r *ratingRepository) StatsAll(ctx context.Context) (map[int64]models.MovieRatingStats, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []statsRow
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("movie_id, AVG(rating) AS average_rating, COUNT(*) AS rating_count").
		Group("movie_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return statsRowsToMap(rows), nil
}

func statsRowsToMap(rows []statsRow) map[int64]models.MovieRatingStats {
	stats := make(map[int64]models.MovieRatingStats, len(rows))
	for _, row := range rows {
		avg := row.AverageRating
		stats[row.MovieID] = models.MovieRatingStats{
			MovieID:       row.MovieID,
			AverageRating: &avg,
			RatingCount:   row.RatingCount,
		}
	}
	return stats
}

func (r *ratingRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Rating{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *ratingRepository) DistinctUserCount(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Distinct("user_id").
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *ratingRepository) GlobalAverage(ctx context.Context) (*float64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var row statsRow
	err := r.db.WithContext(ctx).Model(&models.Rating{}).
		Select("COALESCE(AVG(rating), 0) AS average_rating, COUNT(*) AS rating_count").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.RatingCount == 0 {
		return nil, nil
	}
	avg := row.AverageRating
	return &avg, nil
}
