package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movielens-api/internal/database"
	"movielens-api/internal/models"

	"gorm.io/gorm"
)

// MovieFilter is the optional row-level filter set for movie scans. Absent
// fields are no-ops; present fields combine with AND.
type MovieFilter struct {
	Title string // case-insensitive substring match on the title
	Genre string // case-insensitive substring match on the raw genres field
	Year  int    // release year, matched against the "(YYYY)" title suffix
}

type MovieRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Movie, error)
	FindByImdbID(ctx context.Context, imdbID string) (*models.Movie, error)
	// FindAll returns movies matching the filter, ordered by movie_id
	// ascending. A limit <= 0 means no limit.
	FindAll(ctx context.Context, filter MovieFilter, skip, limit int) ([]models.Movie, error)
	// FindByTag returns movies carrying at least one tag whose text contains
	// the given fragment (case-insensitive), ordered by movie_id ascending.
	FindByTag(ctx context.Context, tag string, skip, limit int) ([]models.Movie, error)
	Count(ctx context.Context) (int64, error)
}

type movieRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *movieRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// applyMovieFilter folds the present filter fields into the query. Keeping
// the composition in one place makes the AND contract explicit.
func applyMovieFilter(query *gorm.DB, filter MovieFilter) *gorm.DB {
	if filter.Title != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Title+"%")
	}
	if filter.Genre != "" {
		query = query.Where("genres ILIKE ?", "%"+filter.Genre+"%")
	}
	if filter.Year > 0 {
		query = query.Where("title LIKE ?", fmt.Sprintf("%%(%d)%%", filter.Year))
	}
	return query
}

func applyPagination(query *gorm.DB, skip, limit int) *gorm.DB {
	if skip > 0 {
		query = query.Offset(skip)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	return query
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).First(&movie, "movie_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindByImdbID(ctx context.Context, imdbID string) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	err := r.db.WithContext(ctx).
		Joins("JOIN links ON links.movie_id = movies.movie_id").
		Where("links.imdb_id = ?", imdbID).
		First(&movie).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, filter MovieFilter, skip, limit int) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	query := applyMovieFilter(r.db.WithContext(ctx).Model(&models.Movie{}), filter).
		Order("movie_id ASC")
	if err := applyPagination(query, skip, limit).Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepository) FindByTag(ctx context.Context, tag string, skip, limit int) ([]models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.Movie
	query := r.db.WithContext(ctx).Model(&models.Movie{}).
		Distinct("movies.*").
		Joins("JOIN tags ON tags.movie_id = movies.movie_id").
		Where("tags.tag ILIKE ?", "%"+tag+"%").
		Order("movies.movie_id ASC")
	if err := applyPagination(query, skip, limit).Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *movieRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Movie{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
