package repository

import (
	"context"
	"errors"
	"time"

	"movielens-api/internal/database"
	"movielens-api/internal/models"

	"gorm.io/gorm"
)

type LinkRepository interface {
	FindByMovieID(ctx context.Context, movieID int64) (*models.Link, error)
	// FindAll returns links ordered by movie_id ascending. A limit <= 0
	// means no limit.
	FindAll(ctx context.Context, skip, limit int) ([]models.Link, error)
	Count(ctx context.Context) (int64, error)
}

type linkRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewLinkRepository(db *database.Database) LinkRepository {
	return &linkRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *linkRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *linkRepository) FindByMovieID(ctx context.Context, movieID int64) (*models.Link, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var link models.Link
	err := r.db.WithContext(ctx).First(&link, "movie_id = ?", movieID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &link, nil
}

func (r *linkRepository) FindAll(ctx context.Context, skip, limit int) ([]models.Link, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var links []models.Link
	query := r.db.WithContext(ctx).Model(&models.Link{}).Order("movie_id ASC")
	if err := applyPagination(query, skip, limit).Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *linkRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Link{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
