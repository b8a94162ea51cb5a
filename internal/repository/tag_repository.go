package repository

import (
	"context"
	"errors"
	"time"

	"movielens-api/internal/database"
	"movielens-api/internal/models"

	"gorm.io/gorm"
)

// TagFilter is the optional row-level filter set for tag scans.
type TagFilter struct {
	MovieID int64
	UserID  int64
}

type TagRepository interface {
	// FindByKey looks up the full (userId, movieId, tag) triple; the text
	// must match exactly as stored.
	FindByKey(ctx context.Context, userID, movieID int64, tag string) (*models.Tag, error)
	// FindAll returns tags matching the filter, ordered by the
	// (user_id, movie_id, tag) primary key. A limit <= 0 means no limit.
	FindAll(ctx context.Context, filter TagFilter, skip, limit int) ([]models.Tag, error)
	// AllTexts returns every stored tag text, one entry per row. The
	// popularity ranking groups these in memory.
	AllTexts(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
}

type tagRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewTagRepository(db *database.Database) TagRepository {
	return &tagRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *tagRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func applyTagFilter(query *gorm.DB, filter TagFilter) *gorm.DB {
	if filter.MovieID > 0 {
		query = query.Where("movie_id = ?", filter.MovieID)
	}
	if filter.UserID > 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	return query
}

func (r *tagRepository) FindByKey(ctx context.Context, userID, movieID int64, tag string) (*models.Tag, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var row models.Tag
	err := r.db.WithContext(ctx).
		First(&row, "user_id = ? AND movie_id = ? AND tag = ?", userID, movieID, tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

func (r *tagRepository) FindAll(ctx context.Context, filter TagFilter, skip, limit int) ([]models.Tag, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var tags []models.Tag
	query := applyTagFilter(r.db.WithContext(ctx).Model(&models.Tag{}), filter).
		Order("user_id ASC, movie_id ASC, tag ASC")
	if err := applyPagination(query, skip, limit).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) AllTexts(ctx context.Context) ([]string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var texts []string
	if err := r.db.WithContext(ctx).Model(&models.Tag{}).Pluck("tag", &texts).Error; err != nil {
		return nil, err
	}
	return texts, nil
}

func (r *tagRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Tag{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
