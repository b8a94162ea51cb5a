package services

import (
	"context"
	"sort"

	"movielens-api/internal/models"
	"movielens-api/internal/repository"

	"github.com/sirupsen/logrus"
)

type TagService interface {
	// GetTag looks up the exact (userId, movieId, tag text) triple.
	GetTag(ctx context.Context, userID, movieID int64, text string) (*models.TagSimple, error)
	ListTags(ctx context.Context, movieID, userID int64, skip, limit int) ([]models.TagSimple, error)
	// PopularTags groups every stored tag by exact text and returns the
	// most frequent ones, count descending, tag text ascending on ties.
	PopularTags(ctx context.Context, limit int) ([]models.TagCount, error)
}

type tagService struct {
	tagRepo repository.TagRepository
	logger  *logrus.Logger
}

func NewTagService(tagRepo repository.TagRepository, logger *logrus.Logger) TagService {
	return &tagService{
		tagRepo: tagRepo,
		logger:  logger,
	}
}

func (s *tagService) GetTag(ctx context.Context, userID, movieID int64, text string) (*models.TagSimple, error) {
	if err := validateID("user id", userID); err != nil {
		return nil, err
	}
	if err := validateID("movie id", movieID); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, errInvalid("tag text must not be empty")
	}

	tag, err := s.tagRepo.FindByKey(ctx, userID, movieID, text)
	if err != nil {
		return nil, err
	}
	simple := tag.Simple()
	return &simple, nil
}

func (s *tagService) ListTags(ctx context.Context, movieID, userID int64, skip, limit int) ([]models.TagSimple, error) {
	if movieID < 0 {
		return nil, errInvalid("movie id must not be negative")
	}
	if userID < 0 {
		return nil, errInvalid("user id must not be negative")
	}
	if err := validatePagination(skip, limit); err != nil {
		return nil, err
	}

	tags, err := s.tagRepo.FindAll(ctx, repository.TagFilter{MovieID: movieID, UserID: userID}, skip, limit)
	if err != nil {
		return nil, err
	}

	simple := make([]models.TagSimple, 0, len(tags))
	for _, tag := range tags {
		simple = append(simple, tag.Simple())
	}
	return simple, nil
}

func (s *tagService) PopularTags(ctx context.Context, limit int) ([]models.TagCount, error) {
	if err := validatePagination(0, limit); err != nil {
		return nil, err
	}

	texts, err := s.tagRepo.AllTexts(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(texts))
	for _, text := range texts {
		counts[text]++
	}

	ranking := make([]models.TagCount, 0, len(counts))
	for text, count := range counts {
		ranking = append(ranking, models.TagCount{Tag: text, Count: count})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Count != ranking[j].Count {
			return ranking[i].Count > ranking[j].Count
		}
		return ranking[i].Tag < ranking[j].Tag
	})
	return paginate(ranking, 0, limit), nil
}
