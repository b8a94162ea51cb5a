package services

import (
	"context"
	"errors"
	"sort"

	"movielens-api/internal/models"
	"movielens-api/internal/repository"

	"github.com/sirupsen/logrus"
)

// LikedThreshold is the rating at or above which a movie counts as liked
// when building a user's genre profile.
const LikedThreshold = 4.0

// RecommendService holds the content-based similarity and recommendation
// logic. Both operations scan the full movie table per request, which is
// O(movies x genres); at MovieLens scale that is cheap. If the dataset
// outgrows this, the scan should be replaced by a genre inverted index
// (genre -> movie id set) built once at startup.
type RecommendService interface {
	// SimilarMovies ranks every other movie by the number of genres it
	// shares with the reference. Ties break by rating count descending,
	// then movie id ascending. The reference itself is never included; a
	// missing reference or one without genres yields an empty list.
	SimilarMovies(ctx context.Context, movieID int64, limit int) ([]models.MovieSimple, error)
	// RecommendationsForUser builds a genre-frequency profile from the
	// movies the user rated at or above LikedThreshold, then scores every
	// movie the user has not rated by the summed frequency of its genres.
	// Ties break by average rating descending, then movie id ascending.
	// A user with no ratings, or none above the threshold, gets an empty
	// list, not an error.
	RecommendationsForUser(ctx context.Context, userID int64, limit int) ([]models.MovieSimple, error)
}

type recommendService struct {
	movieRepo  repository.MovieRepository
	ratingRepo repository.RatingRepository
	logger     *logrus.Logger
}

func NewRecommendService(
	movieRepo repository.MovieRepository,
	ratingRepo repository.RatingRepository,
	logger *logrus.Logger,
) RecommendService {
	return &recommendService{
		movieRepo:  movieRepo,
		ratingRepo: ratingRepo,
		logger:     logger,
	}
}

type scoredMovie struct {
	movie   models.Movie
	score   int64
	ratings int64
	average float64
}

func (s *recommendService) SimilarMovies(ctx context.Context, movieID int64, limit int) ([]models.MovieSimple, error) {
	if err := validateID("movie id", movieID); err != nil {
		return nil, err
	}
	if err := validatePagination(0, limit); err != nil {
		return nil, err
	}

	reference, err := s.movieRepo.FindByID(ctx, movieID)
	if errors.Is(err, repository.ErrNotFound) {
		return []models.MovieSimple{}, nil
	}
	if err != nil {
		return nil, err
	}

	referenceGenres := genreSet(splitGenres(reference.Genres))
	if len(referenceGenres) == 0 {
		return []models.MovieSimple{}, nil
	}

	movies, err := s.movieRepo.FindAll(ctx, repository.MovieFilter{}, 0, 0)
	if err != nil {
		return nil, err
	}
	stats, err := s.ratingRepo.StatsAll(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]scoredMovie, 0, len(movies))
	for _, movie := range movies {
		if movie.MovieID == reference.MovieID {
			continue
		}
		overlap := genreOverlap(referenceGenres, splitGenres(movie.Genres))
		if overlap == 0 {
			continue
		}
		candidates = append(candidates, scoredMovie{
			movie:   movie,
			score:   int64(overlap),
			ratings: stats[movie.MovieID].RatingCount,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		if candidates[i].ratings != candidates[j].ratings {
			return candidates[i].ratings > candidates[j].ratings
		}
		return candidates[i].movie.MovieID < candidates[j].movie.MovieID
	})

	return projectScored(paginate(candidates, 0, limit)), nil
}

func (s *recommendService) RecommendationsForUser(ctx context.Context, userID int64, limit int) ([]models.MovieSimple, error) {
	if err := validateID("user id", userID); err != nil {
		return nil, err
	}
	if err := validatePagination(0, limit); err != nil {
		return nil, err
	}

	ratings, err := s.ratingRepo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ratings) == 0 {
		return []models.MovieSimple{}, nil
	}

	rated := make(map[int64]struct{}, len(ratings))
	liked := make(map[int64]struct{})
	for _, rating := range ratings {
		rated[rating.MovieID] = struct{}{}
		if rating.Rating >= LikedThreshold {
			liked[rating.MovieID] = struct{}{}
		}
	}
	if len(liked) == 0 {
		return []models.MovieSimple{}, nil
	}

	movies, err := s.movieRepo.FindAll(ctx, repository.MovieFilter{}, 0, 0)
	if err != nil {
		return nil, err
	}

	// Genre profile: how often each genre appears across liked movies.
	profile := make(map[string]int64)
	for _, movie := range movies {
		if _, ok := liked[movie.MovieID]; !ok {
			continue
		}
		for _, genre := range splitGenres(movie.Genres) {
			profile[genre]++
		}
	}
	if len(profile) == 0 {
		return []models.MovieSimple{}, nil
	}

	stats, err := s.ratingRepo.StatsAll(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]scoredMovie, 0, len(movies))
	for _, movie := range movies {
		if _, ok := rated[movie.MovieID]; ok {
			continue
		}
		var score int64
		for _, genre := range splitGenres(movie.Genres) {
			score += profile[genre]
		}
		if score == 0 {
			continue
		}
		candidate := scoredMovie{movie: movie, score: score}
		if st, ok := stats[movie.MovieID]; ok && st.AverageRating != nil {
			candidate.average = *st.AverageRating
		}
		candidates = append(candidates, candidate)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		if candidates[i].average != candidates[j].average {
			return candidates[i].average > candidates[j].average
		}
		return candidates[i].movie.MovieID < candidates[j].movie.MovieID
	})

	return projectScored(paginate(candidates, 0, limit)), nil
}

func projectScored(candidates []scoredMovie) []models.MovieSimple {
	simple := make([]models.MovieSimple, 0, len(candidates))
	for _, candidate := range candidates {
		simple = append(simple, candidate.movie.Simple())
	}
	return simple
}
