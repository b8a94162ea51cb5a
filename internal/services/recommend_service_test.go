package services

import (
	"context"
	"testing"

	"movielens-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecommendService(f fixture) RecommendService {
	return NewRecommendService(f.movies, f.ratings, newTestLogger())
}

func TestSimilarMoviesRanksByGenreOverlap(t *testing.T) {
	f := fixture{
		movies: &fakeMovieRepo{movies: []models.Movie{
			{MovieID: 1, Title: "Reference (2001)", Genres: "Action|Comedy"},
			{MovieID: 2, Title: "Partial Match (2002)", Genres: "Comedy"},
			{MovieID: 3, Title: "No Match (2003)", Genres: "Drama"},
		}},
		ratings: &fakeRatingRepo{},
	}
	svc := newRecommendService(f)

	similar, err := svc.SimilarMovies(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, similar, 1)
	assert.Equal(t, int64(2), similar[0].MovieID)
}

func TestSimilarMoviesExcludesReferenceAndOrders(t *testing.T) {
	f := newFixture()
	svc := newRecommendService(f)

	// Reference is movie 2 (Adventure|Children|Fantasy). Movie 1 shares all
	// three genres; 6 shares Adventure only.
	similar, err := svc.SimilarMovies(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Len(t, similar, 2)
	assert.Equal(t, int64(1), similar[0].MovieID)
	assert.Equal(t, int64(6), similar[1].MovieID)
	for _, movie := range similar {
		assert.NotEqual(t, int64(2), movie.MovieID)
	}
}

func TestSimilarMoviesTieBreaksByRatingCount(t *testing.T) {
	f := fixture{
		movies: &fakeMovieRepo{movies: []models.Movie{
			{MovieID: 1, Title: "Reference (2001)", Genres: "Action"},
			{MovieID: 2, Title: "Quiet (2002)", Genres: "Action"},
			{MovieID: 3, Title: "Popular (2003)", Genres: "Action"},
		}},
		ratings: &fakeRatingRepo{ratings: []models.Rating{
			{UserID: 1, MovieID: 3, Rating: 3.0},
			{UserID: 2, MovieID: 3, Rating: 4.0},
			{UserID: 1, MovieID: 2, Rating: 5.0},
		}},
	}
	svc := newRecommendService(f)

	// Equal overlap; the better-known movie wins.
	similar, err := svc.SimilarMovies(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, similar, 2)
	assert.Equal(t, int64(3), similar[0].MovieID)
	assert.Equal(t, int64(2), similar[1].MovieID)
}

func TestSimilarMoviesEmptyCases(t *testing.T) {
	f := newFixture()
	svc := newRecommendService(f)
	ctx := context.Background()

	// Missing reference is an empty list, not an error.
	similar, err := svc.SimilarMovies(ctx, 999, 10)
	require.NoError(t, err)
	assert.Empty(t, similar)

	// A reference without genres has nothing to overlap with.
	similar, err = svc.SimilarMovies(ctx, 7, 10)
	require.NoError(t, err)
	assert.Empty(t, similar)

	_, err = svc.SimilarMovies(ctx, -1, 10)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSimilarMoviesRespectsLimit(t *testing.T) {
	f := newFixture()
	svc := newRecommendService(f)

	similar, err := svc.SimilarMovies(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Len(t, similar, 1)
}

func TestRecommendationsExcludeRatedMovies(t *testing.T) {
	f := fixture{
		movies: &fakeMovieRepo{movies: []models.Movie{
			{MovieID: 1, Title: "Liked (2001)", Genres: "Sci-Fi|Thriller"},
			{MovieID: 2, Title: "Seen (2002)", Genres: "Sci-Fi"},
			{MovieID: 3, Title: "Unseen (2003)", Genres: "Sci-Fi|Thriller"},
			{MovieID: 4, Title: "Unrelated (2004)", Genres: "Documentary"},
		}},
		ratings: &fakeRatingRepo{ratings: []models.Rating{
			{UserID: 9, MovieID: 1, Rating: 5.0},
			{UserID: 9, MovieID: 2, Rating: 2.0},
		}},
	}
	svc := newRecommendService(f)

	// Movie 2 shares a genre but was already rated; movie 4 shares nothing.
	recs, err := svc.RecommendationsForUser(context.Background(), 9, 10)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, int64(3), recs[0].MovieID)
}

func TestRecommendationsScoreByGenreProfile(t *testing.T) {
	f := fixture{
		movies: &fakeMovieRepo{movies: []models.Movie{
			{MovieID: 1, Title: "A (2001)", Genres: "Action|Comedy"},
			{MovieID: 2, Title: "B (2002)", Genres: "Action"},
			{MovieID: 3, Title: "C (2003)", Genres: "Action|Comedy"},
			{MovieID: 4, Title: "D (2004)", Genres: "Comedy"},
		}},
		ratings: &fakeRatingRepo{ratings: []models.Rating{
			{UserID: 5, MovieID: 1, Rating: 4.5},
			{UserID: 5, MovieID: 2, Rating: 4.0},
		}},
	}
	svc := newRecommendService(f)

	// Profile from liked movies 1 and 2: Action x2, Comedy x1. Movie 3
	// scores 3, movie 4 scores 1.
	recs, err := svc.RecommendationsForUser(context.Background(), 5, 10)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, int64(3), recs[0].MovieID)
	assert.Equal(t, int64(4), recs[1].MovieID)
}

func TestRecommendationsTieBreakByAverageRating(t *testing.T) {
	f := fixture{
		movies: &fakeMovieRepo{movies: []models.Movie{
			{MovieID: 1, Title: "Liked (2001)", Genres: "Horror"},
			{MovieID: 2, Title: "Weak (2002)", Genres: "Horror"},
			{MovieID: 3, Title: "Strong (2003)", Genres: "Horror"},
		}},
		ratings: &fakeRatingRepo{ratings: []models.Rating{
			{UserID: 7, MovieID: 1, Rating: 5.0},
			{UserID: 8, MovieID: 2, Rating: 2.0},
			{UserID: 8, MovieID: 3, Rating: 4.5},
		}},
	}
	svc := newRecommendService(f)

	recs, err := svc.RecommendationsForUser(context.Background(), 7, 10)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, int64(3), recs[0].MovieID)
	assert.Equal(t, int64(2), recs[1].MovieID)
}

func TestRecommendationsEmptyCases(t *testing.T) {
	f := newFixture()
	svc := newRecommendService(f)
	ctx := context.Background()

	// Unknown user: no history, empty list.
	recs, err := svc.RecommendationsForUser(ctx, 999, 10)
	require.NoError(t, err)
	assert.Empty(t, recs)

	// All of user 2's ratings sit below the liked threshold, so there is
	// no genre profile to recommend from.
	lukewarm := fixture{
		movies: f.movies,
		ratings: &fakeRatingRepo{ratings: []models.Rating{
			{UserID: 2, MovieID: 1, Rating: 3.5},
			{UserID: 2, MovieID: 3, Rating: 2.0},
		}},
	}
	recs, err = newRecommendService(lukewarm).RecommendationsForUser(ctx, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, recs)

	_, err = svc.RecommendationsForUser(ctx, 0, 10)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
