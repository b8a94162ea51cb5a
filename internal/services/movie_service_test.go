package services

import (
	"context"
	"testing"

	"movielens-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMovieService(f fixture) MovieService {
	return NewMovieService(f.movies, f.ratings, f.tags, f.links, newTestLogger())
}

func TestGetMovie(t *testing.T) {
	f := newFixture()
	svc := newMovieService(f)

	movie, err := svc.GetMovie(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Toy Story (1995)", movie.Title)

	_, err = svc.GetMovie(context.Background(), 999)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.GetMovie(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetMovieDetails(t *testing.T) {
	f := newFixture()
	svc := newMovieService(f)

	details, err := svc.GetMovieDetails(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, details.AverageRating)
	assert.InDelta(t, 4.0, *details.AverageRating, 1e-9)
	assert.Equal(t, int64(3), details.RatingCount)
	assert.Len(t, details.Tags, 3)
	require.NotNil(t, details.Link)
	assert.Equal(t, "0114709", details.Link.ImdbID)
}

func TestGetMovieDetailsWithoutLinkOrRatings(t *testing.T) {
	f := newFixture()
	svc := newMovieService(f)

	// Movie 5 has neither ratings nor a link row; both stay null.
	details, err := svc.GetMovieDetails(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, details.AverageRating)
	assert.Equal(t, int64(0), details.RatingCount)
	assert.Nil(t, details.Link)
	assert.Empty(t, details.Tags)
}

func TestGetMovieByImdbID(t *testing.T) {
	f := newFixture()
	svc := newMovieService(f)

	movie, err := svc.GetMovieByImdbID(context.Background(), "0113497")
	require.NoError(t, err)
	assert.Equal(t, int64(2), movie.MovieID)

	_, err = svc.GetMovieByImdbID(context.Background(), "9999999")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.GetMovieByImdbID(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListMoviesFilters(t *testing.T) {
	f := newFixture()
	svc := newMovieService(f)
	ctx := context.Background()

	// Case-insensitive genre substring, ordered by movie id.
	movies, err := svc.ListMovies(ctx, MovieQuery{Genre: "comedy"})
	require.NoError(t, err)
	require.Len(t, movies, 3)
	assert.Equal(t, int64(1), movies[0].MovieID)
	assert.Equal(t, int64(3), movies[1].MovieID)
	assert.Equal(t, int64(5), movies[2].MovieID)

	// Title substring.
	movies, err = svc.ListMovies(ctx, MovieQuery{Title: "STORY"})
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, int64(1), movies[0].MovieID)

	// Year against the title suffix.
	movies, err = svc.ListMovies(ctx, MovieQuery{Year: 2003})
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, int64(7), movies[0].MovieID)

	// Filters combine with AND.
	movies, err = svc.ListMovies(ctx, MovieQuery{Genre: "comedy", Title: "sabrina"})
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, int64(5), movies[0].MovieID)

	// No match is an empty list, not an error.
	movies, err = svc.ListMovies(ctx, MovieQuery{Title: "no such movie"})
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestListMoviesPagination(t *testing.T) {
	f := newFixture()
	svc := newMovieService(f)
	ctx := context.Background()

	first, err := svc.ListMovies(ctx, MovieQuery{Limit: 3})
	require.NoError(t, err)
	second, err := svc.ListMovies(ctx, MovieQuery{Skip: 3, Limit: 3})
	require.NoError(t, err)

	require.Len(t, first, 3)
	require.Len(t, second, 3)
	assert.Equal(t, int64(1), first[0].MovieID)
	assert.Equal(t, int64(4), second[0].MovieID)

	// Skip past the end yields an empty list.
	past, err := svc.ListMovies(ctx, MovieQuery{Skip: 100, Limit: 3})
	require.NoError(t, err)
	assert.Empty(t, past)
}

func TestListMoviesRejectsBadPagination(t *testing.T) {
	f := newFixture()
	svc := newMovieService(f)

	_, err := svc.ListMovies(context.Background(), MovieQuery{Skip: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.ListMovies(context.Background(), MovieQuery{Limit: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// Validation fails before any store access.
	assert.Zero(t, f.movies.scans)
}

func TestSearchMoviesWithoutThresholds(t *testing.T) {
	f := newFixture()
	svc := newMovieService(f)

	rated, err := svc.SearchMovies(context.Background(), MovieQuery{Genre: "romance"})
	require.NoError(t, err)
	require.Len(t, rated, 2)

	// Movie 3 carries its aggregates, movie 5 has none.
	assert.Equal(t, int64(3), rated[0].MovieID)
	require.NotNil(t, rated[0].AverageRating)
	assert.InDelta(t, 2.0, *rated[0].AverageRating, 1e-9)
	assert.Equal(t, int64(5), rated[1].MovieID)
	assert.Nil(t, rated[1].AverageRating)
	assert.Equal(t, int64(0), rated[1].RatingCount)
}

func TestSearchMoviesAggregateThresholds(t *testing.T) {
	f := newFixture()
	svc := newMovieService(f)
	ctx := context.Background()

	// Averages: 1 -> 4.0, 2 -> 3.5, 3 -> 2.0, 4 -> 4.75, 6 -> 4.5.
	rated, err := svc.SearchMovies(ctx, MovieQuery{MinRating: floatPtr(4.0)})
	require.NoError(t, err)
	require.Len(t, rated, 3)
	assert.Equal(t, int64(1), rated[0].MovieID)
	assert.Equal(t, int64(4), rated[1].MovieID)
	assert.Equal(t, int64(6), rated[2].MovieID)

	// Unrated movies never pass a rating threshold.
	for _, movie := range rated {
		assert.NotNil(t, movie.AverageRating)
	}

	// Both thresholds combine with AND.
	rated, err = svc.SearchMovies(ctx, MovieQuery{
		MinRating:      floatPtr(4.0),
		MinRatingCount: int64Ptr(2),
	})
	require.NoError(t, err)
	require.Len(t, rated, 2)
	assert.Equal(t, int64(1), rated[0].MovieID)
	assert.Equal(t, int64(4), rated[1].MovieID)
}

func TestSearchMoviesPaginatesAfterThresholds(t *testing.T) {
	f := newFixture()
	svc := newMovieService(f)
	ctx := context.Background()

	// Three movies pass the threshold; the window must slice the matched
	// set, not the raw row scan.
	page, err := svc.SearchMovies(ctx, MovieQuery{MinRating: floatPtr(4.0), Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, int64(4), page[0].MovieID)

	past, err := svc.SearchMovies(ctx, MovieQuery{MinRating: floatPtr(4.0), Skip: 10})
	require.NoError(t, err)
	assert.Empty(t, past)
}

func TestSearchMoviesRejectsOutOfRangeThreshold(t *testing.T) {
	f := newFixture()
	svc := newMovieService(f)

	_, err := svc.SearchMovies(context.Background(), MovieQuery{MinRating: floatPtr(5.5)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SearchMovies(context.Background(), MovieQuery{MinRatingCount: int64Ptr(-1)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Zero(t, f.movies.scans)
}

func TestSearchByTag(t *testing.T) {
	f := newFixture()
	svc := newMovieService(f)

	// Two users tagged movie 1 "pixar"; the movie appears once.
	movies, err := svc.SearchByTag(context.Background(), "PIX", 0, 10)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, int64(1), movies[0].MovieID)

	movies, err = svc.SearchByTag(context.Background(), "nosuchtag", 0, 10)
	require.NoError(t, err)
	assert.Empty(t, movies)

	_, err = svc.SearchByTag(context.Background(), "", 0, 10)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTopRated(t *testing.T) {
	f := newFixture()
	svc := newMovieService(f)

	// Best average first: 4 (4.75), 6 (4.5), 1 (4.0), 2 (3.5), 3 (2.0).
	rated, err := svc.TopRated(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, rated, 5)
	assert.Equal(t, int64(4), rated[0].MovieID)
	assert.Equal(t, int64(6), rated[1].MovieID)
	assert.Equal(t, int64(1), rated[2].MovieID)
	assert.Equal(t, int64(2), rated[3].MovieID)
	assert.Equal(t, int64(3), rated[4].MovieID)

	// The rating-count floor drops thin movies.
	rated, err = svc.TopRated(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Len(t, rated, 3)
	assert.Equal(t, int64(4), rated[0].MovieID)
	assert.Equal(t, int64(1), rated[1].MovieID)
	assert.Equal(t, int64(2), rated[2].MovieID)

	_, err = svc.TopRated(context.Background(), 0, 10)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMostRated(t *testing.T) {
	f := newFixture()
	svc := newMovieService(f)

	// Counts: 1 -> 3, 2 -> 2, 4 -> 2, 3 -> 1, 6 -> 1. Ties break by
	// movie id ascending.
	rated, err := svc.MostRated(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, rated, 5)
	assert.Equal(t, int64(1), rated[0].MovieID)
	assert.Equal(t, int64(2), rated[1].MovieID)
	assert.Equal(t, int64(4), rated[2].MovieID)
	assert.Equal(t, int64(3), rated[3].MovieID)
	assert.Equal(t, int64(6), rated[4].MovieID)

	truncated, err := svc.MostRated(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, truncated, 2)
	assert.Equal(t, int64(1), truncated[0].MovieID)
	assert.Equal(t, int64(2), truncated[1].MovieID)
}
