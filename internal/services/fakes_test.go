package services

import (
	"context"
	"io"
	"sort"
	"strconv"
	"strings"

	"movielens-api/internal/models"
	"movielens-api/internal/repository"

	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fakeMovieRepo is an in-memory MovieRepository mirroring the query
// contracts of the real one: case-insensitive substring matches, year
// matched against the "(YYYY)" title suffix, movie_id ordering.
type fakeMovieRepo struct {
	movies []models.Movie
	links  []models.Link
	tags   []models.Tag
	scans  int
}

func (r *fakeMovieRepo) FindByID(_ context.Context, id int64) (*models.Movie, error) {
	r.scans++
	for _, movie := range r.movies {
		if movie.MovieID == id {
			m := movie
			return &m, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeMovieRepo) FindByImdbID(_ context.Context, imdbID string) (*models.Movie, error) {
	r.scans++
	for _, link := range r.links {
		if link.ImdbID == imdbID {
			return r.FindByID(context.Background(), link.MovieID)
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeMovieRepo) FindAll(_ context.Context, filter repository.MovieFilter, skip, limit int) ([]models.Movie, error) {
	r.scans++
	matched := make([]models.Movie, 0, len(r.movies))
	for _, movie := range r.movies {
		if filter.Title != "" &&
			!strings.Contains(strings.ToLower(movie.Title), strings.ToLower(filter.Title)) {
			continue
		}
		if filter.Genre != "" &&
			!strings.Contains(strings.ToLower(movie.Genres), strings.ToLower(filter.Genre)) {
			continue
		}
		if filter.Year > 0 &&
			!strings.Contains(movie.Title, "("+strconv.Itoa(filter.Year)+")") {
			continue
		}
		matched = append(matched, movie)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].MovieID < matched[j].MovieID })
	return paginate(matched, skip, limit), nil
}

func (r *fakeMovieRepo) FindByTag(_ context.Context, tag string, skip, limit int) ([]models.Movie, error) {
	r.scans++
	seen := make(map[int64]struct{})
	matched := make([]models.Movie, 0)
	for _, row := range r.tags {
		if !strings.Contains(strings.ToLower(row.Tag), strings.ToLower(tag)) {
			continue
		}
		if _, ok := seen[row.MovieID]; ok {
			continue
		}
		seen[row.MovieID] = struct{}{}
		for _, movie := range r.movies {
			if movie.MovieID == row.MovieID {
				matched = append(matched, movie)
				break
			}
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].MovieID < matched[j].MovieID })
	return paginate(matched, skip, limit), nil
}

func (r *fakeMovieRepo) Count(context.Context) (int64, error) {
	return int64(len(r.movies)), nil
}

type fakeRatingRepo struct {
	ratings []models.Rating
	scans   int
}

func (r *fakeRatingRepo) FindByUserAndMovie(_ context.Context, userID, movieID int64) (*models.Rating, error) {
	r.scans++
	for _, rating := range r.ratings {
		if rating.UserID == userID && rating.MovieID == movieID {
			row := rating
			return &row, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeRatingRepo) FindAll(_ context.Context, filter repository.RatingFilter, skip, limit int) ([]models.Rating, error) {
	r.scans++
	matched := make([]models.Rating, 0, len(r.ratings))
	for _, rating := range r.ratings {
		if filter.MovieID > 0 && rating.MovieID != filter.MovieID {
			continue
		}
		if filter.UserID > 0 && rating.UserID != filter.UserID {
			continue
		}
		if filter.MinRating != nil && rating.Rating < *filter.MinRating {
			continue
		}
		matched = append(matched, rating)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].UserID != matched[j].UserID {
			return matched[i].UserID < matched[j].UserID
		}
		return matched[i].MovieID < matched[j].MovieID
	})
	return paginate(matched, skip, limit), nil
}

func (r *fakeRatingRepo) FindAllByUser(ctx context.Context, userID int64) ([]models.Rating, error) {
	return r.FindAll(ctx, repository.RatingFilter{UserID: userID}, 0, 0)
}

func (r *fakeRatingRepo) StatsForMovie(_ context.Context, movieID int64) (models.MovieRatingStats, error) {
	stats := models.MovieRatingStats{MovieID: movieID}
	var sum float64
	for _, rating := range r.ratings {
		if rating.MovieID == movieID {
			sum += rating.Rating
			stats.RatingCount++
		}
	}
	if stats.RatingCount > 0 {
		avg := sum / float64(stats.RatingCount)
		stats.AverageRating = &avg
	}
	return stats, nil
}

func (r *fakeRatingRepo) StatsForMovies(ctx context.Context, movieIDs []int64) (map[int64]models.MovieRatingStats, error) {
	stats := make(map[int64]models.MovieRatingStats, len(movieIDs))
	for _, id := range movieIDs {
		st, _ := r.StatsForMovie(ctx, id)
		if st.RatingCount > 0 {
			stats[id] = st
		}
	}
	return stats, nil
}

func (r *fakeRatingRepo) StatsAll(ctx context.Context) (map[int64]models.MovieRatingStats, error) {
	ids := make([]int64, 0, len(r.ratings))
	seen := make(map[int64]struct{})
	for _, rating := range r.ratings {
		if _, ok := seen[rating.MovieID]; !ok {
			seen[rating.MovieID] = struct{}{}
			ids = append(ids, rating.MovieID)
		}
	}
	return r.StatsForMovies(ctx, ids)
}

func (r *fakeRatingRepo) Count(context.Context) (int64, error) {
	return int64(len(r.ratings)), nil
}

func (r *fakeRatingRepo) DistinctUserCount(context.Context) (int64, error) {
	users := make(map[int64]struct{})
	for _, rating := range r.ratings {
		users[rating.UserID] = struct{}{}
	}
	return int64(len(users)), nil
}

func (r *fakeRatingRepo) GlobalAverage(context.Context) (*float64, error) {
	if len(r.ratings) == 0 {
		return nil, nil
	}
	var sum float64
	for _, rating := range r.ratings {
		sum += rating.Rating
	}
	avg := sum / float64(len(r.ratings))
	return &avg, nil
}

type fakeTagRepo struct {
	tags  []models.Tag
	scans int
}

func (r *fakeTagRepo) FindByKey(_ context.Context, userID, movieID int64, tag string) (*models.Tag, error) {
	r.scans++
	for _, row := range r.tags {
		if row.UserID == userID && row.MovieID == movieID && row.Tag == tag {
			t := row
			return &t, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeTagRepo) FindAll(_ context.Context, filter repository.TagFilter, skip, limit int) ([]models.Tag, error) {
	r.scans++
	matched := make([]models.Tag, 0, len(r.tags))
	for _, row := range r.tags {
		if filter.MovieID > 0 && row.MovieID != filter.MovieID {
			continue
		}
		if filter.UserID > 0 && row.UserID != filter.UserID {
			continue
		}
		matched = append(matched, row)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].UserID != matched[j].UserID {
			return matched[i].UserID < matched[j].UserID
		}
		if matched[i].MovieID != matched[j].MovieID {
			return matched[i].MovieID < matched[j].MovieID
		}
		return matched[i].Tag < matched[j].Tag
	})
	return paginate(matched, skip, limit), nil
}

func (r *fakeTagRepo) AllTexts(context.Context) ([]string, error) {
	texts := make([]string, 0, len(r.tags))
	for _, row := range r.tags {
		texts = append(texts, row.Tag)
	}
	return texts, nil
}

func (r *fakeTagRepo) Count(context.Context) (int64, error) {
	return int64(len(r.tags)), nil
}

type fakeLinkRepo struct {
	links []models.Link
	scans int
}

func (r *fakeLinkRepo) FindByMovieID(_ context.Context, movieID int64) (*models.Link, error) {
	r.scans++
	for _, link := range r.links {
		if link.MovieID == movieID {
			l := link
			return &l, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeLinkRepo) FindAll(_ context.Context, skip, limit int) ([]models.Link, error) {
	r.scans++
	links := make([]models.Link, len(r.links))
	copy(links, r.links)
	sort.Slice(links, func(i, j int) bool { return links[i].MovieID < links[j].MovieID })
	return paginate(links, skip, limit), nil
}

func (r *fakeLinkRepo) Count(context.Context) (int64, error) {
	return int64(len(r.links)), nil
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func int64Ptr(i int64) *int64 { return &i }

// fixture is a small dataset shaped like the real one: pipe-delimited
// genres, year suffixes in titles, one movie without ratings and one
// without a link row.
type fixture struct {
	movies  *fakeMovieRepo
	ratings *fakeRatingRepo
	tags    *fakeTagRepo
	links   *fakeLinkRepo
}

func newFixture() fixture {
	movies := []models.Movie{
		{MovieID: 1, Title: "Toy Story (1995)", Genres: "Adventure|Animation|Children|Comedy|Fantasy"},
		{MovieID: 2, Title: "Jumanji (1995)", Genres: "Adventure|Children|Fantasy"},
		{MovieID: 3, Title: "Grumpier Old Men (1995)", Genres: "Comedy|Romance"},
		{MovieID: 4, Title: "Heat (1995)", Genres: "Action|Crime|Thriller"},
		{MovieID: 5, Title: "Sabrina (1995)", Genres: "Comedy|Romance"},
		{MovieID: 6, Title: "GoldenEye (1995)", Genres: "Action|Adventure|Thriller"},
		{MovieID: 7, Title: "Found Footage (2003)", Genres: "(no genres listed)"},
	}
	ratings := []models.Rating{
		{UserID: 1, MovieID: 1, Rating: 4.0, Timestamp: 964982703},
		{UserID: 2, MovieID: 1, Rating: 5.0, Timestamp: 964982931},
		{UserID: 3, MovieID: 1, Rating: 3.0, Timestamp: 964983815},
		{UserID: 1, MovieID: 2, Rating: 3.0, Timestamp: 964982224},
		{UserID: 2, MovieID: 2, Rating: 4.0, Timestamp: 964983034},
		{UserID: 2, MovieID: 3, Rating: 2.0, Timestamp: 964982310},
		{UserID: 3, MovieID: 4, Rating: 5.0, Timestamp: 964984086},
		{UserID: 4, MovieID: 4, Rating: 4.5, Timestamp: 964980868},
		{UserID: 1, MovieID: 6, Rating: 4.5, Timestamp: 964982563},
	}
	tags := []models.Tag{
		{UserID: 1, MovieID: 1, Tag: "pixar", Timestamp: 1139045764},
		{UserID: 2, MovieID: 1, Tag: "pixar", Timestamp: 1139045800},
		{UserID: 2, MovieID: 1, Tag: "fun", Timestamp: 1139045825},
		{UserID: 3, MovieID: 2, Tag: "fantasy", Timestamp: 1139045950},
		{UserID: 4, MovieID: 4, Tag: "heist", Timestamp: 1139046010},
	}
	links := []models.Link{
		{MovieID: 1, ImdbID: "0114709", TmdbID: strPtr("862")},
		{MovieID: 2, ImdbID: "0113497", TmdbID: strPtr("8844")},
		{MovieID: 4, ImdbID: "0113277", TmdbID: strPtr("949")},
	}

	return fixture{
		movies:  &fakeMovieRepo{movies: movies, links: links, tags: tags},
		ratings: &fakeRatingRepo{ratings: ratings},
		tags:    &fakeTagRepo{tags: tags},
		links:   &fakeLinkRepo{links: links},
	}
}
