package services

import (
	"context"
	"errors"
	"sort"

	"movielens-api/internal/models"
	"movielens-api/internal/repository"

	"github.com/sirupsen/logrus"
)

// MovieQuery bundles the movie search filters. Optional fields combine
// with AND; absent fields are no-ops. Title/Genre/Year filter rows;
// MinRating and MinRatingCount filter on derived per-movie aggregates and
// therefore only apply after the aggregation join.
type MovieQuery struct {
	Title          string
	Genre          string
	Year           int
	MinRating      *float64
	MinRatingCount *int64
	Skip           int
	Limit          int
}

func (q MovieQuery) validate() error {
	if err := validatePagination(q.Skip, q.Limit); err != nil {
		return err
	}
	if q.MinRating != nil {
		if err := validateRatingBound("min_rating", *q.MinRating); err != nil {
			return err
		}
	}
	if q.MinRatingCount != nil && *q.MinRatingCount < 0 {
		return errInvalid("min_rating_count must not be negative")
	}
	return nil
}

// hasAggregateFilter reports whether the query carries thresholds that can
// only be evaluated against computed rating aggregates.
func (q MovieQuery) hasAggregateFilter() bool {
	return q.MinRating != nil || q.MinRatingCount != nil
}

type MovieService interface {
	GetMovie(ctx context.Context, id int64) (*models.Movie, error)
	GetMovieDetails(ctx context.Context, id int64) (*models.MovieDetailed, error)
	GetMovieByImdbID(ctx context.Context, imdbID string) (*models.MovieSimple, error)
	// ListMovies applies the row-level filters (title, genre, year) with
	// pagination. Empty result is a normal outcome.
	ListMovies(ctx context.Context, query MovieQuery) ([]models.MovieSimple, error)
	// SearchMovies is the advanced search: row filters first, then the
	// aggregate thresholds, then ordering and pagination.
	SearchMovies(ctx context.Context, query MovieQuery) ([]models.MovieRated, error)
	SearchByTag(ctx context.Context, tag string, skip, limit int) ([]models.MovieSimple, error)
	// TopRated lists movies with at least minRatings ratings, best average
	// first. Ties break by rating count descending, then movie id ascending.
	TopRated(ctx context.Context, minRatings int64, limit int) ([]models.MovieRated, error)
	// MostRated lists movies by rating count descending, movie id ascending
	// on ties.
	MostRated(ctx context.Context, limit int) ([]models.MovieRated, error)
}

type movieService struct {
	movieRepo  repository.MovieRepository
	ratingRepo repository.RatingRepository
	tagRepo    repository.TagRepository
	linkRepo   repository.LinkRepository
	logger     *logrus.Logger
}

func NewMovieService(
	movieRepo repository.MovieRepository,
	ratingRepo repository.RatingRepository,
	tagRepo repository.TagRepository,
	linkRepo repository.LinkRepository,
	logger *logrus.Logger,
) MovieService {
	return &movieService{
		movieRepo:  movieRepo,
		ratingRepo: ratingRepo,
		tagRepo:    tagRepo,
		linkRepo:   linkRepo,
		logger:     logger,
	}
}

func (s *movieService) GetMovie(ctx context.Context, id int64) (*models.Movie, error) {
	if err := validateID("movie id", id); err != nil {
		return nil, err
	}
	return s.movieRepo.FindByID(ctx, id)
}

func (s *movieService) GetMovieDetails(ctx context.Context, id int64) (*models.MovieDetailed, error) {
	if err := validateID("movie id", id); err != nil {
		return nil, err
	}

	movie, err := s.movieRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stats, err := s.ratingRepo.StatsForMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	tags, err := s.tagRepo.FindAll(ctx, repository.TagFilter{MovieID: id}, 0, 0)
	if err != nil {
		return nil, err
	}

	details := &models.MovieDetailed{
		Movie:         *movie,
		AverageRating: stats.AverageRating,
		RatingCount:   stats.RatingCount,
		Tags:          make([]models.TagSimple, 0, len(tags)),
	}
	for _, tag := range tags {
		details.Tags = append(details.Tags, tag.Simple())
	}

	link, err := s.linkRepo.FindByMovieID(ctx, id)
	switch {
	case err == nil:
		simple := link.Simple()
		details.Link = &simple
	case errors.Is(err, repository.ErrNotFound):
		// A movie without a link row is fine; the field stays null.
	default:
		return nil, err
	}

	return details, nil
}

func (s *movieService) GetMovieByImdbID(ctx context.Context, imdbID string) (*models.MovieSimple, error) {
	if imdbID == "" {
		return nil, errInvalid("imdb id must not be empty")
	}
	movie, err := s.movieRepo.FindByImdbID(ctx, imdbID)
	if err != nil {
		return nil, err
	}
	simple := movie.Simple()
	return &simple, nil
}

func (s *movieService) ListMovies(ctx context.Context, query MovieQuery) ([]models.MovieSimple, error) {
	if err := query.validate(); err != nil {
		return nil, err
	}

	filter := repository.MovieFilter{Title: query.Title, Genre: query.Genre, Year: query.Year}
	movies, err := s.movieRepo.FindAll(ctx, filter, query.Skip, query.Limit)
	if err != nil {
		return nil, err
	}
	return projectSimple(movies), nil
}

func (s *movieService) SearchMovies(ctx context.Context, query MovieQuery) ([]models.MovieRated, error) {
	if err := query.validate(); err != nil {
		return nil, err
	}

	filter := repository.MovieFilter{Title: query.Title, Genre: query.Genre, Year: query.Year}

	// Without aggregate thresholds pagination can be pushed down to the
	// row scan; the aggregates are then only fetched for the page itself.
	if !query.hasAggregateFilter() {
		movies, err := s.movieRepo.FindAll(ctx, filter, query.Skip, query.Limit)
		if err != nil {
			return nil, err
		}
		stats, err := s.ratingRepo.StatsForMovies(ctx, movieIDs(movies))
		if err != nil {
			return nil, err
		}
		return joinStats(movies, stats), nil
	}

	// Phase 1: all row-filter candidates, in stable movie_id order.
	movies, err := s.movieRepo.FindAll(ctx, filter, 0, 0)
	if err != nil {
		return nil, err
	}

	// Phase 2: join the computed aggregates.
	stats, err := s.ratingRepo.StatsForMovies(ctx, movieIDs(movies))
	if err != nil {
		return nil, err
	}
	rated := joinStats(movies, stats)

	// Phase 3: aggregate thresholds, then pagination last.
	matched := rated[:0]
	for _, movie := range rated {
		if query.MinRating != nil &&
			(movie.AverageRating == nil || *movie.AverageRating < *query.MinRating) {
			continue
		}
		if query.MinRatingCount != nil && movie.RatingCount < *query.MinRatingCount {
			continue
		}
		matched = append(matched, movie)
	}
	return paginate(matched, query.Skip, query.Limit), nil
}

func (s *movieService) SearchByTag(ctx context.Context, tag string, skip, limit int) ([]models.MovieSimple, error) {
	if tag == "" {
		return nil, errInvalid("tag must not be empty")
	}
	if err := validatePagination(skip, limit); err != nil {
		return nil, err
	}

	movies, err := s.movieRepo.FindByTag(ctx, tag, skip, limit)
	if err != nil {
		return nil, err
	}
	return projectSimple(movies), nil
}

func (s *movieService) TopRated(ctx context.Context, minRatings int64, limit int) ([]models.MovieRated, error) {
	if minRatings < 1 {
		return nil, errInvalid("min_ratings must be at least 1")
	}
	if err := validatePagination(0, limit); err != nil {
		return nil, err
	}

	rated, err := s.ratedMovies(ctx, minRatings)
	if err != nil {
		return nil, err
	}

	sort.Slice(rated, func(i, j int) bool {
		if *rated[i].AverageRating != *rated[j].AverageRating {
			return *rated[i].AverageRating > *rated[j].AverageRating
		}
		if rated[i].RatingCount != rated[j].RatingCount {
			return rated[i].RatingCount > rated[j].RatingCount
		}
		return rated[i].MovieID < rated[j].MovieID
	})
	return paginate(rated, 0, limit), nil
}

func (s *movieService) MostRated(ctx context.Context, limit int) ([]models.MovieRated, error) {
	if err := validatePagination(0, limit); err != nil {
		return nil, err
	}

	rated, err := s.ratedMovies(ctx, 1)
	if err != nil {
		return nil, err
	}

	sort.Slice(rated, func(i, j int) bool {
		if rated[i].RatingCount != rated[j].RatingCount {
			return rated[i].RatingCount > rated[j].RatingCount
		}
		return rated[i].MovieID < rated[j].MovieID
	})
	return paginate(rated, 0, limit), nil
}

// ratedMovies joins every movie having at least minRatings ratings with its
// aggregates. All entries carry a defined average.
func (s *movieService) ratedMovies(ctx context.Context, minRatings int64) ([]models.MovieRated, error) {
	stats, err := s.ratingRepo.StatsAll(ctx)
	if err != nil {
		return nil, err
	}
	movies, err := s.movieRepo.FindAll(ctx, repository.MovieFilter{}, 0, 0)
	if err != nil {
		return nil, err
	}

	rated := make([]models.MovieRated, 0, len(stats))
	for _, movie := range movies {
		st, ok := stats[movie.MovieID]
		if !ok || st.RatingCount < minRatings {
			continue
		}
		rated = append(rated, models.MovieRated{
			MovieSimple:   movie.Simple(),
			AverageRating: st.AverageRating,
			RatingCount:   st.RatingCount,
		})
	}
	return rated, nil
}

func movieIDs(movies []models.Movie) []int64 {
	ids := make([]int64, 0, len(movies))
	for _, movie := range movies {
		ids = append(ids, movie.MovieID)
	}
	return ids
}

func projectSimple(movies []models.Movie) []models.MovieSimple {
	simple := make([]models.MovieSimple, 0, len(movies))
	for _, movie := range movies {
		simple = append(simple, movie.Simple())
	}
	return simple
}

func joinStats(movies []models.Movie, stats map[int64]models.MovieRatingStats) []models.MovieRated {
	rated := make([]models.MovieRated, 0, len(movies))
	for _, movie := range movies {
		entry := models.MovieRated{MovieSimple: movie.Simple()}
		if st, ok := stats[movie.MovieID]; ok {
			entry.AverageRating = st.AverageRating
			entry.RatingCount = st.RatingCount
		}
		rated = append(rated, entry)
	}
	return rated
}
