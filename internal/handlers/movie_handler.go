package handlers

import (
	"movielens-api/internal/services"
	"movielens-api/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	movies    services.MovieService
	recommend services.RecommendService
	logger    *logrus.Logger
}

func NewMovieHandler(movies services.MovieService, recommend services.RecommendService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		movies:    movies,
		recommend: recommend,
		logger:    logger,
	}
}

// ListMovies godoc
// @Summary List movies
// @Description List movies with pagination and optional title/genre/year filters
// @Tags movies
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows to return" default(100)
// @Param title query string false "Partial title match (case-insensitive)"
// @Param genre query string false "Partial genre match (case-insensitive)"
// @Param year query int false "Release year"
// @Success 200 {object} utils.StandardResponse{data=[]models.MovieSimple}
// @Failure 400 {object} utils.StandardResponse
// @Router /movies [get]
func (h *MovieHandler) ListMovies(c *fiber.Ctx) error {
	skip, limit := parseSkipLimit(c, defaultListLimit, maxListLimit)

	query := services.MovieQuery{
		Title: c.Query("title"),
		Genre: c.Query("genre"),
		Year:  c.QueryInt("year", 0),
		Skip:  skip,
		Limit: limit,
	}
	movies, err := h.movies.ListMovies(c.Context(), query)
	if err != nil {
		return respondError(c, h.logger, err, "No movies found")
	}

	meta := utils.NewListMeta(skip, limit, len(movies))
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies, meta)
}

// GetMovie godoc
// @Summary Get movie details
// @Description Get a movie with its rating aggregates, tags and external link
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse{data=models.MovieDetailed}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovie(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	details, err := h.movies.GetMovieDetails(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "Movie not found")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", details)
}

// SearchByYear godoc
// @Summary Search movies by release year
// @Tags movies
// @Produce json
// @Param year query int true "Release year"
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows to return" default(100)
// @Success 200 {object} utils.StandardResponse{data=[]models.MovieSimple}
// @Failure 404 {object} utils.StandardResponse
// @Router /movies/search/by-year [get]
func (h *MovieHandler) SearchByYear(c *fiber.Ctx) error {
	year := c.QueryInt("year", 0)
	if year < 1800 || year > 2100 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid year")
	}
	skip, limit := parseSkipLimit(c, defaultListLimit, maxListLimit)

	movies, err := h.movies.ListMovies(c.Context(), services.MovieQuery{Year: year, Skip: skip, Limit: limit})
	if err != nil {
		return respondError(c, h.logger, err, "No movies found")
	}
	if len(movies) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No movies found for that year")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies)
}

// SearchMovies godoc
// @Summary Advanced movie search
// @Description Combine title/genre filters with aggregate thresholds (minimum average rating, minimum rating count)
// @Tags movies
// @Produce json
// @Param title query string false "Partial title match"
// @Param genre query string false "Partial genre match"
// @Param year query int false "Release year"
// @Param min_rating query number false "Minimum average rating (0-5)"
// @Param min_rating_count query int false "Minimum number of ratings"
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows to return" default(50)
// @Success 200 {object} utils.StandardResponse{data=[]models.MovieRated}
// @Failure 400 {object} utils.StandardResponse
// @Failure 404 {object} utils.StandardResponse
// @Router /movies/search/advanced [get]
func (h *MovieHandler) SearchMovies(c *fiber.Ctx) error {
	skip, limit := parseSkipLimit(c, 50, 200)

	minRating, err := parseOptionalFloat(c, "min_rating")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}
	minRatingCount, err := parseOptionalInt(c, "min_rating_count")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	query := services.MovieQuery{
		Title:          c.Query("title"),
		Genre:          c.Query("genre"),
		Year:           c.QueryInt("year", 0),
		MinRating:      minRating,
		MinRatingCount: minRatingCount,
		Skip:           skip,
		Limit:          limit,
	}
	results, err := h.movies.SearchMovies(c.Context(), query)
	if err != nil {
		return respondError(c, h.logger, err, "No movies match the given criteria")
	}
	if len(results) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No movies match the given criteria")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Movies retrieved successfully", results)
}

// SimilarMovies godoc
// @Summary Find similar movies
// @Description Rank other movies by shared genres with the reference movie
// @Tags movies
// @Produce json
// @Param id path int true "Reference movie ID"
// @Param limit query int false "Maximum results" default(10)
// @Success 200 {object} utils.StandardResponse{data=[]models.MovieSimple}
// @Failure 404 {object} utils.StandardResponse
// @Router /movies/{id}/similar [get]
func (h *MovieHandler) SimilarMovies(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}
	_, limit := parseSkipLimit(c, 10, 50)

	similar, err := h.recommend.SimilarMovies(c.Context(), id, limit)
	if err != nil {
		return respondError(c, h.logger, err, "Movie not found")
	}
	if len(similar) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No similar movies found")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Similar movies retrieved successfully", similar)
}

// TopRated godoc
// @Summary Best rated movies
// @Description Movies ranked by average rating; a minimum rating count filters out noise
// @Tags movies
// @Produce json
// @Param min_ratings query int false "Minimum number of ratings" default(10)
// @Param limit query int false "Maximum results" default(10)
// @Success 200 {object} utils.StandardResponse{data=[]models.MovieRated}
// @Router /movies/top/rated [get]
func (h *MovieHandler) TopRated(c *fiber.Ctx) error {
	minRatings := int64(c.QueryInt("min_ratings", 10))
	_, limit := parseSkipLimit(c, 10, 100)

	movies, err := h.movies.TopRated(c.Context(), minRatings, limit)
	if err != nil {
		return respondError(c, h.logger, err, "No movies found")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Top rated movies retrieved successfully", movies)
}

// MostRated godoc
// @Summary Most rated movies
// @Description Movies ranked by how many ratings they received
// @Tags movies
// @Produce json
// @Param limit query int false "Maximum results" default(10)
// @Success 200 {object} utils.StandardResponse{data=[]models.MovieRated}
// @Router /movies/top/popular [get]
func (h *MovieHandler) MostRated(c *fiber.Ctx) error {
	_, limit := parseSkipLimit(c, 10, 100)

	movies, err := h.movies.MostRated(c.Context(), limit)
	if err != nil {
		return respondError(c, h.logger, err, "No movies found")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Most rated movies retrieved successfully", movies)
}

// SearchByTag godoc
// @Summary Search movies by tag
// @Description Movies carrying at least one tag containing the given text
// @Tags tags
// @Produce json
// @Param tag query string true "Tag text to search"
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows to return" default(100)
// @Success 200 {object} utils.StandardResponse{data=[]models.MovieSimple}
// @Failure 404 {object} utils.StandardResponse
// @Router /tags/search [get]
func (h *MovieHandler) SearchByTag(c *fiber.Ctx) error {
	tag := c.Query("tag")
	if tag == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Tag query parameter is required")
	}
	skip, limit := parseSkipLimit(c, defaultListLimit, maxListLimit)

	movies, err := h.movies.SearchByTag(c.Context(), tag, skip, limit)
	if err != nil {
		return respondError(c, h.logger, err, "No movies found")
	}
	if len(movies) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No movies found with that tag")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies)
}

// GetMovieByImdbID godoc
// @Summary Get movie by IMDb ID
// @Tags links
// @Produce json
// @Param imdbId path string true "IMDb identifier"
// @Success 200 {object} utils.StandardResponse{data=models.MovieSimple}
// @Failure 404 {object} utils.StandardResponse
// @Router /links/imdb/{imdbId} [get]
func (h *MovieHandler) GetMovieByImdbID(c *fiber.Ctx) error {
	imdbID := c.Params("imdbId")

	movie, err := h.movies.GetMovieByImdbID(c.Context(), imdbID)
	if err != nil {
		return respondError(c, h.logger, err, "No movie found for that IMDb ID")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", movie)
}

// Recommendations godoc
// @Summary Personalized recommendations
// @Description Recommend unseen movies based on the genres of movies the user rated highly
// @Tags ratings
// @Produce json
// @Param id path int true "User ID"
// @Param limit query int false "Maximum results" default(10)
// @Success 200 {object} utils.StandardResponse{data=[]models.MovieSimple}
// @Router /users/{id}/recommendations [get]
func (h *MovieHandler) Recommendations(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	_, limit := parseSkipLimit(c, 10, 50)

	recommendations, err := h.recommend.RecommendationsForUser(c.Context(), id, limit)
	if err != nil {
		return respondError(c, h.logger, err, "User not found")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Recommendations retrieved successfully", recommendations)
}
