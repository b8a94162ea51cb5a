package handlers

import (
	"movielens-api/internal/services"
	"movielens-api/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type RatingHandler struct {
	ratings services.RatingService
	logger  *logrus.Logger
}

func NewRatingHandler(ratings services.RatingService, logger *logrus.Logger) *RatingHandler {
	return &RatingHandler{
		ratings: ratings,
		logger:  logger,
	}
}

// ListRatings godoc
// @Summary List ratings
// @Description List ratings with pagination and optional movie/user/min-rating filters
// @Tags ratings
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows to return" default(100)
// @Param movie_id query int false "Filter by movie ID"
// @Param user_id query int false "Filter by user ID"
// @Param min_rating query number false "Minimum rating value (0-5)"
// @Success 200 {object} utils.StandardResponse{data=[]models.RatingSimple}
// @Failure 400 {object} utils.StandardResponse
// @Router /ratings [get]
func (h *RatingHandler) ListRatings(c *fiber.Ctx) error {
	skip, limit := parseSkipLimit(c, defaultListLimit, maxListLimit)

	minRating, err := parseOptionalFloat(c, "min_rating")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	query := services.RatingQuery{
		MovieID:   int64(c.QueryInt("movie_id", 0)),
		UserID:    int64(c.QueryInt("user_id", 0)),
		MinRating: minRating,
		Skip:      skip,
		Limit:     limit,
	}
	ratings, err := h.ratings.ListRatings(c.Context(), query)
	if err != nil {
		return respondError(c, h.logger, err, "No ratings found")
	}

	meta := utils.NewListMeta(skip, limit, len(ratings))
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Ratings retrieved successfully", ratings, meta)
}

// GetRating godoc
// @Summary Get a rating by user and movie
// @Tags ratings
// @Produce json
// @Param userId path int true "User ID"
// @Param movieId path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse{data=models.RatingSimple}
// @Failure 404 {object} utils.StandardResponse
// @Router /ratings/{userId}/{movieId} [get]
func (h *RatingHandler) GetRating(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	movieID, err := parseID(c, "movieId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	rating, err := h.ratings.GetRating(c.Context(), userID, movieID)
	if err != nil {
		return respondError(c, h.logger, err, "Rating not found")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Rating retrieved successfully", rating)
}

// MovieRatings godoc
// @Summary List a movie's ratings
// @Tags ratings
// @Produce json
// @Param id path int true "Movie ID"
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows to return" default(100)
// @Success 200 {object} utils.StandardResponse{data=[]models.RatingSimple}
// @Failure 404 {object} utils.StandardResponse
// @Router /movies/{id}/ratings [get]
func (h *RatingHandler) MovieRatings(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}
	skip, limit := parseSkipLimit(c, defaultListLimit, maxListLimit)

	ratings, err := h.ratings.MovieRatings(c.Context(), id, skip, limit)
	if err != nil {
		return respondError(c, h.logger, err, "No ratings found")
	}
	if len(ratings) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No ratings found for that movie")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Ratings retrieved successfully", ratings)
}

// MovieAverageRating godoc
// @Summary Get a movie's average rating
// @Description Average and count over the movie's ratings; 404 when it has none
// @Tags ratings
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse{data=models.MovieRatingStats}
// @Failure 404 {object} utils.StandardResponse
// @Router /movies/{id}/ratings/average [get]
func (h *RatingHandler) MovieAverageRating(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	stats, err := h.ratings.MovieRatingStats(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "No ratings found")
	}
	if stats.AverageRating == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No ratings found for that movie")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Average rating retrieved successfully", stats)
}

// UserRatings godoc
// @Summary List a user's ratings
// @Tags ratings
// @Produce json
// @Param id path int true "User ID"
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows to return" default(100)
// @Success 200 {object} utils.StandardResponse{data=[]models.RatingSimple}
// @Failure 404 {object} utils.StandardResponse
// @Router /users/{id}/ratings [get]
func (h *RatingHandler) UserRatings(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	skip, limit := parseSkipLimit(c, defaultListLimit, maxListLimit)

	ratings, err := h.ratings.UserRatings(c.Context(), id, skip, limit)
	if err != nil {
		return respondError(c, h.logger, err, "No ratings found")
	}
	if len(ratings) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No ratings found for that user")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Ratings retrieved successfully", ratings)
}
