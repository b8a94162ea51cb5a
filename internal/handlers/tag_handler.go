package handlers

import (
	"movielens-api/internal/services"
	"movielens-api/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TagHandler struct {
	tags   services.TagService
	logger *logrus.Logger
}

func NewTagHandler(tags services.TagService, logger *logrus.Logger) *TagHandler {
	return &TagHandler{
		tags:   tags,
		logger: logger,
	}
}

// ListTags godoc
// @Summary List tags
// @Description List tags with pagination and optional movie/user filters
// @Tags tags
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows to return" default(100)
// @Param movie_id query int false "Filter by movie ID"
// @Param user_id query int false "Filter by user ID"
// @Success 200 {object} utils.StandardResponse{data=[]models.TagSimple}
// @Failure 400 {object} utils.StandardResponse
// @Router /tags [get]
func (h *TagHandler) ListTags(c *fiber.Ctx) error {
	skip, limit := parseSkipLimit(c, defaultListLimit, maxListLimit)
	movieID := int64(c.QueryInt("movie_id", 0))
	userID := int64(c.QueryInt("user_id", 0))

	tags, err := h.tags.ListTags(c.Context(), movieID, userID, skip, limit)
	if err != nil {
		return respondError(c, h.logger, err, "No tags found")
	}

	meta := utils.NewListMeta(skip, limit, len(tags))
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Tags retrieved successfully", tags, meta)
}

// GetTag godoc
// @Summary Get a specific tag
// @Description Look up the exact (user, movie, tag text) triple
// @Tags tags
// @Produce json
// @Param userId path int true "User ID"
// @Param movieId path int true "Movie ID"
// @Param tagText path string true "Exact tag text"
// @Success 200 {object} utils.StandardResponse{data=models.TagSimple}
// @Failure 404 {object} utils.StandardResponse
// @Router /tags/{userId}/{movieId}/{tagText} [get]
func (h *TagHandler) GetTag(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	movieID, err := parseID(c, "movieId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}
	text, err := urlDecodedParam(c, "tagText")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid tag text")
	}

	tag, err := h.tags.GetTag(c.Context(), userID, movieID, text)
	if err != nil {
		return respondError(c, h.logger, err, "Tag not found")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Tag retrieved successfully", tag)
}

// PopularTags godoc
// @Summary Most popular tags
// @Description Tags ranked by how many times they were applied
// @Tags tags
// @Produce json
// @Param limit query int false "Maximum results" default(20)
// @Success 200 {object} utils.StandardResponse{data=[]models.TagCount}
// @Router /tags/popular [get]
func (h *TagHandler) PopularTags(c *fiber.Ctx) error {
	_, limit := parseSkipLimit(c, 20, 100)

	ranking, err := h.tags.PopularTags(c.Context(), limit)
	if err != nil {
		return respondError(c, h.logger, err, "No tags found")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Popular tags retrieved successfully", ranking)
}

// MovieTags godoc
// @Summary List a movie's tags
// @Tags tags
// @Produce json
// @Param id path int true "Movie ID"
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows to return" default(100)
// @Success 200 {object} utils.StandardResponse{data=[]models.TagSimple}
// @Failure 404 {object} utils.StandardResponse
// @Router /movies/{id}/tags [get]
func (h *TagHandler) MovieTags(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}
	skip, limit := parseSkipLimit(c, defaultListLimit, maxListLimit)

	tags, err := h.tags.ListTags(c.Context(), id, 0, skip, limit)
	if err != nil {
		return respondError(c, h.logger, err, "No tags found")
	}
	if len(tags) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No tags found for that movie")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Tags retrieved successfully", tags)
}

// UserTags godoc
// @Summary List a user's tags
// @Tags tags
// @Produce json
// @Param id path int true "User ID"
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows to return" default(100)
// @Success 200 {object} utils.StandardResponse{data=[]models.TagSimple}
// @Failure 404 {object} utils.StandardResponse
// @Router /users/{id}/tags [get]
func (h *TagHandler) UserTags(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	skip, limit := parseSkipLimit(c, defaultListLimit, maxListLimit)

	tags, err := h.tags.ListTags(c.Context(), 0, id, skip, limit)
	if err != nil {
		return respondError(c, h.logger, err, "No tags found")
	}
	if len(tags) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "No tags found for that user")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Tags retrieved successfully", tags)
}
