package handlers

import (
	"movielens-api/internal/services"
	"movielens-api/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type LinkHandler struct {
	links  services.LinkService
	logger *logrus.Logger
}

func NewLinkHandler(links services.LinkService, logger *logrus.Logger) *LinkHandler {
	return &LinkHandler{
		links:  links,
		logger: logger,
	}
}

// ListLinks godoc
// @Summary List external-ID links
// @Tags links
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows to return" default(100)
// @Success 200 {object} utils.StandardResponse{data=[]models.Link}
// @Router /links [get]
func (h *LinkHandler) ListLinks(c *fiber.Ctx) error {
	skip, limit := parseSkipLimit(c, defaultListLimit, maxListLimit)

	links, err := h.links.ListLinks(c.Context(), skip, limit)
	if err != nil {
		return respondError(c, h.logger, err, "No links found")
	}

	meta := utils.NewListMeta(skip, limit, len(links))
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Links retrieved successfully", links, meta)
}

// GetLink godoc
// @Summary Get a movie's external IDs
// @Tags links
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse{data=models.LinkSimple}
// @Failure 404 {object} utils.StandardResponse
// @Router /movies/{id}/links [get]
func (h *LinkHandler) GetLink(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	link, err := h.links.GetLink(c.Context(), id)
	if err != nil {
		return respondError(c, h.logger, err, "No link found for that movie")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Link retrieved successfully", link)
}
