package handlers

import (
	"movielens-api/internal/services"
	"movielens-api/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AnalyticsHandler struct {
	analytics services.AnalyticsService
	logger    *logrus.Logger
}

func NewAnalyticsHandler(analytics services.AnalyticsService, logger *logrus.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analytics: analytics,
		logger:    logger,
	}
}

// Statistics godoc
// @Summary Dataset statistics
// @Description Totals per entity, distinct rating users and the dataset-wide average rating
// @Tags analytics
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=models.Statistics}
// @Router /analytics [get]
func (h *AnalyticsHandler) Statistics(c *fiber.Ctx) error {
	stats, err := h.analytics.Statistics(c.Context())
	if err != nil {
		return respondError(c, h.logger, err, "Statistics unavailable")
	}
	return utils.SuccessResponse(c, fiber.StatusOK, "Statistics retrieved successfully", stats)
}
