package handlers

import (
	"errors"
	"net/url"
	"strconv"

	"movielens-api/internal/repository"
	"movielens-api/internal/services"
	"movielens-api/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	defaultListLimit = 100
	maxListLimit     = 1000
)

// parseID parses a positive int64 path parameter.
func parseID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid " + name)
	}
	return id, nil
}

// urlDecodedParam returns a path parameter with percent-encoding undone,
// needed for free-text segments like tag text.
func urlDecodedParam(c *fiber.Ctx, name string) (string, error) {
	value, err := url.PathUnescape(c.Params(name))
	if err != nil || value == "" {
		return "", errors.New("invalid " + name)
	}
	return value, nil
}

// parseSkipLimit reads the pagination window, applying the endpoint's
// default and cap to the limit. Values below zero are passed through so the
// service layer rejects them explicitly.
func parseSkipLimit(c *fiber.Ctx, defaultLimit, maxLimit int) (int, int) {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", defaultLimit)
	if limit > maxLimit {
		limit = maxLimit
	}
	return skip, limit
}

// parseOptionalFloat reads an optional float query parameter, nil when absent.
func parseOptionalFloat(c *fiber.Ctx, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.New("invalid " + name)
	}
	return &value, nil
}

// parseOptionalInt reads an optional integer query parameter, nil when absent.
func parseOptionalInt(c *fiber.Ctx, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errors.New("invalid " + name)
	}
	return &value, nil
}

// respondError translates core sentinels into HTTP statuses: not-found
// lookups become 404, rejected input becomes 400, anything else is a 500.
func respondError(c *fiber.Ctx, log *logrus.Logger, err error, notFoundMessage string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, notFoundMessage)
	case errors.Is(err, services.ErrInvalidInput):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	default:
		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).Error("Request failed")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}
}
