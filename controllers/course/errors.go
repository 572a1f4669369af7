package controllers

import (
	"errors"

	"coursebuilder/database"
	"coursebuilder/middleware"
	"coursebuilder/services"

	"github.com/gofiber/fiber/v2"
)

// serviceErrorResponse maps service-layer failures onto HTTP responses with a
// machine-readable kind. Upstream API failures keep the upstream's status
// code; nothing here retries.
func serviceErrorResponse(c *fiber.Ctx, err error) error {
	var upstream *services.UpstreamError

	switch {
	case errors.Is(err, database.ErrNotFound):
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "not_found", "Course not found!")
	case errors.Is(err, services.ErrProviderUnavailable):
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "configuration_error", err.Error())
	case errors.Is(err, services.ErrUpstreamTimeout):
		return middleware.ErrorResponse(c, fiber.StatusGatewayTimeout, "upstream_timeout", err.Error())
	case errors.As(err, &upstream):
		return middleware.ErrorResponse(c, upstream.Status, "upstream_error", upstream.Error())
	case errors.Is(err, services.ErrParse), errors.Is(err, services.ErrInvalidDraft):
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "generation_error", err.Error())
	default:
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "internal_error", err.Error())
	}
}
