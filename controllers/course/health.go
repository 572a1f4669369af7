package controllers

import (
	"context"
	"time"

	"coursebuilder/config"

	"github.com/gofiber/fiber/v2"
)

// Root returns the service banner and endpoint index.
func (ctrl *CourseController) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "AI Course Builder API",
		"version": "1.0.0",
		"endpoints": fiber.Map{
			"generate_course": "POST /api/courses/generate",
			"get_course":      "GET /api/courses/{course_id}",
			"submit_quiz":     "POST /api/quiz/submit",
			"get_progress":    "GET /api/progress/{user_id}",
		},
	})
}

// HealthCheck reports configuration flags for the external providers and the
// database connection state.
func (ctrl *CourseController) HealthCheck(c *fiber.Ctx) error {
	mongoStatus := "connected"
	pingCtx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()
	if err := ctrl.Store.Ping(pingCtx); err != nil {
		mongoStatus = "disconnected"
	}

	youtubeStatus := "not configured"
	if config.AppConfig.YouTubeAPIKey != "" {
		youtubeStatus = "configured"
	}
	anthropicStatus := "not configured"
	if config.AppConfig.AnthropicAPIKey != "" {
		anthropicStatus = "configured"
	}

	return c.JSON(fiber.Map{
		"status":        "healthy",
		"youtube_api":   youtubeStatus,
		"anthropic_api": anthropicStatus,
		"mongodb":       mongoStatus,
	})
}

// TestYouTube is a diagnostic endpoint that runs a small video fetch and
// reports the outcome inline instead of failing the request.
func (ctrl *CourseController) TestYouTube(c *fiber.Ctx) error {
	resources, err := ctrl.Videos.Fetch(c.Context(), "Python programming", 3)
	if err != nil {
		return c.JSON(fiber.Map{
			"status": "error",
			"error":  err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status":    "success",
		"count":     len(resources),
		"resources": resources,
	})
}
