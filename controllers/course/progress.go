package controllers

import (
	"coursebuilder/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetUserProgress returns the user's aggregate learning statistics.
func (ctrl *CourseController) GetUserProgress(c *fiber.Ctx) error {
	userID := c.Locals("userID").(string)

	report, err := ctrl.Progress.Aggregate(c.Context(), userID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched!", report)
}
