package courseValidator

import (
	"strings"

	controllers "coursebuilder/controllers/course"
	"coursebuilder/middleware"

	"github.com/gofiber/fiber/v2"
)

func GenerateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(controllers.GenerateRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Topic
		reqData.Topic = strings.TrimSpace(reqData.Topic)
		if reqData.Topic == "" {
			errors["topic"] = "Topic is required!"
		} else if len(reqData.Topic) > 200 {
			errors["topic"] = "Topic must be at most 200 characters long!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedGenerate", reqData)
		return c.Next()
	}
}

func GetCourseDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := strings.TrimSpace(c.Params("id"))

		if courseID == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"id": "Course ID is required!"})
		}
		if !isHexID(courseID) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "not_found", "Course not found!")
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

func GetUserProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := strings.TrimSpace(c.Params("user_id"))

		if userID == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"user_id": "User ID is required!"})
		}

		c.Locals("userID", userID)
		return c.Next()
	}
}

// isHexID reports whether s looks like a 24-character hex ObjectID.
func isHexID(s string) bool {
	if len(s) != 24 {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') && (r < 'A' || r > 'F') {
			return false
		}
	}
	return true
}
