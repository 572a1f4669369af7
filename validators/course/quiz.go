package courseValidator

import (
	"fmt"
	"strings"

	"coursebuilder/middleware"
	"coursebuilder/models"

	"github.com/gofiber/fiber/v2"
)

func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.QuizSubmission)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Course ID
		reqData.CourseID = strings.TrimSpace(reqData.CourseID)
		if reqData.CourseID == "" {
			errors["course_id"] = "Course ID is required!"
		}

		// Validate User ID
		reqData.UserID = strings.TrimSpace(reqData.UserID)
		if reqData.UserID == "" {
			errors["user_id"] = "User ID is required!"
		}

		// Validate Answers. Partial submissions are allowed, but every given
		// answer must be a valid option index.
		if reqData.Answers == nil {
			errors["answers"] = "Answers are required!"
		} else {
			for id, answer := range reqData.Answers {
				if answer < 0 || answer > 3 {
					errors["answers"] = fmt.Sprintf("Answer for question %d must be between 0 and 3!", id)
					break
				}
			}
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}
