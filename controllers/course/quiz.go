package controllers

import (
	"time"

	"coursebuilder/middleware"
	"coursebuilder/models"
	"coursebuilder/services"

	"github.com/gofiber/fiber/v2"
)

// SubmitQuiz grades a quiz submission against its course and appends a
// submission record. Every submission is retained; there is no upsert.
func (ctrl *CourseController) SubmitQuiz(c *fiber.Ctx) error {
	submission, ok := c.Locals("validatedSubmission").(*models.QuizSubmission)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	course, err := ctrl.Store.CourseByID(c.Context(), submission.CourseID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	summary := services.GradeQuiz(course, submission.Answers)

	record := &models.SubmissionRecord{
		UserID:      submission.UserID,
		CourseID:    submission.CourseID,
		QuizScore:   summary.Score,
		Results:     summary.Results,
		SubmittedAt: time.Now().UTC(),
	}
	if err := ctrl.Store.InsertSubmission(c.Context(), record); err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted!", summary)
}
