package controllers

import (
	"log"

	"coursebuilder/database"
	"coursebuilder/middleware"
	"coursebuilder/services"

	"github.com/gofiber/fiber/v2"
)

// CourseController holds the service handles for the course endpoints. All
// dependencies are injected at construction; there is no package-level state.
type CourseController struct {
	Assembler *services.Assembler
	Progress  *services.ProgressService
	Videos    services.VideoSource
	Store     database.Store
}

// NewCourseController wires the controller.
func NewCourseController(assembler *services.Assembler, progress *services.ProgressService, videos services.VideoSource, store database.Store) *CourseController {
	return &CourseController{
		Assembler: assembler,
		Progress:  progress,
		Videos:    videos,
		Store:     store,
	}
}

// GenerateRequest is the validated body for course generation.
type GenerateRequest struct {
	Topic  string `json:"topic"`
	UserID string `json:"user_id"`
}

// GenerateCourse assembles and stores a new course for the requested topic.
func (ctrl *CourseController) GenerateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedGenerate").(*GenerateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	course, err := ctrl.Assembler.Assemble(c.Context(), reqData.Topic, reqData.UserID)
	if err != nil {
		log.Printf("Course assembly failed for topic %q: %v", reqData.Topic, err)
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course generated!", course)
}

// GetCourseDetails returns a stored course by id.
func (ctrl *CourseController) GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)

	course, err := ctrl.Store.CourseByID(c.Context(), courseID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course found!", course)
}
