package courseRoutes

import (
	controllers "coursebuilder/controllers/course"
	validators "coursebuilder/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all course, quiz and progress routes
func SetupCourseRoutes(app *fiber.App, ctrl *controllers.CourseController) {
	app.Get("/", ctrl.Root)

	apiGroup := app.Group("/api")

	apiGroup.Get("/health", ctrl.HealthCheck)

	// Course generation and lookup
	apiGroup.Post("/courses/generate", validators.GenerateCourse(), ctrl.GenerateCourse)
	apiGroup.Get("/courses/:id", validators.GetCourseDetail(), ctrl.GetCourseDetails)

	// Quiz submission
	apiGroup.Post("/quiz/submit", validators.SubmitQuiz(), ctrl.SubmitQuiz)

	// Progress tracking
	apiGroup.Get("/progress/:user_id", validators.GetUserProgress(), ctrl.GetUserProgress)

	// Diagnostics
	apiGroup.Get("/test/youtube", ctrl.TestYouTube)
}
