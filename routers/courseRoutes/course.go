package courseRoutes

import (
	controllers "crh/controllers/course"
	"crh/middleware"
	validators "crh/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Catalogue
	courseGroup.Get("/list", validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseParam(), controllers.GetCourseDetails)

	// Enrollment and payment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseParam(), controllers.EnrollInCourse)
	courseGroup.Post("/:id/checkout", middleware.JWTMiddleware, validators.CourseParam(), controllers.ProcessCheckout)

	// Lesson viewing and completion
	courseGroup.Get("/:id/lesson/:lessonId", middleware.JWTMiddleware, validators.LessonParam(), controllers.GetLessonDetail)
	courseGroup.Post("/:id/lesson/:lessonId/complete", middleware.JWTMiddleware, validators.LessonParam(), controllers.MarkLessonComplete)

	// Progress tracking
	courseGroup.Get("/:id/progress", middleware.JWTMiddleware, validators.CourseParam(), controllers.GetUserProgress)

	// Public certificate verification, no auth required
	certGroup := app.Group("/certificate")
	certGroup.Get("/verify/:code", validators.VerifyCodeParam(), controllers.VerifyCertificate)
}
