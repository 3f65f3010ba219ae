package adminRoutes

import (
	adminControllers "crh/controllers/admin"
	"crh/middleware"
	adminValidator "crh/validators/admin"
	courseValidator "crh/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up all back-office routes. Everything here
// requires a valid token plus the admin role.
func SetupAdminRoutes(app *fiber.App) {
	courseGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.AdminOnly)

	// Course CRUD
	courseGroup.Post("/create", adminValidator.CreateCourse(), adminControllers.AdminCreateCourse)
	courseGroup.Get("/list", adminValidator.AdminList(), adminControllers.AdminGetAllCourses)
	courseGroup.Get("/:id", courseValidator.CourseParam(), adminControllers.AdminGetCourseDetails)
	courseGroup.Put("/:id", courseValidator.CourseParam(), adminValidator.UpdateCourse(), adminControllers.AdminUpdateCourse)
	courseGroup.Patch("/:id/publish", courseValidator.CourseParam(), adminControllers.AdminPublishCourse)
	courseGroup.Delete("/:id", courseValidator.CourseParam(), adminControllers.AdminDeleteCourse)

	// Lesson management
	courseGroup.Post("/:id/lesson", courseValidator.CourseParam(), adminValidator.CreateLesson(), adminControllers.AdminCreateLesson)
	courseGroup.Get("/:id/lesson/list", courseValidator.CourseParam(), adminControllers.AdminListLessons)
	courseGroup.Put("/:id/lesson/:lessonId", courseValidator.LessonParam(), adminValidator.UpdateLesson(), adminControllers.AdminUpdateLesson)
	courseGroup.Patch("/:id/lesson/:lessonId/reorder", courseValidator.LessonParam(), adminValidator.ReorderLesson(), adminControllers.AdminReorderLesson)
	courseGroup.Delete("/:id/lesson/:lessonId", courseValidator.LessonParam(), adminControllers.AdminDeleteLesson)

	// Enrollment management
	enrollmentGroup := app.Group("/admin/enrollment", middleware.JWTMiddleware, middleware.AdminOnly)
	enrollmentGroup.Get("/list", adminValidator.AdminList(), adminControllers.AdminGetEnrollments)
	enrollmentGroup.Post("/create", adminValidator.CreateEnrollment(), adminControllers.AdminCreateEnrollment)
	enrollmentGroup.Patch("/:id/status", adminValidator.EnrollmentParam(), adminValidator.EnrollmentStatus(), adminControllers.AdminUpdateEnrollmentStatus)
	enrollmentGroup.Delete("/:id", adminValidator.EnrollmentParam(), adminControllers.AdminDeleteEnrollment)

	// Career resources
	resourceGroup := app.Group("/admin/resource", middleware.JWTMiddleware, middleware.AdminOnly)
	resourceGroup.Post("/create", adminValidator.Resource(), adminControllers.AdminCreateResource)
	resourceGroup.Put("/:id", adminValidator.ResourceParam(), adminValidator.Resource(), adminControllers.AdminUpdateResource)
	resourceGroup.Delete("/:id", adminValidator.ResourceParam(), adminControllers.AdminDeleteResource)

	// Notifications
	notificationGroup := app.Group("/admin/notification", middleware.JWTMiddleware, middleware.AdminOnly)
	notificationGroup.Post("/send", adminValidator.Notification(), adminControllers.AdminSendNotification)
	notificationGroup.Get("/list", adminValidator.AdminList(), adminControllers.AdminListNotifications)

	// Dashboard
	dashGroup := app.Group("/admin/dashboard", middleware.JWTMiddleware, middleware.AdminOnly)
	dashGroup.Get("/stats", adminControllers.AdminDashboardStats)
}
