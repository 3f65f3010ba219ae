package userRoutes

import (
	controllers "crh/controllers/course"
	userControllers "crh/controllers/user"
	"crh/middleware"
	userValidator "crh/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up profile, enrollment and notification routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user", middleware.JWTMiddleware)

	// Profile
	userGroup.Get("/profile", userControllers.GetProfile)
	userGroup.Patch("/profile", userValidator.UpdateProfile(), userControllers.UpdateProfile)
	userGroup.Put("/change/password", userValidator.ChangePassword(), userControllers.ChangePassword)

	// Enrollments and certificates
	userGroup.Get("/enrollments", controllers.GetUserEnrollmentsList)
	userGroup.Get("/certificates", controllers.GetUserCertificates)
	userGroup.Post("/certificates/generate", controllers.GenerateCertificates)

	// Notifications
	userGroup.Get("/notifications", userValidator.NotificationList(), userControllers.ListNotifications)
	userGroup.Get("/notifications/unread", userControllers.UnreadCount)
	userGroup.Patch("/notifications/read/all", userControllers.MarkAllNotificationsRead)
	userGroup.Patch("/notifications/:id/read", userValidator.NotificationParam(), userControllers.MarkNotificationRead)

	// Career resources
	userGroup.Get("/resources", userValidator.ResourceList(), userControllers.ListResources)
}
