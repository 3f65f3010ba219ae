package adminControllers

import (
	"crh/database"
	"crh/middleware"
	"crh/models"
	courseModels "crh/models/course"

	"github.com/gofiber/fiber/v2"
)

// AdminDashboardStats aggregates the back-office overview numbers
func AdminDashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers int64
	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)

	var totalCourses int64
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)

	var publishedCourses int64
	db.Model(&courseModels.Course{}).Where("is_deleted = ? AND is_published = ?", false, true).Count(&publishedCourses)

	var totalEnrollments int64
	db.Model(&courseModels.Enrollment{}).Count(&totalEnrollments)

	var activeEnrollments int64
	db.Model(&courseModels.Enrollment{}).Where("status = ?", courseModels.EnrollmentActive).Count(&activeEnrollments)

	var completedEnrollments int64
	db.Model(&courseModels.Enrollment{}).Where("status = ?", courseModels.EnrollmentCompleted).Count(&completedEnrollments)

	var totalCertificates int64
	db.Model(&courseModels.Certificate{}).Count(&totalCertificates)

	var totalRevenue float64
	db.Model(&models.Payment{}).Where("status = ? AND is_deleted = ?", "completed", false).
		Select("COALESCE(SUM(amount), 0)").Scan(&totalRevenue)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"total_users":           totalUsers,
		"total_courses":         totalCourses,
		"published_courses":     publishedCourses,
		"total_enrollments":     totalEnrollments,
		"active_enrollments":    activeEnrollments,
		"completed_enrollments": completedEnrollments,
		"total_certificates":    totalCertificates,
		"total_revenue":         totalRevenue,
	})
}
