package controllers

import (
	"crh/database"
	"crh/middleware"
	"crh/models"
	courseModels "crh/models/course"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Sentinel failures shared by the course controllers. Expected conditions
// travel as values, not panics; handlers map them to HTTP statuses.
var (
	errNotEnrolled     = errors.New("user not enrolled in this course")
	errAlreadyEnrolled = errors.New("user already enrolled in this course")
	errCodeExhausted   = errors.New("could not generate a unique verification code")
)

// enrollUser creates the enrollment row for a free course or a confirmed
// payment. The unique (user_id, course_id) index backs up the existence
// check under concurrent requests.
func enrollUser(userID, courseID uint) (courseModels.Enrollment, error) {
	var existing courseModels.Enrollment
	if err := database.Database.Db.
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&existing).Error; err == nil {
		return existing, errAlreadyEnrolled
	}

	enrollment := courseModels.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		Status:     courseModels.EnrollmentActive,
		Progress:   0,
		EnrolledAt: time.Now(),
	}

	if err := database.Database.Db.Create(&enrollment).Error; err != nil {
		if database.IsUniqueViolation(err) {
			database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing)
			return existing, errAlreadyEnrolled
		}
		return courseModels.Enrollment{}, err
	}
	return enrollment, nil
}

// EnrollInCourse claims a seat in a published course. Free courses enroll
// immediately; premium courses are redirected to the simulated checkout.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	// Premium courses enroll through checkout, not directly
	if course.IsPremium {
		return middleware.JsonResponse(c, fiber.StatusPaymentRequired, false, "This is a premium course. Complete payment to enroll.", fiber.Map{
			"checkout_url": "/course/" + c.Params("id") + "/checkout",
			"price":        course.Price,
		})
	}

	enrollment, err := enrollUser(userID, uint(courseID))
	if err == errAlreadyEnrolled {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	}
	if err != nil {
		log.Printf("Error enrolling user %d in course %d: %v", userID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	go func() {
		if err := sendEnrollmentNotification(user, course); err != nil {
			log.Printf("Error sending enrollment notification: %v", err)
		}
	}()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// GetUserEnrollmentsList gets all enrollments for the current user with
// joined course display data
func GetUserEnrollmentsList(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	type EnrollmentWithCourse struct {
		courseModels.Enrollment
		CourseTitle       string `json:"course_title"`
		CourseDescription string `json:"course_description"`
		CourseLevel       string `json:"course_level"`
		CourseThumbnail   string `json:"course_thumbnail"`
	}

	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ?", userID).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	result := make([]EnrollmentWithCourse, len(enrollments))
	for i, e := range enrollments {
		var course courseModels.Course
		database.Database.Db.Where("id = ?", e.CourseID).First(&course)
		result[i] = EnrollmentWithCourse{
			Enrollment:        e,
			CourseTitle:       course.Title,
			CourseDescription: course.Description,
			CourseLevel:       course.Level,
			CourseThumbnail:   course.ThumbnailURL,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": result,
		"total":       len(result),
	})
}
