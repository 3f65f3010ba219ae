package controllers

import (
	"crh/database"
	"crh/middleware"
	courseModels "crh/models/course"
	"time"

	"github.com/gofiber/fiber/v2"
)

// GetLessonDetail serves a single lesson, enforcing the access rule:
// enrolled OR preview lesson OR free course. Enrolled viewers get an
// in_progress row touched so last access is tracked.
func GetLessonDetail(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	lessonID := c.Locals("lessonID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", lessonID, courseID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	// Completed enrollments keep full access; learners revisit lessons
	// after finishing a course
	var enrollment courseModels.Enrollment
	isEnrolled := database.Database.Db.
		Where("user_id = ? AND course_id = ? AND status IN ?",
			userID, courseID, []string{courseModels.EnrollmentActive, courseModels.EnrollmentCompleted}).
		First(&enrollment).Error == nil

	if !canAccessLesson(isEnrolled, lesson, course) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course to access this lesson!", nil)
	}

	// Track access for enrolled users without touching completed state
	var progress courseModels.LessonProgress
	if isEnrolled {
		now := time.Now()
		err := database.Database.Db.Where("user_id = ? AND lesson_id = ?", userID, lesson.ID).First(&progress).Error
		if err == nil {
			progress.LastAccessedAt = now
			database.Database.Db.Save(&progress)
		} else {
			progress = courseModels.LessonProgress{
				UserID:         userID,
				LessonID:       lesson.ID,
				CourseID:       lesson.CourseID,
				EnrollmentID:   enrollment.ID,
				Status:         courseModels.LessonInProgress,
				LastAccessedAt: now,
			}
			database.Database.Db.Create(&progress)
		}
	}

	// Ordered sibling list for the player's lesson navigation
	var siblings []courseModels.Lesson
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc").Find(&siblings)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", fiber.Map{
		"course":      course,
		"lesson":      lesson,
		"lessons":     siblings,
		"is_enrolled": isEnrolled,
		"progress":    progress,
	})
}
