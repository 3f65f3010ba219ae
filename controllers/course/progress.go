package controllers

import (
	"crh/database"
	"crh/middleware"
	courseModels "crh/models/course"
	"log"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
)

// computeProgress derives the completion percentage for a user/course pair
// from lesson and lesson_progress rows. It is recomputed from scratch on
// every call; the progress column on enrollments is only a display copy.
func computeProgress(userID, courseID uint) int {
	var lessonIDs []uint
	database.Database.Db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Pluck("id", &lessonIDs)

	if len(lessonIDs) == 0 {
		return 0
	}

	var completed int64
	database.Database.Db.Model(&courseModels.LessonProgress{}).
		Where("user_id = ? AND lesson_id IN ? AND status = ?", userID, lessonIDs, courseModels.LessonCompleted).
		Count(&completed)

	percent := int(math.Round(float64(completed) * 100 / float64(len(lessonIDs))))
	if percent > 100 {
		percent = 100
	}
	return percent
}

// completedLessonIDs returns the ids of the course's lessons the user has
// completed, restricted to lessons that still exist
func completedLessonIDs(userID, courseID uint) []uint {
	var lessonIDs []uint
	database.Database.Db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Pluck("id", &lessonIDs)

	if len(lessonIDs) == 0 {
		return nil
	}

	var completedIDs []uint
	database.Database.Db.Model(&courseModels.LessonProgress{}).
		Where("user_id = ? AND lesson_id IN ? AND status = ?", userID, lessonIDs, courseModels.LessonCompleted).
		Pluck("lesson_id", &completedIDs)
	return completedIDs
}

// refreshEnrollmentProgress recomputes the enrollment's progress snapshot
// after a completion write. Hitting 100 flips the enrollment to completed.
func refreshEnrollmentProgress(userID, courseID uint) {
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&enrollment).Error; err != nil {
		return
	}

	enrollment.Progress = computeProgress(userID, courseID)

	if enrollment.Progress >= 100 && enrollment.Status == courseModels.EnrollmentActive {
		if courseModels.CanTransition(enrollment.Status, courseModels.EnrollmentCompleted) {
			enrollment.Status = courseModels.EnrollmentCompleted
			now := time.Now()
			enrollment.CompletedAt = &now
		}
	}

	if err := database.Database.Db.Save(&enrollment).Error; err != nil {
		log.Printf("Error refreshing enrollment progress for user %d course %d: %v", userID, courseID, err)
	}
}

// markLessonComplete upserts the (user, lesson) progress row to completed.
// Requires an enrollment even for preview lessons; a completed enrollment
// still counts, so re-marking the final lesson stays idempotent after the
// enrollment flips. The write is an idempotent upsert keyed by
// (user_id, lesson_id), so concurrent calls from two tabs are safe.
func markLessonComplete(userID uint, lesson courseModels.Lesson) (courseModels.LessonProgress, error) {
	var enrollment courseModels.Enrollment
	if err := database.Database.Db.
		Where("user_id = ? AND course_id = ? AND status IN ?",
			userID, lesson.CourseID, []string{courseModels.EnrollmentActive, courseModels.EnrollmentCompleted}).
		First(&enrollment).Error; err != nil {
		return courseModels.LessonProgress{}, errNotEnrolled
	}

	now := time.Now()

	var progress courseModels.LessonProgress
	err := database.Database.Db.
		Where("user_id = ? AND lesson_id = ?", userID, lesson.ID).
		First(&progress).Error
	if err == nil {
		progress.Status = courseModels.LessonCompleted
		progress.CompletedAt = &now
		progress.LastAccessedAt = now
		if err := database.Database.Db.Save(&progress).Error; err != nil {
			return courseModels.LessonProgress{}, err
		}
		return progress, nil
	}

	progress = courseModels.LessonProgress{
		UserID:         userID,
		LessonID:       lesson.ID,
		CourseID:       lesson.CourseID,
		EnrollmentID:   enrollment.ID,
		Status:         courseModels.LessonCompleted,
		CompletedAt:    &now,
		LastAccessedAt: now,
	}
	if err := database.Database.Db.Create(&progress).Error; err != nil {
		if database.IsUniqueViolation(err) {
			// Concurrent insert won the race; re-read and update in place
			if err := database.Database.Db.
				Where("user_id = ? AND lesson_id = ?", userID, lesson.ID).
				First(&progress).Error; err != nil {
				return courseModels.LessonProgress{}, err
			}
			progress.Status = courseModels.LessonCompleted
			progress.CompletedAt = &now
			progress.LastAccessedAt = now
			if err := database.Database.Db.Save(&progress).Error; err != nil {
				return courseModels.LessonProgress{}, err
			}
			return progress, nil
		}
		return courseModels.LessonProgress{}, err
	}
	return progress, nil
}

// MarkLessonComplete records that the caller finished a lesson and
// refreshes the enrollment progress snapshot
func MarkLessonComplete(c *fiber.Ctx) error {
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

	progress, err := markLessonComplete(userID, lesson)
	if err == errNotEnrolled {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}
	if err != nil {
		log.Printf("Error marking lesson %d complete for user %d: %v", lesson.ID, userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark lesson as completed!", nil)
	}

	refreshEnrollmentProgress(userID, uint(courseID))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked as completed successfully!", progress)
}

// GetUserProgress returns the caller's progress in a course: computed
// percentage plus the completed lesson ids
func GetUserProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var totalLessons int64
	database.Database.Db.Model(&courseModels.Lesson{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).Count(&totalLessons)

	completedIDs := completedLessonIDs(userID, uint(courseID))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"enrollment":        enrollment,
		"progress":          computeProgress(userID, uint(courseID)),
		"total_lessons":     totalLessons,
		"completed_lessons": len(completedIDs),
		"completed_ids":     completedIDs,
	})
}
