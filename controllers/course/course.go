package controllers

import (
	"crh/database"
	"crh/middleware"
	courseModels "crh/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists published courses with optional level/premium/search
// filters. The catalogue is public; no auth required.
func GetAllCourses(c *fiber.Ctx) error {
	// Retrieve validated pagination request
	reqData, _ := c.Locals("validatedCourseList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	page := 1
	limit := 12
	if reqData != nil && reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&courseModels.Course{}).
		Where("is_deleted = ? AND is_published = ?", false, true)

	if level := c.Query("level"); level != "" {
		db = db.Where("level = ?", level)
	}
	if premium := c.Query("premium"); premium == "true" {
		db = db.Where("is_premium = ?", true)
	} else if premium == "false" {
		db = db.Where("is_premium = ?", false)
	}
	if search := c.Query("search"); search != "" {
		db = db.Where("title ILIKE ?", "%"+search+"%")
	}

	var total int64
	db.Count(&total)

	var courses []courseModels.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	response := map[string]interface{}{
		"courses": courses,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", response)
}

// LessonWithAccess decorates a lesson with the caller's completion and
// access state
type LessonWithAccess struct {
	courseModels.Lesson
	IsCompleted bool `json:"is_completed"`
	CanAccess   bool `json:"can_access"`
}

// GetCourseDetails returns a published course with its ordered lessons,
// the caller's enrollment state and freshly computed progress
func GetCourseDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var lessons []courseModels.Lesson
	database.Database.Db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc").Find(&lessons)

	// Check if user is enrolled
	var enrollment courseModels.Enrollment
	isEnrolled := database.Database.Db.
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&enrollment).Error == nil

	// Completed lesson set for the caller
	completedIDs := completedLessonIDs(userID, uint(courseID))
	completedSet := make(map[uint]bool, len(completedIDs))
	for _, id := range completedIDs {
		completedSet[id] = true
	}

	result := make([]LessonWithAccess, len(lessons))
	for i, lesson := range lessons {
		result[i] = LessonWithAccess{
			Lesson:      lesson,
			IsCompleted: completedSet[lesson.ID],
			CanAccess:   canAccessLesson(isEnrolled, lesson, course),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":      course,
		"lessons":     result,
		"is_enrolled": isEnrolled,
		"enrollment":  enrollment,
		"progress":    computeProgress(userID, uint(courseID)),
	})
}

// canAccessLesson applies the content gate: enrolled users see everything,
// preview lessons are open, and free courses are open end to end
func canAccessLesson(isEnrolled bool, lesson courseModels.Lesson, course courseModels.Course) bool {
	return isEnrolled || lesson.IsPreview || !course.IsPremium
}
