package controllers

import (
	courseModels "crh/models/course"
	"fmt"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanAccessLesson(t *testing.T) {
	freeCourse := courseModels.Course{IsPremium: false}
	premiumCourse := courseModels.Course{IsPremium: true}
	regular := courseModels.Lesson{IsPreview: false}
	preview := courseModels.Lesson{IsPreview: true}

	// Enrolled users see everything
	assert.True(t, canAccessLesson(true, regular, premiumCourse))

	// Free course lessons are open to everyone
	assert.True(t, canAccessLesson(false, regular, freeCourse))

	// Premium courses only expose preview lessons to non-enrolled users
	assert.True(t, canAccessLesson(false, preview, premiumCourse))
	assert.False(t, canAccessLesson(false, regular, premiumCourse))
}

func lessonDetailApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Get("/course/:id/lesson/:lessonId", func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		courseID, _ := strconv.Atoi(c.Params("id"))
		lessonID, _ := strconv.Atoi(c.Params("lessonId"))
		c.Locals("courseID", courseID)
		c.Locals("lessonID", lessonID)
		return c.Next()
	}, GetLessonDetail)
	return app
}

func TestGetLessonDetailAfterEnrollmentCompleted(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "alumni@test.com")
	course, lessons := createTestCourse(t, db, "Premium Alumni Course", true, 2)
	enrollment := enrollTestUser(t, db, user.ID, course.ID)

	// Finished learners keep access to non-preview lessons
	now := time.Now()
	require.NoError(t, db.Model(&enrollment).Updates(map[string]interface{}{
		"status":       courseModels.EnrollmentCompleted,
		"progress":     100,
		"completed_at": now,
	}).Error)

	app := lessonDetailApp(user.ID)
	path := fmt.Sprintf("/course/%d/lesson/%d", course.ID, lessons[1].ID)
	resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGetLessonDetailDeniedWithoutEnrollment(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "outsider@test.com")
	course, lessons := createTestCourse(t, db, "Premium Gated Course", true, 2)

	app := lessonDetailApp(user.ID)
	path := fmt.Sprintf("/course/%d/lesson/%d", course.ID, lessons[1].ID)
	resp, err := app.Test(httptest.NewRequest("GET", path, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
