package controllers

import (
	courseModels "crh/models/course"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// enrollApp builds a minimal app around EnrollInCourse with the auth and
// param middleware replaced by canned locals.
func enrollApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Post("/course/:id/enroll", func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		courseID, _ := strconv.Atoi(c.Params("id"))
		c.Locals("courseID", courseID)
		return c.Next()
	}, EnrollInCourse)
	return app
}

func TestEnrollUserDuplicate(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "dup@test.com")
	course, _ := createTestCourse(t, db, "Popular Course", false, 2)

	first, err := enrollUser(user.ID, course.ID)
	require.NoError(t, err)

	second, err := enrollUser(user.ID, course.ID)
	assert.ErrorIs(t, err, errAlreadyEnrolled)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestEnrollInFreeCourse(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "free@test.com")
	course, _ := createTestCourse(t, db, "Free Course", false, 2)

	app := enrollApp(user.ID)
	req := httptest.NewRequest("POST", "/course/"+strconv.Itoa(int(course.ID))+"/enroll", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Second attempt conflicts
	req = httptest.NewRequest("POST", "/course/"+strconv.Itoa(int(course.ID))+"/enroll", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestEnrollInPremiumCourseRequiresPayment(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "premium@test.com")
	course, _ := createTestCourse(t, db, "Premium Course", true, 3)

	app := enrollApp(user.ID)
	req := httptest.NewRequest("POST", "/course/"+strconv.Itoa(int(course.ID))+"/enroll", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusPaymentRequired, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed struct {
		Data struct {
			CheckoutURL string  `json:"checkout_url"`
			Price       float64 `json:"price"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &parsed))
	assert.Contains(t, parsed.Data.CheckoutURL, "/checkout")
	assert.Equal(t, course.Price, parsed.Data.Price)

	// No enrollment row until checkout completes
	var count int64
	db.Model(&courseModels.Enrollment{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&count)
	assert.Zero(t, count)
}

func TestEnrollInUnpublishedCourse(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "unpub@test.com")
	course, _ := createTestCourse(t, db, "Draft Course", false, 1)
	require.NoError(t, db.Model(&course).Update("is_published", false).Error)

	app := enrollApp(user.ID)
	req := httptest.NewRequest("POST", "/course/"+strconv.Itoa(int(course.ID))+"/enroll", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
