package controllers

import (
	"crh/models"
	courseModels "crh/models/course"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Post("/course/:id/checkout", func(c *fiber.Ctx) error {
		c.Locals("userId", userID)
		courseID, _ := strconv.Atoi(c.Params("id"))
		c.Locals("courseID", courseID)
		return c.Next()
	}, ProcessCheckout)
	return app
}

func TestCheckoutEnrollsAndRecordsPayment(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "buyer@test.com")
	course, _ := createTestCourse(t, db, "Paid Course", true, 2)

	app := checkoutApp(user.ID)
	req := httptest.NewRequest("POST", "/course/"+strconv.Itoa(int(course.ID))+"/checkout", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var enrollment courseModels.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&enrollment).Error)
	assert.Equal(t, courseModels.EnrollmentActive, enrollment.Status)

	var payment models.Payment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&payment).Error)
	assert.Equal(t, course.Price, payment.Amount)
	assert.Equal(t, "completed", payment.Status)
	assert.True(t, strings.HasPrefix(payment.TransactionID, "TXN-"))
}

func TestCheckoutRejectsFreeCourse(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "freeloader@test.com")
	course, _ := createTestCourse(t, db, "Actually Free", false, 1)

	app := checkoutApp(user.ID)
	req := httptest.NewRequest("POST", "/course/"+strconv.Itoa(int(course.ID))+"/checkout", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
