package controllers

import (
	"crh/database"
	"crh/middleware"
	"crh/models"
	courseModels "crh/models/course"
	"crh/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ProcessCheckout runs the simulated payment flow for a premium course:
// a short processing delay, then enrollment plus a completed payment
// record. The gateway stub never declines.
func ProcessCheckout(c *fiber.Ctx) error {
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

	if !course.IsPremium {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "This course is free. Enroll directly instead.", nil)
	}

	// Simulate payment processing delay
	time.Sleep(2 * time.Second)

	enrollment, err := enrollUser(userID, uint(courseID))
	if err == errAlreadyEnrolled {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	}
	if err != nil {
		log.Printf("Error enrolling user %d after payment for course %d: %v", userID, courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Payment failed. Please try again.", nil)
	}

	payment := models.Payment{
		UserID:        userID,
		CourseID:      uint(courseID),
		Amount:        course.Price,
		Status:        "completed",
		PaymentMethod: "card",
		TransactionID: utils.GenerateTransactionID(),
		PaidAt:        time.Now(),
	}
	if err := database.Database.Db.Create(&payment).Error; err != nil {
		// Enrollment stands even if the receipt row fails
		log.Printf("Error saving payment record for user %d course %d: %v", userID, courseID, err)
	}

	go func() {
		if err := sendEnrollmentNotification(user, course); err != nil {
			log.Printf("Error sending enrollment notification: %v", err)
		}
	}()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment successful. Enrolled in course!", fiber.Map{
		"enrollment": enrollment,
		"payment":    payment,
	})
}
