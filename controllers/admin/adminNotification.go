package adminControllers

import (
	"crh/database"
	"crh/middleware"
	"crh/models"
	courseModels "crh/models/course"
	"crh/utils"
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// AdminSendNotification composes a notification for a single user, every
// learner enrolled in a course, or, when broadcast is set, every active
// user. Rows are written first; email delivery is best effort in the
// background.
func AdminSendNotification(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedNotification").(*struct {
		UserID    uint   `json:"user_id"`
		CourseID  uint   `json:"course_id"`
		Subject   string `json:"subject"`
		Message   string `json:"message"`
		Type      string `json:"type"`
		Broadcast bool   `json:"broadcast"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	notificationType := reqData.Type
	if notificationType == "" {
		notificationType = "system"
	}

	var recipients []models.User
	var metadata datatypes.JSON
	if reqData.Broadcast {
		if err := database.Database.Db.Where("is_deleted = ?", false).Find(&recipients).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch recipients!", nil)
		}
	} else if reqData.CourseID > 0 {
		var course courseModels.Course
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}

		var userIDs []uint
		database.Database.Db.Model(&courseModels.Enrollment{}).
			Where("course_id = ?", reqData.CourseID).
			Distinct().Pluck("user_id", &userIDs)

		if len(userIDs) > 0 {
			if err := database.Database.Db.Where("id IN ? AND is_deleted = ?", userIDs, false).Find(&recipients).Error; err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch recipients!", nil)
			}
		}

		payload, _ := json.Marshal(map[string]interface{}{"course_id": reqData.CourseID})
		metadata = datatypes.JSON(payload)
	} else {
		var user models.User
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.UserID, false).First(&user).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		recipients = []models.User{user}
	}

	if len(recipients) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No recipients to notify.", fiber.Map{
			"recipients": 0,
		})
	}

	notifications := make([]models.EmailNotification, len(recipients))
	for i, user := range recipients {
		notifications[i] = models.EmailNotification{
			UserID:           user.ID,
			Subject:          reqData.Subject,
			Message:          reqData.Message,
			NotificationType: notificationType,
			Metadata:         metadata,
		}
	}

	if err := database.Database.Db.Create(&notifications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create notifications!", nil)
	}

	go func(users []models.User, subject, message string) {
		for _, user := range users {
			if err := utils.SendNotificationEmail(user.Email, subject, message); err != nil {
				log.Printf("Error sending notification email to %s: %v", user.Email, err)
			}
		}
	}(recipients, reqData.Subject, reqData.Message)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Notification sent successfully!", fiber.Map{
		"recipients": len(recipients),
	})
}

// AdminListNotifications lists recent notifications across all users
func AdminListNotifications(c *fiber.Ctx) error {
	reqData, _ := c.Locals("validatedAdminList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})

	page := 1
	limit := 20
	if reqData != nil && reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData != nil && reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.EmailNotification{}).Where("is_deleted = ?", false)

	var total int64
	db.Count(&total)

	var notifications []models.EmailNotification
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&notifications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notifications!", nil)
	}

	response := map[string]interface{}{
		"notifications": notifications,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched successfully!", response)
}
