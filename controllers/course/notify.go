package controllers

import (
	"crh/database"
	"crh/models"
	courseModels "crh/models/course"
	"crh/utils"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// notificationMetadata packs event references into the notification's
// JSON column so clients can deep-link without parsing the message text
func notificationMetadata(fields map[string]interface{}) datatypes.JSON {
	payload, err := json.Marshal(fields)
	if err != nil {
		return nil
	}
	return datatypes.JSON(payload)
}

// sendEnrollmentNotification records an in-app notification and sends the
// enrollment confirmation email
func sendEnrollmentNotification(user models.User, course courseModels.Course) error {
	notification := models.EmailNotification{
		UserID:           user.ID,
		Subject:          "Enrollment Confirmed",
		Message:          fmt.Sprintf("You are now enrolled in %s. Happy learning!", course.Title),
		NotificationType: "course",
		Metadata: notificationMetadata(map[string]interface{}{
			"course_id": course.ID,
		}),
	}
	if err := database.Database.Db.Create(&notification).Error; err != nil {
		return err
	}
	return utils.SendEnrollmentEmail(user.Email, user.Name, course.Title)
}

// sendCertificateNotification records an in-app notification and emails
// the verification link for a freshly issued certificate
func sendCertificateNotification(user models.User, course courseModels.Course, cert courseModels.Certificate) error {
	notification := models.EmailNotification{
		UserID:           user.ID,
		Subject:          "Certificate Issued",
		Message:          fmt.Sprintf("Congratulations! You earned a certificate for %s (%s).", course.Title, cert.CertificateNumber),
		NotificationType: "certificate",
		Metadata: notificationMetadata(map[string]interface{}{
			"course_id":         course.ID,
			"certificate_id":    cert.ID,
			"verification_code": cert.VerificationCode,
		}),
	}
	if err := database.Database.Db.Create(&notification).Error; err != nil {
		return err
	}
	return utils.SendCertificateEmail(user.Email, user.Name, course.Title, cert.VerificationCode)
}
