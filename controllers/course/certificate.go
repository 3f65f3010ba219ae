package controllers

import (
	"crh/database"
	"crh/middleware"
	"crh/models"
	courseModels "crh/models/course"
	"crh/utils"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// verification code collisions are vanishingly rare (36^12 space), but the
// unique column makes them loud; retry a few times before giving up
const maxCodeRetries = 5

// generateMissingCertificates scans the user's enrollments and mints a
// certificate for every fully completed course that lacks one. Safe to run
// repeatedly: the existence check skips already-certified courses and the
// unique (user_id, course_id) index absorbs concurrent duplicates.
// Returns the number of certificates created.
func generateMissingCertificates(userID uint) (int, error) {
	var enrollments []courseModels.Enrollment
	if err := database.Database.Db.
		Where("user_id = ? AND status IN ?", userID, []string{courseModels.EnrollmentActive, courseModels.EnrollmentCompleted}).
		Find(&enrollments).Error; err != nil {
		return 0, err
	}

	created := 0
	for _, enrollment := range enrollments {
		// Fast path: skip courses that already have a certificate
		var existing courseModels.Certificate
		if err := database.Database.Db.
			Where("user_id = ? AND course_id = ?", userID, enrollment.CourseID).
			First(&existing).Error; err == nil {
			continue
		}

		var lessonIDs []uint
		database.Database.Db.Model(&courseModels.Lesson{}).
			Where("course_id = ? AND is_deleted = ?", enrollment.CourseID, false).
			Pluck("id", &lessonIDs)

		// Nothing to complete in an empty course
		if len(lessonIDs) == 0 {
			continue
		}

		var completed []courseModels.LessonProgress
		database.Database.Db.
			Where("user_id = ? AND lesson_id IN ? AND status = ?", userID, lessonIDs, courseModels.LessonCompleted).
			Find(&completed)

		if len(completed) != len(lessonIDs) {
			continue
		}

		// Completion date is when the last required lesson was finished,
		// not the enrollment date
		var completionDate time.Time
		for _, p := range completed {
			if p.CompletedAt != nil && p.CompletedAt.After(completionDate) {
				completionDate = *p.CompletedAt
			}
		}

		var course courseModels.Course
		database.Database.Db.Where("id = ?", enrollment.CourseID).First(&course)

		cert, err := insertCertificate(userID, enrollment, course, completionDate)
		if err != nil {
			return created, err
		}
		if cert == nil {
			// Lost the race to a concurrent generation; already certified
			continue
		}
		created++

		var user models.User
		if err := database.Database.Db.Where("id = ?", userID).First(&user).Error; err == nil {
			go func(u models.User, co courseModels.Course, ce courseModels.Certificate) {
				if err := sendCertificateNotification(u, co, ce); err != nil {
					log.Printf("Error sending certificate notification: %v", err)
				}
			}(user, course, *cert)
		}
	}

	return created, nil
}

// insertCertificate writes a new certificate row, regenerating the
// verification code on the off chance of a global collision. A duplicate
// on (user_id, course_id) means another invocation already certified this
// course; that is success, not failure, and nil is returned.
func insertCertificate(userID uint, enrollment courseModels.Enrollment, course courseModels.Course, completionDate time.Time) (*courseModels.Certificate, error) {
	for attempt := 0; attempt < maxCodeRetries; attempt++ {
		cert := courseModels.Certificate{
			UserID:            userID,
			CourseID:          enrollment.CourseID,
			EnrollmentID:      enrollment.ID,
			CertificateNumber: utils.GenerateCertificateNumber(),
			VerificationCode:  utils.GenerateVerificationCode(),
			InstructorName:    course.InstructorName,
			CompletionDate:    completionDate,
			IssuedAt:          time.Now(),
		}

		err := database.Database.Db.Create(&cert).Error
		if err == nil {
			return &cert, nil
		}
		if !database.IsUniqueViolation(err) {
			return nil, err
		}

		// Distinguish "this pair is certified" from a code/number collision
		var existing courseModels.Certificate
		if lookupErr := database.Database.Db.
			Where("user_id = ? AND course_id = ?", userID, enrollment.CourseID).
			First(&existing).Error; lookupErr == nil {
			return nil, nil
		}
	}
	return nil, errCodeExhausted
}

// GenerateCertificates mints certificates for every completed-but-
// uncertified course of the caller. Zero new certificates is a success.
func GenerateCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	created, err := generateMissingCertificates(userID)
	if err != nil {
		log.Printf("Error generating certificates for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate certificates!", nil)
	}

	message := "No new certificates to generate. Complete more courses to earn certificates!"
	if created > 0 {
		message = "Certificates generated successfully!"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"certificates_created": created,
	})
}

// GetUserCertificates gets all certificates for the current user with
// joined course titles
func GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	type CertificateWithCourse struct {
		courseModels.Certificate
		CourseTitle string `json:"course_title"`
		CourseLevel string `json:"course_level"`
	}

	var certificates []courseModels.Certificate
	if err := database.Database.Db.Where("user_id = ?", userID).Order("issued_at desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	result := make([]CertificateWithCourse, len(certificates))
	for i, cert := range certificates {
		var course courseModels.Course
		database.Database.Db.Where("id = ?", cert.CourseID).First(&course)
		result[i] = CertificateWithCourse{
			Certificate: cert,
			CourseTitle: course.Title,
			CourseLevel: course.Level,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", fiber.Map{
		"certificates": result,
		"total":        len(result),
	})
}

// VerifyCertificate is the public lookup behind shared verification
// links. Codes are stored uppercase, so the match is case-insensitive.
func VerifyCertificate(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("code")))
	if code == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Verification code is required!", nil)
	}

	var cert courseModels.Certificate
	if err := database.Database.Db.Where("verification_code = ?", code).First(&cert).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", fiber.Map{
			"found": false,
		})
	}

	var course courseModels.Course
	database.Database.Db.Where("id = ?", cert.CourseID).First(&course)

	var user models.User
	database.Database.Db.Where("id = ?", cert.UserID).First(&user)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate verified successfully!", fiber.Map{
		"found":        true,
		"certificate":  cert,
		"course_title": course.Title,
		"learner_name": user.Name,
	})
}
