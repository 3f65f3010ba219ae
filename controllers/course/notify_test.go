package controllers

import (
	"encoding/json"
	"testing"
	"time"

	"crh/models"
	courseModels "crh/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollmentNotificationCarriesCourseID(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "notify-enroll@example.com")
	course, _ := createTestCourse(t, db, "Notify Course", false, 1)

	require.NoError(t, sendEnrollmentNotification(user, course))

	var notification models.EmailNotification
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&notification).Error)
	assert.Equal(t, "course", notification.NotificationType)

	var meta map[string]interface{}
	require.NoError(t, json.Unmarshal(notification.Metadata, &meta))
	assert.Equal(t, float64(course.ID), meta["course_id"])
}

func TestCertificateNotificationCarriesVerificationCode(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "notify-cert@example.com")
	course, _ := createTestCourse(t, db, "Notify Cert Course", false, 1)

	cert := courseModels.Certificate{
		UserID:            user.ID,
		CourseID:          course.ID,
		CertificateNumber: "CRH-2026-00042",
		VerificationCode:  "TESTCODE1234",
		CompletionDate:    time.Now(),
		IssuedAt:          time.Now(),
	}
	require.NoError(t, db.Create(&cert).Error)

	require.NoError(t, sendCertificateNotification(user, course, cert))

	var notification models.EmailNotification
	require.NoError(t, db.Where("user_id = ? AND notification_type = ?", user.ID, "certificate").First(&notification).Error)

	var meta map[string]interface{}
	require.NoError(t, json.Unmarshal(notification.Metadata, &meta))
	assert.Equal(t, float64(course.ID), meta["course_id"])
	assert.Equal(t, float64(cert.ID), meta["certificate_id"])
	assert.Equal(t, cert.VerificationCode, meta["verification_code"])
}
