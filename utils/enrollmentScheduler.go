package utils

import (
	"crh/database"
	courseModels "crh/models/course"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeEnrollmentScheduler sets up the enrollment expiry scheduler
func InitializeEnrollmentScheduler() {
	log.Println("[ENROLLMENT-SCHEDULER] Initializing enrollment scheduler...")

	c := cron.New()

	// Run daily at 2 AM to expire enrollments past their expiry date
	c.AddFunc("0 2 * * *", func() {
		log.Println("[ENROLLMENT-SCHEDULER] Running daily enrollment expiry check...")
		ExpireEnrollments()
	})

	c.Start()
	log.Println("[ENROLLMENT-SCHEDULER] Enrollment scheduler started - runs daily at 2 AM")
}

// ExpireEnrollments flips active enrollments whose expiry date has passed
// to the expired status
func ExpireEnrollments() {
	db := database.Database.Db
	now := time.Now()

	var expiring []courseModels.Enrollment
	if err := db.
		Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", courseModels.EnrollmentActive, now).
		Find(&expiring).Error; err != nil {
		log.Printf("[ENROLLMENT-SCHEDULER] Error fetching expiring enrollments: %v", err)
		return
	}

	log.Printf("[ENROLLMENT-SCHEDULER] Found %d enrollments past expiry", len(expiring))

	for _, enrollment := range expiring {
		if !courseModels.CanTransition(enrollment.Status, courseModels.EnrollmentExpired) {
			continue
		}
		enrollment.Status = courseModels.EnrollmentExpired
		if err := db.Save(&enrollment).Error; err != nil {
			log.Printf("[ENROLLMENT-SCHEDULER] Error expiring enrollment %d: %v", enrollment.ID, err)
		}
	}
}
