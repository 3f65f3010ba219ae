package main

import (
	"crh/config"
	"crh/database"
	"crh/models"
	courseModels "crh/models/course"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// Seeds an admin account and a starter catalogue so a fresh install
// has something to browse. Safe to re-run: rows are looked up by
// natural key before insert.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	// Admin account
	adminEmail := "admin@careerreachhub.com"
	var admin models.User
	if err := db.Where("email = ?", adminEmail).First(&admin).Error; err != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123!"), config.AppConfig.SaltRound)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
		admin = models.User{
			Name:     "Platform Admin",
			Email:    adminEmail,
			Password: string(hashed),
			Role:     "admin",
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Fatalf("Failed to create admin user: %v", err)
		}
		log.Printf("Created admin user %s", adminEmail)
	} else {
		log.Printf("Admin user %s already exists, skipping", adminEmail)
	}

	courses := []struct {
		course  courseModels.Course
		lessons []string
	}{
		{
			course: courseModels.Course{
				Title:          "Resume Writing Essentials",
				Description:    "Build a resume that gets past screening and into interviews.",
				InstructorName: "Dana Wells",
				Level:          "beginner",
				Duration:       "2 weeks",
				IsPublished:    true,
			},
			lessons: []string{
				"Why most resumes fail",
				"Structuring your experience",
				"Tailoring for each application",
			},
		},
		{
			course: courseModels.Course{
				Title:          "Technical Interview Mastery",
				Description:    "A structured path through coding interviews, from warmups to system design.",
				InstructorName: "Marcus Lee",
				Level:          "intermediate",
				Duration:       "6 weeks",
				Price:          49.99,
				IsPremium:      true,
				IsPublished:    true,
			},
			lessons: []string{
				"How interviews are scored",
				"Arrays and strings drills",
				"Communicating while you code",
				"System design fundamentals",
			},
		},
	}

	for _, entry := range courses {
		var existing courseModels.Course
		if err := db.Where("title = ? AND is_deleted = ?", entry.course.Title, false).First(&existing).Error; err == nil {
			log.Printf("Course %q already exists, skipping", entry.course.Title)
			continue
		}

		course := entry.course
		if err := db.Create(&course).Error; err != nil {
			log.Fatalf("Failed to create course %q: %v", course.Title, err)
		}

		for i, title := range entry.lessons {
			lesson := courseModels.Lesson{
				CourseID:   course.ID,
				Title:      title,
				OrderIndex: i,
				IsPreview:  i == 0,
			}
			if err := db.Create(&lesson).Error; err != nil {
				log.Fatalf("Failed to create lesson %q: %v", title, err)
			}
		}
		log.Printf("Created course %q with %d lessons", course.Title, len(entry.lessons))
	}

	log.Println("Seed complete")
}
