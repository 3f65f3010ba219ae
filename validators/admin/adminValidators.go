package adminValidator

import (
	"crh/middleware"
	courseModels "crh/models/course"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func validCourseBody(reqData *struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	InstructorName string  `json:"instructor_name"`
	Level          string  `json:"level"`
	Duration       string  `json:"duration"`
	Price          float64 `json:"price"`
	IsPremium      bool    `json:"is_premium"`
	ThumbnailURL   string  `json:"thumbnail_url"`
}) map[string]string {
	errors := make(map[string]string)

	// Validate Title
	if strings.TrimSpace(reqData.Title) == "" {
		errors["title"] = "Title is required!"
	} else if len(strings.TrimSpace(reqData.Title)) < 3 {
		errors["title"] = "Title must be at least 3 characters long!"
	}

	// Validate Description
	if strings.TrimSpace(reqData.Description) == "" {
		errors["description"] = "Description is required!"
	}

	// Validate Level
	if reqData.Level != "" {
		switch reqData.Level {
		case "beginner", "intermediate", "advanced":
		default:
			errors["level"] = "Level must be beginner, intermediate or advanced!"
		}
	}

	// Validate Price
	if reqData.Price < 0 {
		errors["price"] = "Price cannot be negative!"
	}
	if reqData.IsPremium && reqData.Price <= 0 {
		errors["price"] = "Premium courses require a positive price!"
	}

	return errors
}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title          string  `json:"title"`
			Description    string  `json:"description"`
			InstructorName string  `json:"instructor_name"`
			Level          string  `json:"level"`
			Duration       string  `json:"duration"`
			Price          float64 `json:"price"`
			IsPremium      bool    `json:"is_premium"`
			ThumbnailURL   string  `json:"thumbnail_url"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validCourseBody(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validator middleware
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title          string  `json:"title"`
			Description    string  `json:"description"`
			InstructorName string  `json:"instructor_name"`
			Level          string  `json:"level"`
			Duration       string  `json:"duration"`
			Price          float64 `json:"price"`
			IsPremium      bool    `json:"is_premium"`
			ThumbnailURL   string  `json:"thumbnail_url"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validCourseBody(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// AdminList validates pagination query params for back-office listings
func AdminList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query params!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}

		if reqData.Limit != nil && (*reqData.Limit < 1 || *reqData.Limit > 100) {
			errors["limit"] = "Limit must be between 1 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAdminList", reqData)
		return c.Next()
	}
}

func validLessonBody(reqData *struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	VideoURL        string `json:"video_url"`
	DurationMinutes int    `json:"duration_minutes"`
	IsPreview       bool   `json:"is_preview"`
}) map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(reqData.Title) == "" {
		errors["title"] = "Title is required!"
	}

	if reqData.DurationMinutes < 0 {
		errors["duration_minutes"] = "Duration cannot be negative!"
	}

	return errors
}

// CreateLesson validator middleware
func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title           string `json:"title"`
			Description     string `json:"description"`
			VideoURL        string `json:"video_url"`
			DurationMinutes int    `json:"duration_minutes"`
			IsPreview       bool   `json:"is_preview"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validLessonBody(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

// UpdateLesson validator middleware
func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title           string `json:"title"`
			Description     string `json:"description"`
			VideoURL        string `json:"video_url"`
			DurationMinutes int    `json:"duration_minutes"`
			IsPreview       bool   `json:"is_preview"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validLessonBody(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}

// ReorderLesson validator middleware
func ReorderLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			NewIndex *int `json:"new_index"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.NewIndex == nil {
			errors["new_index"] = "New index is required!"
		} else if *reqData.NewIndex < 0 {
			errors["new_index"] = "New index cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReorder", reqData)
		return c.Next()
	}
}

// CreateEnrollment validator middleware
func CreateEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID   uint `json:"user_id"`
			CourseID uint `json:"course_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UserID == 0 {
			errors["user_id"] = "User id is required!"
		}
		if reqData.CourseID == 0 {
			errors["course_id"] = "Course id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAdminEnrollment", reqData)
		return c.Next()
	}
}

// EnrollmentStatus validator middleware
func EnrollmentStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status string `json:"status"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !courseModels.ValidStatus(reqData.Status) {
			errors["status"] = "Status must be active, completed, dropped or expired!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnrollmentStatus", reqData)
		return c.Next()
	}
}

// EnrollmentParam parses the :id route param
func EnrollmentParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		enrollmentID, err := strconv.Atoi(c.Params("id"))
		if err != nil || enrollmentID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment id!", nil)
		}

		c.Locals("enrollmentID", enrollmentID)
		return c.Next()
	}
}

// Resource validator middleware. The body arrives as multipart form
// fields when a file is attached.
func Resource() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Category    string `json:"category"`
			ExternalURL string `json:"external_url"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Category) == "" {
			errors["category"] = "Category is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedResource", reqData)
		return c.Next()
	}
}

// ResourceParam parses the :id route param
func ResourceParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		resourceID, err := strconv.Atoi(c.Params("id"))
		if err != nil || resourceID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid resource id!", nil)
		}

		c.Locals("resourceID", resourceID)
		return c.Next()
	}
}

// Notification validator middleware
func Notification() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID    uint   `json:"user_id"`
			CourseID  uint   `json:"course_id"`
			Subject   string `json:"subject"`
			Message   string `json:"message"`
			Type      string `json:"type"`
			Broadcast bool   `json:"broadcast"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Subject) == "" {
			errors["subject"] = "Subject is required!"
		}
		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "Message is required!"
		}
		if !reqData.Broadcast && reqData.UserID == 0 && reqData.CourseID == 0 {
			errors["user_id"] = "User id is required unless broadcasting or targeting a course!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedNotification", reqData)
		return c.Next()
	}
}
