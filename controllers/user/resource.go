package userControllers

import (
	"crh/database"
	"crh/middleware"
	"crh/models"

	"github.com/gofiber/fiber/v2"
)

// ListResources returns published career resources, optionally filtered by category
func ListResources(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResourceList").(*struct {
		Page     int    `query:"page" validate:"omitempty,min=1"`
		Limit    int    `query:"limit" validate:"omitempty,min=1,max=100"`
		Category string `query:"category"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	page := reqData.Page
	if page < 1 {
		page = 1
	}
	limit := reqData.Limit
	if limit < 1 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := database.Database.Db.Model(&models.Resource{}).Where("is_deleted = ?", false)
	if reqData.Category != "" {
		query = query.Where("category = ?", reqData.Category)
	}

	var total int64
	query.Count(&total)

	var resources []models.Resource
	if err := query.Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&resources).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch resources!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resources fetched successfully!", fiber.Map{
		"resources": resources,
		"total":     total,
		"page":      page,
		"limit":     limit,
	})
}
