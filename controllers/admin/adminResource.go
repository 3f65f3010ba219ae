package adminControllers

import (
	"crh/database"
	"crh/middleware"
	"crh/models"
	"crh/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateResource creates a resource from an uploaded file or an
// external link
func AdminCreateResource(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResource").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
		ExternalURL string `json:"external_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	resource := models.Resource{
		Title:       reqData.Title,
		Description: reqData.Description,
		Category:    reqData.Category,
		ExternalURL: reqData.ExternalURL,
	}

	// Optional file upload; a resource may be a file, a link, or both
	if file, err := c.FormFile("file"); err == nil {
		path, err := utils.SaveUploadedFile(file, "./uploads")
		if err != nil {
			log.Printf("Error saving resource file: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save uploaded file!", nil)
		}
		resource.FileURL = utils.GetFileURL(path)
	}

	if resource.FileURL == "" && resource.ExternalURL == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "A resource needs a file or an external URL!", nil)
	}

	if err := database.Database.Db.Create(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Resource created successfully!", resource)
}

// AdminUpdateResource updates an existing resource
func AdminUpdateResource(c *fiber.Ctx) error {
	resourceID := c.Locals("resourceID").(int)

	var resource models.Resource
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", resourceID, false).First(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	}

	reqData, ok := c.Locals("validatedResource").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
		ExternalURL string `json:"external_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	resource.Title = reqData.Title
	resource.Description = reqData.Description
	resource.Category = reqData.Category
	resource.ExternalURL = reqData.ExternalURL

	if file, err := c.FormFile("file"); err == nil {
		path, err := utils.SaveUploadedFile(file, "./uploads")
		if err != nil {
			log.Printf("Error saving resource file: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save uploaded file!", nil)
		}
		resource.FileURL = utils.GetFileURL(path)
	}

	if err := database.Database.Db.Save(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource updated successfully!", resource)
}

// AdminDeleteResource soft-deletes a resource
func AdminDeleteResource(c *fiber.Ctx) error {
	resourceID := c.Locals("resourceID").(int)

	var resource models.Resource
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", resourceID, false).First(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Resource not found!", nil)
	}

	resource.IsDeleted = true
	if err := database.Database.Db.Save(&resource).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete resource!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Resource deleted successfully!", nil)
}
