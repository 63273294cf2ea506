package activity

import (
	"okul-satis-backend/internal/database"
	"okul-satis-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/activity?status=all|pending|completed
func ListActivityHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := c.Query("status", "all")
		if status != "all" && status != "pending" && status != "completed" {
			return fiber.NewError(fiber.StatusBadRequest, "status 'all', 'pending' veya 'completed' olmalı")
		}

		var sales []models.Sale
		if err := database.DB.Find(&sales).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satışlar yüklenemedi")
		}

		var appointments []models.Appointment
		if err := database.DB.Find(&appointments).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Randevular yüklenemedi")
		}

		var transactions []models.Transaction
		if err := database.DB.Find(&transactions).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İşlemler yüklenemedi")
		}

		entries := FilterByStatus(Build(sales, appointments, transactions), status)
		return c.JSON(entries)
	}
}
