package appointment

import (
	"strings"
	"time"

	"okul-satis-backend/internal/database"
	"okul-satis-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// -------------------------
// Request/Response Types
// -------------------------

type AppointmentRequest struct {
	SchoolID    uint   `json:"school_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"` // "2025-12-09"
	Time        string `json:"time"` // "14:30"
	Notes       string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type AppointmentResponse struct {
	ID          string `json:"id"`
	SchoolID    uint   `json:"school_id"`
	SchoolName  string `json:"school_name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

func toAppointmentResponse(a *models.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          a.ID,
		SchoolID:    a.SchoolID,
		SchoolName:  a.SchoolName,
		Title:       a.Title,
		Description: a.Description,
		Date:        a.Date,
		Time:        a.Time,
		Status:      string(a.Status),
		Notes:       a.Notes,
	}
}

func parseStatus(s string) (models.AppointmentStatus, bool) {
	switch models.AppointmentStatus(s) {
	case models.AppointmentPending:
		return models.AppointmentPending, true
	case models.AppointmentCompleted:
		return models.AppointmentCompleted, true
	case models.AppointmentCancelled:
		return models.AppointmentCancelled, true
	}
	return "", false
}

func validateAppointmentRequest(body *AppointmentRequest) error {
	body.Title = strings.TrimSpace(body.Title)
	if body.SchoolID == 0 || body.Title == "" {
		return fiber.NewError(fiber.StatusBadRequest, "school_id ve title zorunlu")
	}
	if _, err := time.Parse("2006-01-02", body.Date); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Tarih formatı 'YYYY-MM-DD' olmalı")
	}
	if _, err := time.Parse("15:04", body.Time); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Saat formatı 'HH:MM' olmalı")
	}
	return nil
}

// -------------------------
// Handlers
// -------------------------

// GET /api/appointments?search=...&status=all|pending|completed|cancelled
func ListAppointmentsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Appointment{})

		if status := c.Query("status", "all"); status != "all" {
			parsed, ok := parseStatus(status)
			if !ok {
				return fiber.NewError(fiber.StatusBadRequest, "status 'all', 'pending', 'completed' veya 'cancelled' olmalı")
			}
			dbq = dbq.Where("status = ?", parsed)
		}

		if search := strings.TrimSpace(c.Query("search")); search != "" {
			like := "%" + strings.ToLower(search) + "%"
			dbq = dbq.Where("LOWER(school_name) LIKE ? OR LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like, like)
		}

		var rows []models.Appointment
		if err := dbq.Order("date asc, time asc").Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Randevular listelenemedi")
		}

		resp := make([]AppointmentResponse, 0, len(rows))
		for i := range rows {
			resp = append(resp, toAppointmentResponse(&rows[i]))
		}
		return c.JSON(resp)
	}
}

// POST /api/appointments
// Yeni randevu her zaman "pending" durumunda başlar.
func CreateAppointmentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AppointmentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validateAppointmentRequest(&body); err != nil {
			return err
		}

		var school models.School
		if err := database.DB.First(&school, body.SchoolID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Okul bulunamadı")
		}

		appt := models.Appointment{
			ID:          uuid.NewString(),
			SchoolID:    school.ID,
			SchoolName:  school.Name,
			Title:       body.Title,
			Description: body.Description,
			Date:        body.Date,
			Time:        body.Time,
			Status:      models.AppointmentPending,
			Notes:       body.Notes,
		}
		if err := database.DB.Create(&appt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Randevu kaydedilemedi")
		}

		return c.Status(fiber.StatusCreated).JSON(toAppointmentResponse(&appt))
	}
}

// PUT /api/appointments/:id
func UpdateAppointmentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var appt models.Appointment
		if err := database.DB.First(&appt, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Randevu bulunamadı")
		}

		var body AppointmentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validateAppointmentRequest(&body); err != nil {
			return err
		}

		var school models.School
		if err := database.DB.First(&school, body.SchoolID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Okul bulunamadı")
		}

		appt.SchoolID = school.ID
		appt.SchoolName = school.Name
		appt.Title = body.Title
		appt.Description = body.Description
		appt.Date = body.Date
		appt.Time = body.Time
		appt.Notes = body.Notes

		if err := database.DB.Save(&appt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Randevu güncellenemedi")
		}

		return c.JSON(toAppointmentResponse(&appt))
	}
}

// PUT /api/appointments/:id/status
// Randevu sadece tamamlandı veya iptal edildi olarak işaretlenebilir;
// "pending" yalnızca oluşturma anındaki başlangıç durumudur.
func UpdateAppointmentStatusHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var appt models.Appointment
		if err := database.DB.First(&appt, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Randevu bulunamadı")
		}

		var body UpdateStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		status, ok := parseStatus(body.Status)
		if !ok || status == models.AppointmentPending {
			return fiber.NewError(fiber.StatusBadRequest, "status 'completed' veya 'cancelled' olmalı")
		}

		appt.Status = status
		if err := database.DB.Save(&appt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Randevu güncellenemedi")
		}

		return c.JSON(toAppointmentResponse(&appt))
	}
}

// DELETE /api/appointments/:id
func DeleteAppointmentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.DB.Delete(&models.Appointment{}, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Randevu silinemedi")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
