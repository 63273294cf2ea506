package school

import (
	"strings"

	"okul-satis-backend/internal/database"
	"okul-satis-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateNoteRequest struct {
	Content string `json:"content"`
}

type NoteResponse struct {
	ID        uint   `json:"id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// POST /api/schools/:id/notes
func CreateNoteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var school models.School
		if err := database.DB.First(&school, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Okul bulunamadı")
		}

		var body CreateNoteRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Content = strings.TrimSpace(body.Content)
		if body.Content == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Not içeriği boş olamaz")
		}

		note := models.SchoolNote{
			SchoolID: school.ID,
			Content:  body.Content,
		}
		if err := database.DB.Create(&note).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Not kaydedilemedi")
		}

		return c.Status(fiber.StatusCreated).JSON(NoteResponse{
			ID:        note.ID,
			Content:   note.Content,
			CreatedAt: note.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
}

// GET /api/schools/:id/notes
func ListNotesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var notes []models.SchoolNote
		if err := database.DB.
			Where("school_id = ?", c.Params("id")).
			Order("created_at asc").
			Find(&notes).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Notlar listelenemedi")
		}

		resp := make([]NoteResponse, 0, len(notes))
		for _, note := range notes {
			resp = append(resp, NoteResponse{
				ID:        note.ID,
				Content:   note.Content,
				CreatedAt: note.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			})
		}
		return c.JSON(resp)
	}
}

// DELETE /api/schools/:id/notes/:noteId
func DeleteNoteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.DB.
			Where("school_id = ?", c.Params("id")).
			Delete(&models.SchoolNote{}, "id = ?", c.Params("noteId")).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Not silinemedi")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
