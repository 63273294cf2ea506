package accounting

import (
	"strings"
	"time"

	"okul-satis-backend/internal/database"
	"okul-satis-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// -------------------------
// Request/Response Types
// -------------------------

type CreateTransactionRequest struct {
	Type        string  `json:"type"` // "income" veya "expense"
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type UpdateTransactionRequest struct {
	Type        *string  `json:"type"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
}

type TransactionResponse struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	Date          string  `json:"date"`
	RelatedSaleID *string `json:"related_sale_id,omitempty"`
}

func toTransactionResponse(trx *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            trx.ID,
		Type:          string(trx.Type),
		Category:      trx.Category,
		Description:   trx.Description,
		Amount:        trx.Amount,
		Date:          trx.Date.Format("2006-01-02T15:04:05Z07:00"),
		RelatedSaleID: trx.RelatedSaleID,
	}
}

func parseTransactionType(s string) (models.TransactionType, bool) {
	switch models.TransactionType(s) {
	case models.TransactionIncome:
		return models.TransactionIncome, true
	case models.TransactionExpense:
		return models.TransactionExpense, true
	}
	return "", false
}

// filteredQuery: type + period query parametrelerini uygular
func filteredQuery(c *fiber.Ctx) (*gorm.DB, error) {
	dbq := database.DB.Model(&models.Transaction{})

	if typ := c.Query("type", "all"); typ != "all" {
		parsed, ok := parseTransactionType(typ)
		if !ok {
			return nil, fiber.NewError(fiber.StatusBadRequest, "type 'all', 'income' veya 'expense' olmalı")
		}
		dbq = dbq.Where("type = ?", parsed)
	}

	period := c.Query("period", "all")
	if period != "all" && period != "month" && period != "year" {
		return nil, fiber.NewError(fiber.StatusBadRequest, "period 'all', 'month' veya 'year' olmalı")
	}
	if start, ok := PeriodStart(period, time.Now()); ok {
		dbq = dbq.Where("date >= ?", start)
	}

	return dbq, nil
}

// -------------------------
// Handlers
// -------------------------

// POST /api/transactions
func CreateTransactionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateTransactionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		typ, ok := parseTransactionType(body.Type)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "type 'income' veya 'expense' olmalı")
		}

		body.Category = strings.TrimSpace(body.Category)
		if body.Category == "" || body.Amount <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "category zorunlu, amount > 0 olmalı")
		}

		trx := models.Transaction{
			ID:          uuid.NewString(),
			Type:        typ,
			Category:    body.Category,
			Description: body.Description,
			Amount:      body.Amount,
			Date:        time.Now(),
		}
		if err := database.DB.Create(&trx).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İşlem kaydedilemedi")
		}

		return c.Status(fiber.StatusCreated).JSON(toTransactionResponse(&trx))
	}
}

// GET /api/transactions?type=all|income|expense&period=all|month|year
func ListTransactionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq, err := filteredQuery(c)
		if err != nil {
			return err
		}

		var rows []models.Transaction
		if err := dbq.Order("date desc").Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İşlemler listelenemedi")
		}

		resp := make([]TransactionResponse, 0, len(rows))
		for i := range rows {
			resp = append(resp, toTransactionResponse(&rows[i]))
		}
		return c.JSON(resp)
	}
}

// GET /api/transactions/summary?type=...&period=...
func SummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq, err := filteredQuery(c)
		if err != nil {
			return err
		}

		var rows []models.Transaction
		if err := dbq.Find(&rows).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Özet hesaplanamadı")
		}

		return c.JSON(Summarize(rows))
	}
}

// PUT /api/transactions/:id
// Tarih oluşturulduktan sonra düzenlenemez.
func UpdateTransactionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var trx models.Transaction
		if err := database.DB.First(&trx, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "İşlem bulunamadı")
		}

		var body UpdateTransactionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		if body.Type != nil {
			typ, ok := parseTransactionType(*body.Type)
			if !ok {
				return fiber.NewError(fiber.StatusBadRequest, "type 'income' veya 'expense' olmalı")
			}
			trx.Type = typ
		}
		if body.Category != nil {
			category := strings.TrimSpace(*body.Category)
			if category == "" {
				return fiber.NewError(fiber.StatusBadRequest, "category boş olamaz")
			}
			trx.Category = category
		}
		if body.Description != nil {
			trx.Description = *body.Description
		}
		if body.Amount != nil {
			if *body.Amount <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "amount > 0 olmalı")
			}
			trx.Amount = *body.Amount
		}

		if err := database.DB.Save(&trx).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İşlem güncellenemedi")
		}

		return c.JSON(toTransactionResponse(&trx))
	}
}

// DELETE /api/transactions/:id
func DeleteTransactionHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteTransaction(c.Params("id")); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İşlem silinemedi")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
