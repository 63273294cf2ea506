package sales

import (
	"errors"

	"okul-satis-backend/internal/database"
	"okul-satis-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// -------------------------
// Request/Response Types
// -------------------------

type SaleItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type CreateSaleRequest struct {
	SchoolID uint              `json:"school_id"`
	Items    []SaleItemRequest `json:"items"`
}

type PaymentRequest struct {
	Amount float64 `json:"amount"`
}

type SaleItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type SaleResponse struct {
	ID              string             `json:"id"`
	SchoolID        uint               `json:"school_id"`
	SchoolName      string             `json:"school_name"`
	Items           []SaleItemResponse `json:"items"`
	TotalAmount     float64            `json:"total_amount"`
	PaidAmount      float64            `json:"paid_amount"`
	RemainingAmount float64            `json:"remaining_amount"`
	Date            string             `json:"date"`
}

func toSaleResponse(sale *models.Sale) SaleResponse {
	items := make([]SaleItemResponse, 0, len(sale.Items))
	for _, item := range sale.Items {
		items = append(items, SaleItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return SaleResponse{
		ID:              sale.ID,
		SchoolID:        sale.SchoolID,
		SchoolName:      sale.SchoolName,
		Items:           items,
		TotalAmount:     sale.TotalAmount,
		PaidAmount:      sale.PaidAmount,
		RemainingAmount: sale.Remaining(),
		Date:            sale.Date.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// -------------------------
// Handlers
// -------------------------

// POST /api/sales
func CreateSaleHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		items := make([]SaleItemInput, 0, len(body.Items))
		for _, item := range body.Items {
			items = append(items, SaleItemInput{ProductID: item.ProductID, Quantity: item.Quantity})
		}

		sale, err := svc.CreateSale(body.SchoolID, items)
		switch {
		case errors.Is(err, ErrEmptySelection):
			return fiber.NewError(fiber.StatusBadRequest, "Okul ve en az bir ürün seçilmelidir")
		case errors.Is(err, ErrInsufficientStock):
			return fiber.NewError(fiber.StatusBadRequest, "Seçilen ürünler için yeterli stok bulunmamaktadır")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return fiber.NewError(fiber.StatusBadRequest, "Okul bulunamadı")
		case err != nil:
			return fiber.NewError(fiber.StatusInternalServerError, "Satış kaydedilemedi")
		}

		return c.Status(fiber.StatusCreated).JSON(toSaleResponse(sale))
	}
}

// GET /api/sales?debt_only=true&sort=date|amount
func ListSalesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.Sale{}).Preload("Items")

		if c.Query("debt_only") == "true" {
			dbq = dbq.Where("paid_amount < total_amount")
		}

		switch c.Query("sort", "date") {
		case "amount":
			dbq = dbq.Order("total_amount desc")
		case "date":
			dbq = dbq.Order("date desc")
		default:
			return fiber.NewError(fiber.StatusBadRequest, "sort 'date' veya 'amount' olmalı")
		}

		var sales []models.Sale
		if err := dbq.Find(&sales).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satışlar listelenemedi")
		}

		resp := make([]SaleResponse, 0, len(sales))
		for i := range sales {
			resp = append(resp, toSaleResponse(&sales[i]))
		}
		return c.JSON(resp)
	}
}

// GET /api/sales/:id
func GetSaleHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var sale models.Sale
		if err := database.DB.Preload("Items").First(&sale, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Satış bulunamadı")
		}
		return c.JSON(toSaleResponse(&sale))
	}
}

// POST /api/sales/:id/payments
func CreatePaymentHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PaymentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		sale, payment, err := svc.RecordPayment(c.Params("id"), body.Amount)
		switch {
		case errors.Is(err, ErrInvalidPayment):
			return fiber.NewError(fiber.StatusBadRequest, "Ödeme tutarı 0'dan büyük ve kalan borçtan küçük veya eşit olmalı")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return fiber.NewError(fiber.StatusNotFound, "Satış bulunamadı")
		case err != nil:
			return fiber.NewError(fiber.StatusInternalServerError, "Ödeme kaydedilemedi")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"sale":           toSaleResponse(sale),
			"transaction_id": payment.ID,
		})
	}
}

// DELETE /api/sales/:id
func DeleteSaleHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteSale(c.Params("id")); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satış silinemedi")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
