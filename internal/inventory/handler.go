package inventory

import (
	"strings"

	"okul-satis-backend/internal/database"
	"okul-satis-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// -------------------------
// Request/Response Types
// -------------------------

type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
	SKU         string  `json:"sku"`
}

type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
	SKU         string  `json:"sku"`
	LowStock    bool    `json:"low_stock"` // türetilmiş alan, saklanmaz
}

func toProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		SKU:         p.SKU,
		LowStock:    p.Stock < models.LowStockThreshold,
	}
}

func validateProductRequest(body *ProductRequest) error {
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name zorunlu")
	}
	if body.Price < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "price negatif olamaz")
	}
	if body.Stock < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "stock negatif olamaz")
	}
	return nil
}

// -------------------------
// Handlers
// -------------------------

// GET /api/products
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := database.DB.Order("name asc").Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürünler listelenemedi")
		}

		resp := make([]ProductResponse, 0, len(products))
		for i := range products {
			resp = append(resp, toProductResponse(&products[i]))
		}
		return c.JSON(resp)
	}
}

// POST /api/products
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validateProductRequest(&body); err != nil {
			return err
		}

		product := models.Product{
			ID:          uuid.NewString(),
			Name:        body.Name,
			Description: body.Description,
			Price:       body.Price,
			Stock:       body.Stock,
			Category:    body.Category,
			SKU:         body.SKU,
		}
		if err := database.DB.Create(&product).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün oluşturulamadı")
		}

		return c.Status(fiber.StatusCreated).JSON(toProductResponse(&product))
	}
}

// PUT /api/products/:id
// Tüm alanlar yenisiyle değiştirilir; id değişmez. Geçmiş satış kalemleri
// kopya tuttuğu için bu düzenleme eski satış tutarlarını etkilemez.
func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var product models.Product
		if err := database.DB.First(&product, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Ürün bulunamadı")
		}

		var body ProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if err := validateProductRequest(&body); err != nil {
			return err
		}

		product.Name = body.Name
		product.Description = body.Description
		product.Price = body.Price
		product.Stock = body.Stock
		product.Category = body.Category
		product.SKU = body.SKU

		if err := database.DB.Save(&product).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün güncellenemedi")
		}

		return c.JSON(toProductResponse(&product))
	}
}

// DELETE /api/products/:id
// Koşulsuz siler; mevcut satışlardan referans kontrolü yapılmaz. Satış
// kalemleri ad/fiyat kopyası tuttuğu için geçmiş kayıtlar geçerli kalır.
func DeleteProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := database.DB.Delete(&models.Product{}, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün silinemedi")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
