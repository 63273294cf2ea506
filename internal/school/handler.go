package school

import (
	"strings"

	"okul-satis-backend/internal/database"
	"okul-satis-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// -------------------------
// Request/Response Types
// -------------------------

type CreateSchoolRequest struct {
	Province string `json:"IL_ADI"`
	District string `json:"ILCE_ADI"`
	Name     string `json:"OKUL_ADI"`
	Address  string `json:"ADRES"`
	Phone    string `json:"TELEFON"`
	Website  string `json:"WEB_ADRES"`
}

type SchoolResponse struct {
	ID       uint   `json:"id"`
	Province string `json:"IL_ADI"`
	District string `json:"ILCE_ADI"`
	Name     string `json:"OKUL_ADI"`
	Address  string `json:"ADRES"`
	Phone    string `json:"TELEFON"`
	Website  string `json:"WEB_ADRES"`
}

func toSchoolResponse(s *models.School) SchoolResponse {
	return SchoolResponse{
		ID:       s.ID,
		Province: s.Province,
		District: s.District,
		Name:     s.Name,
		Address:  s.Address,
		Phone:    s.Phone,
		Website:  s.Website,
	}
}

// -------------------------
// Handlers
// -------------------------

// GET /api/schools?search=...&district=...
// Arama okul adı VEYA adres üzerinde büyük/küçük harf duyarsız; ilçe tam eşleşme.
// district boş veya "all" ise ilçe filtresi uygulanmaz.
func ListSchoolsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.School{})

		if district := c.Query("district"); district != "" && district != "all" {
			dbq = dbq.Where("district = ?", district)
		}
		if search := strings.TrimSpace(c.Query("search")); search != "" {
			like := "%" + strings.ToLower(search) + "%"
			dbq = dbq.Where("LOWER(name) LIKE ? OR LOWER(address) LIKE ?", like, like)
		}

		var schools []models.School
		if err := dbq.Order("id asc").Find(&schools).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Okullar listelenemedi")
		}

		resp := make([]SchoolResponse, 0, len(schools))
		for i := range schools {
			resp = append(resp, toSchoolResponse(&schools[i]))
		}
		return c.JSON(resp)
	}
}

// POST /api/schools
func CreateSchoolHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateSchoolRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.District = strings.TrimSpace(body.District)
		if body.Name == "" || body.District == "" {
			return fiber.NewError(fiber.StatusBadRequest, "OKUL_ADI ve ILCE_ADI zorunlu")
		}

		school := models.School{
			Province: strings.TrimSpace(body.Province),
			District: body.District,
			Name:     body.Name,
			Address:  strings.TrimSpace(body.Address),
			Phone:    strings.TrimSpace(body.Phone),
			Website:  strings.TrimSpace(body.Website),
		}
		if err := database.DB.Create(&school).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Okul kaydedilemedi")
		}

		return c.Status(fiber.StatusCreated).JSON(toSchoolResponse(&school))
	}
}

// DELETE /api/schools
// Okul koleksiyonunu notlarıyla birlikte tamamen boşaltır.
func ClearSchoolsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("1 = 1").Delete(&models.SchoolNote{}).Error; err != nil {
				return err
			}
			return tx.Where("1 = 1").Delete(&models.School{}).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Okullar silinemedi")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// Districts: ilçe listesi her okumada yeniden hesaplanır, tekil + alfabetik.
func Districts(db *gorm.DB) ([]string, error) {
	var districts []string
	err := db.Model(&models.School{}).
		Distinct("district").
		Order("district asc").
		Pluck("district", &districts).Error
	return districts, err
}

// GET /api/schools/districts
func ListDistrictsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		districts, err := Districts(database.DB)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "İlçeler listelenemedi")
		}
		return c.JSON(districts)
	}
}

// GET /api/schools/:id/debt
// Okulun tüm satışlarındaki kalan borç toplamı.
func SchoolDebtHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var school models.School
		if err := database.DB.First(&school, "id = ?", c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Okul bulunamadı")
		}

		var debt float64
		if err := database.DB.Model(&models.Sale{}).
			Where("school_id = ?", school.ID).
			Select("COALESCE(SUM(total_amount - paid_amount), 0)").
			Scan(&debt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Borç hesaplanamadı")
		}

		return c.JSON(fiber.Map{
			"school_id": school.ID,
			"debt":      debt,
		})
	}
}
