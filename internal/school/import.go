package school

import (
	"strings"

	"okul-satis-backend/internal/database"
	"okul-satis-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// parseSchoolRows: Excel satırlarını okul kayıtlarına çevirir. İlk satır
// başlık satırıdır; kolonlar başlık adıyla eşleştirilir (IL_ADI, ILCE_ADI,
// OKUL_ADI, ADRES, TELEFON, WEB_ADRES). Eşleşmeyen başlıklar sessizce boş
// alan üretir, tamamen boş satırlar atlanır.
func parseSchoolRows(rows [][]string) []models.School {
	if len(rows) == 0 {
		return nil
	}

	col := make(map[string]int)
	for i, header := range rows[0] {
		col[strings.ToUpper(strings.TrimSpace(header))] = i
	}

	cell := func(row []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	schools := make([]models.School, 0, len(rows)-1)
	for _, row := range rows[1:] {
		school := models.School{
			Province: cell(row, "IL_ADI"),
			District: cell(row, "ILCE_ADI"),
			Name:     cell(row, "OKUL_ADI"),
			Address:  cell(row, "ADRES"),
			Phone:    cell(row, "TELEFON"),
			Website:  cell(row, "WEB_ADRES"),
		}
		if school.Province == "" && school.District == "" && school.Name == "" &&
			school.Address == "" && school.Phone == "" && school.Website == "" {
			continue
		}
		schools = append(schools, school)
	}
	return schools
}

// POST /api/schools/import
// XLSX dosyasındaki okullarla mevcut koleksiyonun TAMAMINI değiştirir
// (birleştirme yok). Dosya okunamazsa mevcut kayıtlara dokunulmaz.
func ImportSchoolsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dosya yüklenemedi: "+err.Error())
		}

		if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
			return fiber.NewError(fiber.StatusBadRequest, "Sadece .xlsx dosyaları yüklenebilir")
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dosya açılamadı: "+err.Error())
		}
		defer file.Close()

		excelFile, err := excelize.OpenReader(file)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Excel dosyası okunamadı: "+err.Error())
		}
		defer excelFile.Close()

		sheetList := excelFile.GetSheetList()
		if len(sheetList) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Excel dosyasında sheet bulunamadı")
		}

		rows, err := excelFile.GetRows(sheetList[0])
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Sheet okunamadı: "+err.Error())
		}
		if len(rows) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Excel dosyası boş")
		}

		schools := parseSchoolRows(rows)

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("1 = 1").Delete(&models.SchoolNote{}).Error; err != nil {
				return err
			}
			if err := tx.Where("1 = 1").Delete(&models.School{}).Error; err != nil {
				return err
			}
			if len(schools) == 0 {
				return nil
			}
			return tx.Create(&schools).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Okullar kaydedilemedi")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"imported": len(schools),
		})
	}
}
