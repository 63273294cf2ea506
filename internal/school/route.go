package school

import (
	"net/url"
	"strings"

	"okul-satis-backend/internal/database"
	"okul-satis-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// MaxRouteWaypoints: Google Maps yol tarifi adres sınırı
const MaxRouteWaypoints = 25

// BuildDistrictRouteURL: adres listesinden Google Maps rota linki üretir.
// En fazla ilk 25 adres kullanılır, sırası korunur, fazlası sessizce atılır.
// origin (lat,lng) verilmişse başlangıç noktası odur; verilmemişse ilk adres
// başlangıç noktası olur.
func BuildDistrictRouteURL(origin string, addresses []string) string {
	if len(addresses) == 0 {
		return ""
	}
	if len(addresses) > MaxRouteWaypoints {
		addresses = addresses[:MaxRouteWaypoints]
	}

	parts := make([]string, 0, len(addresses)+1)
	if origin != "" {
		parts = append(parts, url.PathEscape(origin))
	}
	for _, address := range addresses {
		parts = append(parts, url.PathEscape(address))
	}

	return "https://www.google.com/maps/dir/" + strings.Join(parts, "/")
}

// GET /api/schools/route?district=...&origin=lat,lng
func DistrictRouteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		district := c.Query("district")
		if district == "" || district == "all" {
			return fiber.NewError(fiber.StatusBadRequest, "district zorunlu")
		}

		var schools []models.School
		if err := database.DB.
			Where("district = ?", district).
			Order("id asc").
			Find(&schools).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Okullar listelenemedi")
		}
		if len(schools) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Bu ilçede okul bulunamadı")
		}

		addresses := make([]string, 0, len(schools))
		for _, s := range schools {
			addresses = append(addresses, s.Address)
		}

		routeURL := BuildDistrictRouteURL(c.Query("origin"), addresses)

		count := len(addresses)
		if count > MaxRouteWaypoints {
			count = MaxRouteWaypoints
		}

		return c.JSON(fiber.Map{
			"url":          routeURL,
			"school_count": count,
		})
	}
}
