package auth

import (
	"net/http/httptest"
	"testing"

	"okul-satis-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

func TestRequireRole(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role := c.Get("X-Test-Role"); role != "" {
			c.Locals(CtxUserRoleKey, models.UserRole(role))
		}
		return c.Next()
	})
	app.Delete("/schools", RequireRole(models.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	send := func(role string) int {
		t.Helper()
		req := httptest.NewRequest("DELETE", "/schools", nil)
		if role != "" {
			req.Header.Set("X-Test-Role", role)
		}
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		return resp.StatusCode
	}

	if code := send("admin"); code != fiber.StatusNoContent {
		t.Fatalf("expected 204 for admin got %d", code)
	}
	if code := send("misafir"); code != fiber.StatusForbidden {
		t.Fatalf("expected 403 for unknown role got %d", code)
	}
	// rol bilgisi hiç yoksa da erişim kapalı
	if code := send(""); code != fiber.StatusForbidden {
		t.Fatalf("expected 403 without role got %d", code)
	}
}
