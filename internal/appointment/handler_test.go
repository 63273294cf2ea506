package appointment

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"okul-satis-backend/internal/database"
	"okul-satis-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func putStatus(t *testing.T, app *fiber.App, id, status string) int {
	t.Helper()
	req := httptest.NewRequest("PUT", "/appointments/"+id+"/status", strings.NewReader(fmt.Sprintf(`{"status":%q}`, status)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return resp.StatusCode
}

func TestUpdateStatusRejectsPending(t *testing.T) {
	database.DB = setupTestDB(t)

	appt := models.Appointment{
		ID:         "randevu-1",
		SchoolID:   1,
		SchoolName: "Atatürk İlkokulu",
		Title:      "Tanıtım ziyareti",
		Date:       "2026-09-01",
		Time:       "10:00",
		Status:     models.AppointmentCompleted,
	}
	if err := database.DB.Create(&appt).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	app := fiber.New()
	app.Put("/appointments/:id/status", UpdateAppointmentStatusHandler())

	// tamamlanmış randevu pending'e geri alınamaz
	if code := putStatus(t, app, appt.ID, "pending"); code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for pending got %d", code)
	}

	var got models.Appointment
	if err := database.DB.First(&got, "id = ?", appt.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Status != models.AppointmentCompleted {
		t.Fatalf("status changed to %q", got.Status)
	}

	// geçerli geçişler çalışmaya devam etmeli
	if code := putStatus(t, app, appt.ID, "cancelled"); code != fiber.StatusOK {
		t.Fatalf("expected 200 for cancelled got %d", code)
	}
	if code := putStatus(t, app, appt.ID, "completed"); code != fiber.StatusOK {
		t.Fatalf("expected 200 for completed got %d", code)
	}
	if code := putStatus(t, app, appt.ID, "bilinmeyen"); code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status got %d", code)
	}
}
