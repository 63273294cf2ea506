package main

import (
	"log"
	"strings"

	"okul-satis-backend/internal/accounting"
	"okul-satis-backend/internal/activity"
	"okul-satis-backend/internal/appointment"
	"okul-satis-backend/internal/auth"
	"okul-satis-backend/internal/config"
	"okul-satis-backend/internal/database"
	"okul-satis-backend/internal/inventory"
	"okul-satis-backend/internal/models"
	"okul-satis-backend/internal/sales"
	"okul-satis-backend/internal/school"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	database.Init(cfg)

	salesService := sales.NewService(database.DB)
	accountingService := accounting.NewService(database.DB)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Okullar (toplu silme ve Excel yükleme sadece admin)
	protected.Get("/schools", school.ListSchoolsHandler())
	protected.Post("/schools", school.CreateSchoolHandler())
	protected.Delete("/schools", auth.RequireRole(models.RoleAdmin), school.ClearSchoolsHandler())
	protected.Post("/schools/import", auth.RequireRole(models.RoleAdmin), school.ImportSchoolsHandler())
	protected.Get("/schools/districts", school.ListDistrictsHandler())
	protected.Get("/schools/route", school.DistrictRouteHandler())
	protected.Get("/schools/:id/debt", school.SchoolDebtHandler())

	// Okul notları
	protected.Post("/schools/:id/notes", school.CreateNoteHandler())
	protected.Get("/schools/:id/notes", school.ListNotesHandler())
	protected.Delete("/schools/:id/notes/:noteId", school.DeleteNoteHandler())

	// Ürünler
	protected.Get("/products", inventory.ListProductsHandler())
	protected.Post("/products", inventory.CreateProductHandler())
	protected.Put("/products/:id", inventory.UpdateProductHandler())
	protected.Delete("/products/:id", inventory.DeleteProductHandler())

	// Satışlar
	protected.Get("/sales", sales.ListSalesHandler())
	protected.Post("/sales", sales.CreateSaleHandler(salesService))
	protected.Get("/sales/:id", sales.GetSaleHandler())
	protected.Post("/sales/:id/payments", sales.CreatePaymentHandler(salesService))
	protected.Delete("/sales/:id", sales.DeleteSaleHandler(salesService))

	// Muhasebe
	protected.Get("/transactions", accounting.ListTransactionsHandler())
	protected.Post("/transactions", accounting.CreateTransactionHandler())
	protected.Get("/transactions/summary", accounting.SummaryHandler())
	protected.Put("/transactions/:id", accounting.UpdateTransactionHandler())
	protected.Delete("/transactions/:id", accounting.DeleteTransactionHandler(accountingService))

	// Randevular
	protected.Get("/appointments", appointment.ListAppointmentsHandler())
	protected.Post("/appointments", appointment.CreateAppointmentHandler())
	protected.Put("/appointments/:id", appointment.UpdateAppointmentHandler())
	protected.Put("/appointments/:id/status", appointment.UpdateAppointmentStatusHandler())
	protected.Delete("/appointments/:id", appointment.DeleteAppointmentHandler())

	// Sistem hareketleri (türetilmiş akış)
	protected.Get("/activity", activity.ListActivityHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
