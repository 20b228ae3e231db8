package main

import (
	"log"
	"strings"

	"salon-backend/internal/audit"
	"salon-backend/internal/auth"
	"salon-backend/internal/collections"
	"salon-backend/internal/config"
	"salon-backend/internal/database"
	"salon-backend/internal/roster"
	"salon-backend/internal/sections"
	"salon-backend/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	// Oturumun iki kopyası: bellek + disk. Restart sonrası disk kopyası
	// tek başına yetkilendirmeye yeter.
	sessions := session.NewManager(
		session.NewVolatileStore(),
		session.NewDurableStore(cfg.SessionFilePath),
	)

	hub := roster.NewHub()
	gateway := roster.NewGateway(cfg.AdminImagePath, hub, roster.GormStore{})
	loader := collections.NewLoader(collections.GormFetcher{})

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

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Admin profil görselleri
	app.Static("/images", cfg.AdminImagePath)

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register-super-admin", auth.RegisterSuperAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg, sessions))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg, sessions))

	protected.Get("/auth/me", auth.MeHandler())
	protected.Get("/auth/session", auth.SessionHandler())
	protected.Post("/auth/logout", auth.LogoutHandler(sessions))

	// Bölüm gezinmesi ve koleksiyonlar
	protected.Post("/navigate", sections.NavigateHandler(auth.EffectiveSession))
	protected.Get("/collections", collections.LoadHandler(loader, auth.EffectiveSession))

	// Super admin routes: admin kadrosu CRUD + canlı akış
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireSuperAdmin())

	adminRoutes.Get("/roster/stream", roster.StreamHandler(hub))
	adminRoutes.Post("/roster", roster.CreateAdminHandler(gateway))
	adminRoutes.Put("/roster/:id", roster.UpdateAdminHandler(gateway))
	adminRoutes.Delete("/roster/:id", roster.DeleteAdminHandler(gateway))

	// Audit logs
	adminRoutes.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
