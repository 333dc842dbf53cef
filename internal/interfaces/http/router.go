package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jhoicas/Petfood-admin/internal/domain/entity"
	"github.com/jhoicas/Petfood-admin/pkg/logger"
	"github.com/jhoicas/Petfood-admin/pkg/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      AuthService
	StatsUC     StatsService
	ZoneUC      ZoneService
	OutletUC    OutletService
	MonthlyUC   MonthlyReporter
	ProductsUC  ProductsReporter
	DashboardUC DashboardService
	CatalogUC   CatalogService
	OrderUC     OrderService
	CampaignUC  CampaignDispatcher
	Metrics     *metrics.Metrics
	Log         *logger.Logger
	AppName     string
	JWTSecret   string
	CronSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("http")

	// Métricas primero: el middleware debe envolver todas las rutas.
	if deps.Metrics != nil {
		app.Use(MetricsMiddleware(deps.Metrics))
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api")

	// Login (público)
	authHandler := NewAuthHandler(deps.AuthUC, log)
	api.Post("/auth/login", authHandler.Login)

	// Scheduler externo (secret compartido, sin JWT)
	campaignHandler := NewCampaignHandler(deps.CampaignUC, log)
	api.Post("/cron/campaigns", CronSecretMiddleware(deps.CronSecret), campaignHandler.Dispatch)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	operator := RequireRole(entity.RoleAdmin, entity.RoleOperador)
	admin := RequireRole(entity.RoleAdmin)

	// Usuarios (solo admin)
	users := protected.Group("/auth", admin)
	users.Post("/register", authHandler.Register)
	users.Get("/users", authHandler.ListUsers)
	users.Patch("/users/:id/status", authHandler.UpdateUserStatus)

	// Mayoristas
	wholesale := protected.Group("/wholesale")
	wholesaleHandler := NewWholesaleHandler(deps.StatsUC, deps.ZoneUC, log)
	wholesale.Get("/stats", operator, wholesaleHandler.Stats)
	wholesale.Get("/stats/pdf", operator, wholesaleHandler.StatsPDF)
	wholesale.Post("/stats/email", admin, wholesaleHandler.EmailSummary)
	wholesale.Post("/ledger/recompute", admin, wholesaleHandler.RecomputeLedger)
	wholesale.Get("/unmatched", operator, wholesaleHandler.Unmatched)
	wholesale.Get("/zones", operator, wholesaleHandler.Zones)
	wholesale.Get("/volume", operator, wholesaleHandler.Volume)

	// Puntos de venta
	outlets := protected.Group("/outlets")
	outletHandler := NewOutletHandler(deps.OutletUC, deps.StatsUC, log)
	outlets.Get("/", operator, outletHandler.List)
	outlets.Post("/", operator, outletHandler.Create)
	outlets.Get("/:id", operator, outletHandler.Get)
	outlets.Put("/:id", operator, outletHandler.Update)
	outlets.Delete("/:id", admin, outletHandler.Delete)
	outlets.Get("/:id/stats", operator, outletHandler.Stats)
	outlets.Put("/:id/ledger", operator, outletHandler.SetLedger)

	// Analítica
	analytics := protected.Group("/analytics", operator)
	analyticsHandler := NewAnalyticsHandler(deps.MonthlyUC, deps.ProductsUC, log)
	analytics.Get("/monthly", analyticsHandler.Monthly)
	analytics.Get("/products", analyticsHandler.Products)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, log)
	protected.Get("/dashboard/summary", operator, dashboardHandler.GetSummary)

	// Catálogo de precios
	catalog := protected.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC, log)
	catalog.Get("/", operator, catalogHandler.List)
	catalog.Get("/select-options", operator, catalogHandler.SelectOptions)
	catalog.Post("/prices", admin, catalogHandler.CreatePrice)
	catalog.Put("/prices/:id", admin, catalogHandler.UpdatePrice)

	// Pedidos
	orders := protected.Group("/orders", operator)
	orderHandler := NewOrderHandler(deps.OrderUC, log)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Post("/:id/contacted", orderHandler.MarkContacted)
}
