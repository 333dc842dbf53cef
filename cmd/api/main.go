package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jhoicas/Petfood-admin/docs"
	appanalytics "github.com/jhoicas/Petfood-admin/internal/application/analytics"
	"github.com/jhoicas/Petfood-admin/internal/application/auth"
	"github.com/jhoicas/Petfood-admin/internal/application/campaign"
	"github.com/jhoicas/Petfood-admin/internal/application/orders"
	"github.com/jhoicas/Petfood-admin/internal/application/ports"
	"github.com/jhoicas/Petfood-admin/internal/application/pricing"
	"github.com/jhoicas/Petfood-admin/internal/application/wholesale"
	"github.com/jhoicas/Petfood-admin/internal/infrastructure/cache"
	"github.com/jhoicas/Petfood-admin/internal/infrastructure/messaging"
	"github.com/jhoicas/Petfood-admin/internal/infrastructure/mongodb"
	infrapdf "github.com/jhoicas/Petfood-admin/internal/infrastructure/pdf"
	"github.com/jhoicas/Petfood-admin/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Petfood-admin/internal/interfaces/http"
	"github.com/jhoicas/Petfood-admin/pkg/config"
	"github.com/jhoicas/Petfood-admin/pkg/logger"
	"github.com/jhoicas/Petfood-admin/pkg/metrics"
)

// @title                       Petfood Admin API
// @version                     1.0
// @description                 Estadísticas mayoristas, catálogo de precios, reportes y campañas.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("timezone", cfg.App.Timezone).
		Msg("iniciando aplicación")

	loc := cfg.App.Location()
	m := metrics.New("petfood")

	ctx := context.Background()

	mongoClient, db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MongoDB")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Warn().Err(err).Msg("índices de MongoDB")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("esquema de PostgreSQL")
	}

	// Repositorios
	userRepo := postgres.NewUserRepository(pool)
	unmatchedRepo := postgres.NewUnmatchedItemRepository(pool)
	orderRepo := mongodb.NewOrderRepository(db)
	outletRepo := mongodb.NewOutletRepository(db)
	priceRepo := mongodb.NewPriceRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	campaignRepo := mongodb.NewCampaignRepository(db)
	analyticsRepo := mongodb.NewAnalyticsRepository(db, cfg.App.Timezone)

	catalogCache, err := cache.NewCatalogCache(cfg.Catalog.CacheSize)
	if err != nil {
		log.Fatal().Err(err).Msg("caché de catálogo")
	}

	// Canales de salida opcionales: sin configuración el envío responde error y la campaña queda failed.
	var emailSender ports.EmailSender
	if cfg.SMTP.Enabled() {
		emailSender = messaging.NewSMTPSender(cfg.SMTP)
	} else {
		log.Warn().Msg("SMTP no configurado: emails deshabilitados")
	}
	var whatsappSender ports.WhatsAppSender
	if cfg.RabbitMQ.URL != "" {
		publisher, err := messaging.NewWhatsAppPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.WhatsAppQueue, 4)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a RabbitMQ")
		}
		defer publisher.Close()
		whatsappSender = publisher
	} else {
		log.Warn().Msg("RABBITMQ_URL vacío: WhatsApp deshabilitado")
	}

	// Casos de uso
	catalogUC := pricing.NewCatalogUseCase(priceRepo, catalogCache, m, loc)
	statsUC := wholesale.NewStatsUseCase(
		outletRepo, orderRepo, unmatchedRepo, catalogUC,
		infrapdf.NewMarotoPDFGenerator(loc), emailSender,
		wholesale.ReportConfig{From: cfg.SMTP.From, Recipients: cfg.SMTP.ReportRecipients},
		m, log, loc,
	)
	dispatchUC := campaign.NewDispatchUseCase(
		campaignRepo, clientRepo, outletRepo, emailSender, whatsappSender,
		campaign.Config{
			Tolerance:     cfg.Campaign.Tolerance,
			BatchSize:     cfg.Campaign.BatchSize,
			RatePerSecond: cfg.Campaign.RatePerSecond,
			From:          cfg.SMTP.From,
		},
		m, log,
	)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "${time} ${status} ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   cfg.App.Timezone,
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Petfood Admin API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		StatsUC:     statsUC,
		ZoneUC:      wholesale.NewZoneUseCase(outletRepo, loc),
		OutletUC:    wholesale.NewOutletUseCase(outletRepo),
		MonthlyUC:   appanalytics.NewMonthlyUseCase(analyticsRepo, loc),
		ProductsUC:  appanalytics.NewProductsUseCase(orderRepo, catalogUC, loc),
		DashboardUC: appanalytics.NewDashboardUseCase(analyticsRepo, loc),
		CatalogUC:   catalogUC,
		OrderUC:     orders.NewOrderUseCase(orderRepo),
		CampaignUC:  dispatchUC,
		Metrics:     m,
		Log:         log,
		AppName:     cfg.App.Name,
		JWTSecret:   cfg.JWT.Secret,
		CronSecret:  cfg.Campaign.CronSecret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
