package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/productividad-api/internal/application/auth"
	"github.com/jhoicas/productividad-api/internal/application/ingestion"
	"github.com/jhoicas/productividad-api/internal/application/usecase"
	infraai "github.com/jhoicas/productividad-api/internal/infrastructure/ai"
	"github.com/jhoicas/productividad-api/internal/infrastructure/metrics"
	"github.com/jhoicas/productividad-api/internal/infrastructure/postgres"
	"github.com/jhoicas/productividad-api/internal/infrastructure/sheets"
	httpRouter "github.com/jhoicas/productividad-api/internal/interfaces/http"
	"github.com/jhoicas/productividad-api/pkg/config"
	"github.com/jhoicas/productividad-api/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(cfg.DB.ConnectionString(), log); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, cfg.App.Name)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	clientRepo := postgres.NewClientRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	workOrderRepo := postgres.NewWorkOrderRepository(pool)
	fieldVisitRepo := postgres.NewFieldVisitRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Sin credenciales de Google la API sigue sirviendo lecturas y analítica.
	var source ingestion.RowSource
	source, err = sheets.NewSource(ctx, cfg.Sheets.SpreadsheetID, cfg.Sheets.CredentialsFile)
	if err != nil {
		log.Error().Err(err).Msg("Google Sheets no disponible; la sincronización responderá 502")
		source = sheets.Unavailable(err)
	}

	syncUC := ingestion.NewSyncUseCase(source, txRunner, ingestion.Sheets{
		Clients:     cfg.Sheets.ClientsSheet,
		WorkOrders:  cfg.Sheets.WorkOrdersSheet,
		FieldVisits: cfg.Sheets.FieldSheet,
	}, log, ingestion.WithRecorder(metrics.NewIngestionRecorder(prometheus.DefaultRegisterer)))

	recordsUC := usecase.NewRecordsUseCase(clientRepo, workOrderRepo, fieldVisitRepo, catalogRepo)
	analyticsUC := usecase.NewAnalyticsUseCase(analyticsRepo)
	aiUC := usecase.NewAIUseCase(infraai.NewSummarizer(cfg.AI), analyticsUC, workOrderRepo, log)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		// Una corrida de sincronización completa puede tardar minutos.
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Minute * 5,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Productividad Técnica API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		SyncUC:      syncUC,
		RecordsUC:   recordsUC,
		AnalyticsUC: analyticsUC,
		AIUC:        aiUC,
		JWTSecret:   cfg.JWT.Secret,
		ServiceName: cfg.App.Name,
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
