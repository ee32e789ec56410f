package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/jhoicas/productividad-api/internal/application/auth"
	"github.com/jhoicas/productividad-api/internal/application/ingestion"
	"github.com/jhoicas/productividad-api/internal/application/usecase"
	"github.com/jhoicas/productividad-api/internal/domain/entity"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	SyncUC      *ingestion.SyncUseCase
	RecordsUC   *usecase.RecordsUseCase
	AnalyticsUC *usecase.AnalyticsUseCase
	AIUC        *usecase.AIUseCase
	JWTSecret   string
	ServiceName string
	// Gatherer origen de /metrics; nil usa prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	anyRole := RequireRole(entity.RoleAdmin, entity.RoleMantenimiento)

	records := NewRecordsHandler(deps.RecordsUC)
	protected.Get("/clients", anyRole, records.ListClients)
	protected.Get("/clients/:id", anyRole, records.GetClient)
	protected.Get("/work-orders", anyRole, records.ListWorkOrders)
	protected.Get("/work-orders/:id", anyRole, records.GetWorkOrder)
	protected.Get("/field-visits", anyRole, records.ListFieldVisits)
	protected.Get("/technicians", anyRole, records.ListTechnicians)

	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	aiHandler := NewAIHandler(deps.AIUC)
	analytics := protected.Group("/analytics", anyRole)
	analytics.Get("/dashboard", analyticsHandler.GetDashboard)
	analytics.Get("/insight", aiHandler.GetInsight)

	protected.Post("/chat/message", anyRole, aiHandler.Chat)

	// Sincronización: solo admin
	syncHandler := NewSyncHandler(deps.SyncUC)
	syncGroup := protected.Group("/sync", RequireRole(entity.RoleAdmin))
	syncGroup.Post("/clients", syncHandler.SyncClients)
	syncGroup.Post("/work-orders", syncHandler.SyncWorkOrders)
	syncGroup.Post("/field-visits", syncHandler.SyncFieldVisits)
	syncGroup.Post("/all", syncHandler.SyncAll)
}
