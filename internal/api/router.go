package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/elbuensabor/backoffice/internal/api/handler"
	"github.com/elbuensabor/backoffice/internal/api/middleware"
	"github.com/elbuensabor/backoffice/internal/core/domain"
	"github.com/elbuensabor/backoffice/internal/core/service"
	mongodb "github.com/elbuensabor/backoffice/internal/infrastructure/db/mongo"
	redisdb "github.com/elbuensabor/backoffice/internal/infrastructure/db/redis"
	"github.com/elbuensabor/backoffice/internal/infrastructure/queue"
)

// Dependencies carries the external resources the router wires together.
type Dependencies struct {
	Operational  *mongo.Database // staff profiles, orders, menu, movements, inventory
	Credential   *mongo.Database // login identities
	Redis        *redis.Client
	JWTSecret    string
	Timezone     *time.Location
	EventWorkers int
	Log          zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered and returns
// it together with the event dispatcher, whose worker lifecycle the caller
// owns.
func NewRouter(deps Dependencies) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("backoffice"))

	// --- Stores ---
	credentialStore := mongodb.NewCredentialRepository(deps.Credential)
	staffRepo := mongodb.NewStaffRepository(deps.Operational)
	orderRepo := mongodb.NewOrderRepository(deps.Operational)
	menuRepo := mongodb.NewMenuRepository(deps.Operational)
	financeRepo := mongodb.NewFinanceRepository(deps.Operational)
	inventoryRepo := mongodb.NewInventoryRepository(deps.Operational)
	dedup := redisdb.NewDedupChecker(deps.Redis)

	// --- Services ---
	provisioningService := service.NewProvisioningService(credentialStore, staffRepo, deps.Log)
	authService := service.NewAuthService(credentialStore, staffRepo, deps.JWTSecret, 24*time.Hour)
	orderService := service.NewOrderService(orderRepo, menuRepo, deps.Timezone, deps.Log)
	financeService := service.NewFinanceService(financeRepo, orderRepo, deps.Timezone, deps.Log)
	inventoryService := service.NewInventoryService(inventoryRepo, deps.Log)
	assistantService := service.NewAssistantService(inventoryRepo, financeRepo, staffRepo)
	eventService := service.NewOrderEventService(orderService, dedup, deps.Log)
	dispatcher := queue.NewDispatcher(deps.EventWorkers, eventService, deps.Log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	staffHandler := handler.NewStaffHandler(provisioningService)
	orderHandler := handler.NewOrderHandler(orderService)
	financeHandler := handler.NewFinanceHandler(financeService, deps.Timezone)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	assistantHandler := handler.NewAssistantHandler(assistantService)
	eventHandler := handler.NewEventHandler(dispatcher)

	authMW := middleware.Auth(deps.JWTSecret)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)

	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Operational, deps.Credential, deps.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Authenticated routes ---
	v1 := e.Group("/v1", authMW)

	v1.GET("/staff", staffHandler.List, middleware.RBAC(domain.RoleManager))
	v1.POST("/staff", staffHandler.Create, middleware.RBAC(domain.RoleAdministrator))
	v1.DELETE("/staff/:name", staffHandler.Delete, middleware.RBAC(domain.RoleAdministrator))
	v1.PUT("/staff/:name/contract", staffHandler.UpdateContract, middleware.RBAC(domain.RoleAdministrator))

	v1.GET("/menu", orderHandler.Menu)
	v1.POST("/orders", orderHandler.Create, middleware.RBAC(domain.RoleCashier))
	v1.POST("/orders/:id/transition", orderHandler.Transition, middleware.RBAC(domain.RoleCashier))
	v1.GET("/orders/active", orderHandler.ListActive)

	v1.POST("/orders/events", eventHandler.Receive, middleware.RBAC(domain.RoleCashier, domain.RoleCook))
	v1.POST("/orders/events/batch", eventHandler.ReceiveBatch, middleware.RBAC(domain.RoleCashier, domain.RoleCook))

	v1.GET("/finance/revenue", financeHandler.Revenue, middleware.RBAC(domain.RoleManager))
	v1.POST("/finance/movements", financeHandler.RecordMovement, middleware.RBAC(domain.RoleManager))
	v1.GET("/finance/ledger", financeHandler.Ledger, middleware.RBAC(domain.RoleManager))

	v1.GET("/inventory", inventoryHandler.List)
	v1.PUT("/inventory", inventoryHandler.Upsert, middleware.RBAC(domain.RoleCook))
	v1.DELETE("/inventory/:name", inventoryHandler.Delete, middleware.RBAC(domain.RoleCook))

	v1.GET("/assistant/context", assistantHandler.Context, middleware.RBAC(domain.RoleManager))

	return e, dispatcher
}
