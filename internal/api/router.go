package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/clinicops/directory-admin/docs"
	"github.com/clinicops/directory-admin/internal/api/cookies"
	"github.com/clinicops/directory-admin/internal/api/handler"
	"github.com/clinicops/directory-admin/internal/api/middleware"
	"github.com/clinicops/directory-admin/internal/core/ports"
	"github.com/clinicops/directory-admin/internal/core/service"
	"github.com/clinicops/directory-admin/internal/infrastructure/config"
	mongodb "github.com/clinicops/directory-admin/internal/infrastructure/db/mongo"
	redisdb "github.com/clinicops/directory-admin/internal/infrastructure/db/redis"
)

// Deps carries the externally-constructed dependencies the router wires
// together.
type Deps struct {
	Config    *config.Config
	Logger    zerolog.Logger
	Identity  ports.IdentityClient
	Directory ports.DirectoryClient
	Audit     ports.AuditRecorder
	Mongo     *mongo.Database
	Redis     *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = handler.NewRenderer()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("clinicadmin"))

	// --- Dependencies ---
	cookieMgr := cookies.NewManager([]byte(d.Config.SessionSecret))
	sessionStore := redisdb.NewSessionStore(d.Redis)
	auditRepo := mongodb.NewAuditRepository(d.Mongo)

	sessionService := service.NewSessionService(d.Identity, sessionStore, d.Audit, d.Config.SessionTTL, d.Logger)
	directoryService := service.NewDirectoryService(d.Directory, d.Logger)
	accountService := service.NewAccountService(d.Identity, d.Directory, d.Audit, d.Logger)

	authHandler := handler.NewAuthHandler(sessionService, cookieMgr, d.Config.SessionTTL, d.Logger)
	dashboardHandler := handler.NewDashboardHandler(directoryService, cookieMgr)
	accountHandler := handler.NewAccountHandler(accountService, cookieMgr)
	userAPI := handler.NewUserAPIHandler(directoryService, accountService)
	auditAPI := handler.NewAuditHandler(auditRepo)

	guard := middleware.Session(sessionService, cookieMgr)

	// --- Pages ---
	e.GET("/", authHandler.Index)
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout, guard)

	dashboard := e.Group("/dashboard", guard)
	dashboard.GET("", dashboardHandler.Dashboard)
	dashboard.GET("/add", accountHandler.AddUserForm)
	dashboard.POST("/add", accountHandler.AddUser)

	// --- JSON API ---
	apiV1 := e.Group("/api/v1", guard)
	apiV1.GET("/users", userAPI.List)
	apiV1.POST("/users", userAPI.Create)
	apiV1.GET("/audit", auditAPI.Recent)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
