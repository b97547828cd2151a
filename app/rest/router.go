package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"portal-service/app/domain"
	"portal-service/app/port"
	"portal-service/app/rest/handlers"
	custommw "portal-service/app/rest/middleware"
	"portal-service/app/utils/validator"
)

// RouterConfig holds everything the router needs to wire one portal.
type RouterConfig struct {
	Portal           domain.Portal
	Logger           *slog.Logger
	Gate             port.Gate
	AuthUsecase      port.AuthUsecase
	UserUsecase      port.UserUsecase
	CompanyUsecase   port.CompanyUsecase
	WorkflowUsecase  port.WorkflowUsecase
	IdentityProvider port.IdentityProvider
	DBPing           func() error
	EnableDebug      bool
}

type echoValidator struct {
	validator *validator.Validator
}

func (v *echoValidator) Validate(i interface{}) error {
	return v.validator.Validate(i)
}

// NewRouter creates and configures the Echo router for one portal. Both
// portals share the same route tree; the gate's portal policy and the role
// checks on the management API decide who gets through.
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Debug = config.EnableDebug
	e.Validator = &echoValidator{validator: validator.New()}

	authHandler := handlers.NewAuthHandler(config.AuthUsecase, config.Logger)
	userHandler := handlers.NewUserHandler(config.UserUsecase, config.Logger)
	companyHandler := handlers.NewCompanyHandler(config.CompanyUsecase, config.Logger)
	workflowHandler := handlers.NewWorkflowHandler(config.WorkflowUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(string(config.Portal), config.IdentityProvider, config.DBPing, config.Logger)

	gateMiddleware := custommw.NewGateMiddleware(config.Gate, config.Logger)
	sessionMiddleware := custommw.NewSessionMiddleware(config.AuthUsecase, config.Logger)
	rateLimiter := custommw.NewRateLimiter()

	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())
	e.Use(echomw.LoggerWithConfig(echomw.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	// Every request passes the gate; allow-listed prefixes and static
	// assets fall through inside it.
	e.Use(gateMiddleware.Guard())

	// Auth endpoints, always reachable (gate allow-lists /auth/).
	auth := e.Group("/auth")
	auth.GET("/login", authHandler.LoginPage)
	auth.POST("/login", authHandler.Login)
	auth.GET("/unauthorized", authHandler.Unauthorized)
	auth.POST("/logout", authHandler.Logout)
	auth.POST("/refresh", authHandler.RefreshSession)

	// Session introspection for the frontends. Lives under /api/auth/ so
	// both portal allow-lists cover it; the handler resolves the session
	// itself.
	e.GET("/api/auth/whoami", authHandler.WhoAmI)

	// Health endpoints. The gate skips these paths outright, so probes
	// reach the checks on both portals without a session.
	e.GET("/api/health", healthHandler.HealthCheck)
	e.GET("/api/ready", healthHandler.ReadinessCheck)
	e.GET("/api/live", healthHandler.LivenessCheck)

	api := e.Group("/api")
	api.Use(sessionMiddleware.RequireSession())

	// Management API for portal staff.
	management := api.Group("")
	management.Use(sessionMiddleware.RequireRoles(domain.UserRoleAdmin, domain.UserRoleSE))

	companies := management.Group("/companies")
	companies.GET("", companyHandler.ListCompanies)
	companies.POST("", companyHandler.CreateCompany)
	companies.GET("/:companyId", companyHandler.GetCompany)
	companies.PUT("/:companyId", companyHandler.RenameCompany)
	companies.DELETE("/:companyId", companyHandler.DeleteCompany)

	users := management.Group("/users")
	users.GET("", userHandler.ListUsers)
	users.POST("", userHandler.CreateUser)
	users.GET("/:userId", userHandler.GetUser)
	users.PUT("/:userId/role", userHandler.ChangeRole)
	users.PUT("/:userId/company", userHandler.AssignCompany)
	users.DELETE("/:userId", userHandler.DeactivateUser)

	// Workflow API, shared by staff and company users. Clients hit these
	// through the client portal, where the gate already checked the
	// company binding.
	api.GET("/companies/:companyId/workflows", workflowHandler.ListWorkflows)
	api.POST("/companies/:companyId/workflows", workflowHandler.CreateWorkflow)
	api.GET("/workflows/:workflowId", workflowHandler.GetWorkflow)
	api.PUT("/workflows/:workflowId", workflowHandler.UpdateWorkflow)
	api.DELETE("/workflows/:workflowId", workflowHandler.ArchiveWorkflow)
	api.GET("/workflows/:workflowId/executions", workflowHandler.ListExecutions)
	api.POST("/workflows/:workflowId/executions", workflowHandler.TriggerExecution)
	api.GET("/executions/:executionId", workflowHandler.GetExecution)
	api.PUT("/executions/:executionId", workflowHandler.RecordExecutionResult)

	return e
}
