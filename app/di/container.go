package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"portal-service/app/config"
	"portal-service/app/domain"
	"portal-service/app/driver/kratos"
	"portal-service/app/driver/postgres"
	"portal-service/app/gateway"
	"portal-service/app/port"
	"portal-service/app/rest"
	"portal-service/app/usecase"
)

// Container holds all dependencies for one portal process
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	KratosClient *kratos.Client

	// Gateways
	IdentityProvider port.IdentityProvider
	IdentityGateway  port.IdentityGateway

	// Repositories
	UserRepository     port.UserRepository
	CompanyRepository  port.CompanyRepository
	WorkflowRepository port.WorkflowRepository

	// Usecases
	Gate            port.Gate
	AuthUsecase     port.AuthUsecase
	UserUsecase     port.UserUsecase
	CompanyUsecase  port.CompanyUsecase
	WorkflowUsecase port.WorkflowUsecase
	IdentitySync    *usecase.IdentitySyncUsecase
}

// NewContainer creates and initializes the dependency container.
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error

	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.KratosClient, err = kratos.NewClient(cfg, logger)
	if err != nil {
		container.DB.Close()
		return nil, fmt.Errorf("failed to initialize identity provider client: %w", err)
	}

	container.UserRepository = postgres.NewUserRepository(container.DB.Pool(), logger)
	container.CompanyRepository = postgres.NewCompanyRepository(container.DB.Pool(), logger)
	container.WorkflowRepository = postgres.NewWorkflowRepository(container.DB.Pool(), logger)

	container.IdentityProvider = kratos.NewIdentityProviderAdapter(container.KratosClient, logger)
	container.IdentityGateway = gateway.NewIdentityGateway(container.IdentityProvider, logger)

	portal := domain.Portal(cfg.PortalType)
	container.Gate = usecase.NewGateUsecase(portal, container.IdentityGateway, container.UserRepository, logger)
	container.AuthUsecase = usecase.NewAuthUsecase(container.IdentityGateway, container.UserRepository, logger)
	container.UserUsecase = usecase.NewUserUsecase(container.UserRepository, container.CompanyRepository, logger)
	container.CompanyUsecase = usecase.NewCompanyUsecase(container.CompanyRepository, logger)
	container.WorkflowUsecase = usecase.NewWorkflowUsecase(container.WorkflowRepository, container.CompanyRepository, logger)
	container.IdentitySync = usecase.NewIdentitySyncUsecase(container.IdentityGateway, container.UserRepository, logger)

	logger.Info("container initialized",
		"portal", cfg.PortalType)

	return container, nil
}

// CreateRouter creates the fully configured Echo router for this portal.
func (c *Container) CreateRouter() *echo.Echo {
	return rest.NewRouter(rest.RouterConfig{
		Portal:           domain.Portal(c.Config.PortalType),
		Logger:           c.Logger,
		Gate:             c.Gate,
		AuthUsecase:      c.AuthUsecase,
		UserUsecase:      c.UserUsecase,
		CompanyUsecase:   c.CompanyUsecase,
		WorkflowUsecase:  c.WorkflowUsecase,
		IdentityProvider: c.IdentityProvider,
		DBPing: func() error {
			return c.DB.HealthCheck(context.Background())
		},
		EnableDebug: c.Config.LogLevel == "debug",
	})
}

// Close closes all held resources.
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}
	c.Logger.Info("container closed")
	return nil
}
