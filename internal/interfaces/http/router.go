package http

import (
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/GithubESPI/dotationsFrontend/docs"
	"github.com/GithubESPI/dotationsFrontend/internal/interfaces/http/middleware"
	"github.com/GithubESPI/dotationsFrontend/internal/interfaces/http/routes"
)

// SetupRoutes configures all HTTP routes
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Logger(c.log))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())

	c.engine.GET("/health", c.hdlrs.healthHandler.Health)
	c.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		ProfileHandler: c.hdlrs.profileHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupEquipmentRoutes(c.engine, &routes.EquipmentRouteConfig{
		EquipmentHandler:     c.hdlrs.equipmentHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupAllocationRoutes(c.engine, &routes.AllocationRouteConfig{
		AllocationHandler:    c.hdlrs.allocationHandler,
		ReturnHandler:        c.hdlrs.returnHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupEmployeeRoutes(c.engine, &routes.EmployeeRouteConfig{
		EmployeeHandler:      c.hdlrs.employeeHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupJiraAssetRoutes(c.engine, &routes.JiraAssetRouteConfig{
		JiraAssetHandler:     c.hdlrs.jiraAssetHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
		SyncRateLimiter:      c.syncRateLimiter,
	})
}

// Run starts the HTTP server
func (c *Container) Run(addr string) error {
	return c.engine.Run(addr)
}

