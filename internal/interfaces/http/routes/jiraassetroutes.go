package routes

import (
	"github.com/gin-gonic/gin"

	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/permission/valueobjects"
	"github.com/GithubESPI/dotationsFrontend/internal/interfaces/http/handlers"
	"github.com/GithubESPI/dotationsFrontend/internal/interfaces/http/middleware"
)

type JiraAssetRouteConfig struct {
	JiraAssetHandler     *handlers.JiraAssetHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	SyncRateLimiter      *middleware.RateLimiter
}

func SetupJiraAssetRoutes(engine *gin.Engine, config *JiraAssetRouteConfig) {
	read := config.PermissionMiddleware.RequirePermission(vo.ResourceJira, vo.ActionRead)
	sync := config.PermissionMiddleware.RequirePermission(vo.ResourceJira, vo.ActionSync)

	jira := engine.Group("/jira-asset")
	jira.Use(config.AuthMiddleware.RequireAuth())
	{
		jira.GET("/workspace", read, config.JiraAssetHandler.Workspace)
		jira.GET("/schema/:schema/object-type/:type", read, config.JiraAssetHandler.ObjectTypeAssets)
		jira.POST("/search", read, config.JiraAssetHandler.Search)
		jira.GET("/asset/:id", read, config.JiraAssetHandler.Asset)
		jira.POST("/mapping/detect", read, config.JiraAssetHandler.DetectMapping)
		jira.POST("/select", read, config.JiraAssetHandler.Select)

		// Sync endpoints are rate limited per staff member
		jira.POST("/sync/laptops",
			sync,
			config.SyncRateLimiter.Limit(),
			config.JiraAssetHandler.SyncLaptops)
		jira.POST("/sync/schema/:schema",
			sync,
			config.SyncRateLimiter.Limit(),
			config.JiraAssetHandler.SyncSchema)
	}
}
