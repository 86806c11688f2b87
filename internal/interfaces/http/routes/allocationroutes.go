package routes

import (
	"github.com/gin-gonic/gin"

	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/permission/valueobjects"
	"github.com/GithubESPI/dotationsFrontend/internal/interfaces/http/handlers"
	"github.com/GithubESPI/dotationsFrontend/internal/interfaces/http/middleware"
)

type AllocationRouteConfig struct {
	AllocationHandler    *handlers.AllocationHandler
	ReturnHandler        *handlers.ReturnHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupAllocationRoutes(engine *gin.Engine, config *AllocationRouteConfig) {
	pm := config.PermissionMiddleware

	allocations := engine.Group("/allocations")
	allocations.Use(config.AuthMiddleware.RequireAuth())
	{
		read := pm.RequirePermission(vo.ResourceAllocation, vo.ActionRead)
		write := pm.RequirePermission(vo.ResourceAllocation, vo.ActionWrite)

		allocations.GET("", read, config.AllocationHandler.Search)
		allocations.POST("", write, config.AllocationHandler.Create)

		allocations.GET("/all", read, config.AllocationHandler.All)
		allocations.GET("/stats", read, config.AllocationHandler.Stats)
		allocations.GET("/user/:userId", read, config.AllocationHandler.ByUser)

		allocations.POST("/:id/sign",
			pm.RequirePermission(vo.ResourceAllocation, vo.ActionSign),
			config.AllocationHandler.Sign)
		allocations.POST("/:id/cancel", write, config.AllocationHandler.Cancel)

		allocations.GET("/:id", read, config.AllocationHandler.Get)
		allocations.PUT("/:id", write, config.AllocationHandler.Update)
	}

	returns := engine.Group("/returns")
	returns.Use(config.AuthMiddleware.RequireAuth())
	{
		read := pm.RequirePermission(vo.ResourceReturn, vo.ActionRead)

		returns.POST("", pm.RequirePermission(vo.ResourceReturn, vo.ActionWrite), config.ReturnHandler.Create)
		returns.GET("/stats", read, config.ReturnHandler.Stats)
		returns.GET("/user/:userId", read, config.ReturnHandler.ByUser)
		returns.GET("/allocation/:allocationId", read, config.ReturnHandler.ByAllocation)
	}
}
