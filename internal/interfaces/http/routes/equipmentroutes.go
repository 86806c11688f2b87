package routes

import (
	"github.com/gin-gonic/gin"

	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/permission/valueobjects"
	"github.com/GithubESPI/dotationsFrontend/internal/interfaces/http/handlers"
	"github.com/GithubESPI/dotationsFrontend/internal/interfaces/http/middleware"
)

type EquipmentRouteConfig struct {
	EquipmentHandler     *handlers.EquipmentHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupEquipmentRoutes(engine *gin.Engine, config *EquipmentRouteConfig) {
	read := config.PermissionMiddleware.RequirePermission(vo.ResourceEquipment, vo.ActionRead)
	write := config.PermissionMiddleware.RequirePermission(vo.ResourceEquipment, vo.ActionWrite)

	equipment := engine.Group("/equipment")
	equipment.Use(config.AuthMiddleware.RequireAuth())
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no ID parameter)
		equipment.GET("", read, config.EquipmentHandler.Search)
		equipment.POST("", write, config.EquipmentHandler.Create)

		equipment.GET("/all", read, config.EquipmentHandler.All)
		equipment.GET("/available", read, config.EquipmentHandler.Available)
		equipment.GET("/stats", read, config.EquipmentHandler.Stats)
		equipment.GET("/user/:userId", read, config.EquipmentHandler.ByUser)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		equipment.POST("/:id/assign", write, config.EquipmentHandler.Assign)
		equipment.POST("/:id/release", write, config.EquipmentHandler.Release)

		// Generic parameterized routes (must come LAST)
		equipment.GET("/:id", read, config.EquipmentHandler.Get)
		equipment.PUT("/:id", write, config.EquipmentHandler.Update)
		equipment.DELETE("/:id", write, config.EquipmentHandler.Delete)
	}
}
