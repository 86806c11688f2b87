package routes

import (
	"github.com/gin-gonic/gin"

	vo "github.com/GithubESPI/dotationsFrontend/internal/domain/permission/valueobjects"
	"github.com/GithubESPI/dotationsFrontend/internal/interfaces/http/handlers"
	"github.com/GithubESPI/dotationsFrontend/internal/interfaces/http/middleware"
)

type EmployeeRouteConfig struct {
	EmployeeHandler      *handlers.EmployeeHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupEmployeeRoutes(engine *gin.Engine, config *EmployeeRouteConfig) {
	read := config.PermissionMiddleware.RequirePermission(vo.ResourceEmployee, vo.ActionRead)
	write := config.PermissionMiddleware.RequirePermission(vo.ResourceEmployee, vo.ActionWrite)

	employees := engine.Group("/employees")
	employees.Use(config.AuthMiddleware.RequireAuth())
	{
		employees.GET("", read, config.EmployeeHandler.Search)
		employees.GET("/all", read, config.EmployeeHandler.All)
		employees.GET("/stats", read, config.EmployeeHandler.Stats)

		// Directory import for admins
		employees.POST("/import", write, config.EmployeeHandler.Import)

		employees.POST("/:id/deactivate", write, config.EmployeeHandler.Deactivate)
		employees.GET("/:id", read, config.EmployeeHandler.Get)
		employees.PUT("/:id", write, config.EmployeeHandler.Update)
	}
}
