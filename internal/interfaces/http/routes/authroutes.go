package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/GithubESPI/dotationsFrontend/internal/interfaces/http/handlers"
	"github.com/GithubESPI/dotationsFrontend/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	ProfileHandler *handlers.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.GET("/profile", config.AuthMiddleware.RequireAuth(), config.ProfileHandler.GetProfile)
	}
}
