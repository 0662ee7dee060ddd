package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "workbase/internal/interfaces/http/handlers/auth"
	"workbase/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler *authhandlers.AuthHandler
	RateLimiter *middleware.RateLimiter
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	if config.RateLimiter != nil {
		auth.Use(config.RateLimiter.Limit())
	}
	{
		auth.POST("/login", config.AuthHandler.Login)
	}
}
