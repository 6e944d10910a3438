package routes

import (
	"net/http"

	"hustled_backend/internal/auth"
	"hustled_backend/internal/handlers"
	"hustled_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all HTTP routes. The auth group is public;
// everything under /api/candidate requires a session principal, except
// profile/save which resolves its principal optionally (see the
// handler).
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	tokens *auth.TokenManager,
) {
	ginRouter.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.CandidateProfileHandler.RegisterRoutes(
			api,
			middleware.AuthMiddleware(tokens),
			middleware.OptionalAuthMiddleware(tokens),
		)
	}
}
