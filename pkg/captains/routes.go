package captains

import (
	"github.com/labstack/echo/v4"
	"github.com/pathsala/pathsala/pkg/auth"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers captain account routes.
func RegisterRoutes(e *echo.Echo, db *bun.DB, authService *auth.Service, authMiddleware *auth.Middleware) {
	captainService := NewService(db)

	h := &handler{
		captainService: captainService,
		authService:    authService,
	}

	g := e.Group("/captains")
	g.POST("/register", h.register)
	g.POST("/login", h.login)
	g.GET("/logout", h.logout, authMiddleware.AuthenticateCaptain)
	g.GET("/profile", h.profile, authMiddleware.AuthenticateCaptain)
}
