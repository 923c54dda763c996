package users

import (
	"github.com/labstack/echo/v4"
	"github.com/pathsala/pathsala/pkg/auth"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers reader account routes.
func RegisterRoutes(e *echo.Echo, db *bun.DB, authService *auth.Service, authMiddleware *auth.Middleware) {
	userService := NewService(db)

	h := &handler{
		userService: userService,
		authService: authService,
	}

	g := e.Group("/users")
	g.POST("/register", h.register)
	g.POST("/login", h.login)
	g.GET("/logout", h.logout, authMiddleware.AuthenticateReader)
	g.GET("/profile", h.profile, authMiddleware.AuthenticateReader)
}
