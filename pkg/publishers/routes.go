package publishers

import (
	"github.com/labstack/echo/v4"
	"github.com/pathsala/pathsala/pkg/auth"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers publisher lookup routes. Reads are public; writes
// require a captain session.
func RegisterRoutes(e *echo.Echo, db *bun.DB, authMiddleware *auth.Middleware) {
	h := &handler{
		publisherService: NewService(db),
	}

	g := e.Group("/publishers")
	g.POST("/create", h.create, authMiddleware.AuthenticateCaptain)
	g.GET("/all", h.list)
	g.GET("/:publisherId", h.retrieve)
	g.PUT("/:publisherId", h.update, authMiddleware.AuthenticateCaptain)
	g.DELETE("/:publisherId", h.delete, authMiddleware.AuthenticateCaptain)
}
