package authors

import (
	"github.com/labstack/echo/v4"
	"github.com/pathsala/pathsala/pkg/auth"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers author lookup routes. Reads are public; writes
// require a captain session.
func RegisterRoutes(e *echo.Echo, db *bun.DB, authMiddleware *auth.Middleware) {
	h := &handler{
		authorService: NewService(db),
	}

	g := e.Group("/authors")
	g.POST("/create", h.create, authMiddleware.AuthenticateCaptain)
	g.GET("/all", h.list)
	g.GET("/:authorId", h.retrieve)
	g.PUT("/:authorId", h.update, authMiddleware.AuthenticateCaptain)
	g.DELETE("/:authorId", h.delete, authMiddleware.AuthenticateCaptain)
}
