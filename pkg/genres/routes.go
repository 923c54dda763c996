package genres

import (
	"github.com/labstack/echo/v4"
	"github.com/pathsala/pathsala/pkg/auth"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers genre lookup routes. Reads are public; writes
// require a captain session.
func RegisterRoutes(e *echo.Echo, db *bun.DB, authMiddleware *auth.Middleware) {
	h := &handler{
		genreService: NewService(db),
	}

	g := e.Group("/genres")
	g.POST("/create", h.create, authMiddleware.AuthenticateCaptain)
	g.GET("/all", h.list)
	g.GET("/:genreId", h.retrieve)
	g.PUT("/:genreId", h.update, authMiddleware.AuthenticateCaptain)
	g.DELETE("/:genreId", h.delete, authMiddleware.AuthenticateCaptain)
}
