package books

import (
	"github.com/labstack/echo/v4"
	"github.com/pathsala/pathsala/pkg/auth"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers catalog routes. Reads are public; writes require a
// captain session.
func RegisterRoutes(e *echo.Echo, db *bun.DB, authMiddleware *auth.Middleware) {
	h := &handler{
		bookService: NewService(db),
	}

	g := e.Group("/books")
	g.POST("/create", h.create, authMiddleware.AuthenticateCaptain)
	g.GET("/all", h.list)
	g.GET("/popular", h.popular)
	g.GET("/suggestions", h.suggestions)
	g.GET("/:bookId", h.retrieve)
	g.PUT("/:bookId", h.update, authMiddleware.AuthenticateCaptain)
	g.DELETE("/:bookId", h.delete, authMiddleware.AuthenticateCaptain)
}
