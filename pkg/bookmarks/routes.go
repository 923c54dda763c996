package bookmarks

import (
	"github.com/labstack/echo/v4"
	"github.com/pathsala/pathsala/pkg/auth"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers bookmark routes. Everything is scoped to the
// authenticated reader.
func RegisterRoutes(e *echo.Echo, db *bun.DB, authMiddleware *auth.Middleware) {
	h := &handler{
		bookmarkService: NewService(db),
	}

	g := e.Group("/bookmarks")
	g.POST("/add", h.add, authMiddleware.AuthenticateReader)
	g.POST("/remove", h.remove, authMiddleware.AuthenticateReader)
	g.GET("/list", h.list, authMiddleware.AuthenticateReader)
	g.GET("/check/:bookId", h.check, authMiddleware.AuthenticateReader)
	g.GET("/count/all", h.count, authMiddleware.AuthenticateReader)
}
