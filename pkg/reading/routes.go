package reading

import (
	"github.com/labstack/echo/v4"
	"github.com/pathsala/pathsala/pkg/auth"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers reading tracker routes, all scoped to the
// authenticated reader.
func RegisterRoutes(e *echo.Echo, db *bun.DB, authMiddleware *auth.Middleware) {
	h := &handler{
		readingService: NewService(db),
	}

	g := e.Group("/reading", authMiddleware.AuthenticateReader)
	g.POST("/update-time", h.updateTime)
	g.GET("/stats", h.stats)
	g.GET("/read-books", h.readBooks)
	g.GET("/profile", h.profile)
}
