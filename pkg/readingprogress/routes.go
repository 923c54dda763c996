package readingprogress

import (
	"github.com/labstack/echo/v4"
	"github.com/pathsala/pathsala/pkg/auth"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers reading progress routes, all scoped to the
// authenticated reader.
func RegisterRoutes(e *echo.Echo, db *bun.DB, authMiddleware *auth.Middleware) {
	h := &handler{
		progressService: NewService(db),
	}

	g := e.Group("/reading-progress", authMiddleware.AuthenticateReader)
	g.PUT("/update", h.update)
	g.GET("", h.list)
	g.GET("/finished/all", h.listFinished)
	g.GET("/in-progress/all", h.listInProgress)
	g.PUT("/:bookId/finish", h.finish)
	g.GET("/:bookId", h.retrieve)
}
