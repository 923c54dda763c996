package borrowing

import (
	"github.com/labstack/echo/v4"
	"github.com/pathsala/pathsala/pkg/auth"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers take-home loan routes, all scoped to the
// authenticated reader.
func RegisterRoutes(e *echo.Echo, db *bun.DB, authMiddleware *auth.Middleware) {
	h := &handler{
		borrowingService: NewService(db),
	}

	g := e.Group("/borrowing", authMiddleware.AuthenticateReader)
	g.POST("/borrow", h.borrow)
	g.PUT("/return/:borrowingId", h.returnBook)
	g.GET("/history", h.history)
	g.GET("/active", h.active)
}
