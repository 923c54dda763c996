package bookusage

import (
	"github.com/labstack/echo/v4"
	"github.com/pathsala/pathsala/pkg/auth"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers in-library issuance routes. Issue/return and the
// lookup views are captain operations; readers can see their own records.
func RegisterRoutes(e *echo.Echo, db *bun.DB, authMiddleware *auth.Middleware) {
	h := &handler{
		usageService: NewService(db),
	}

	g := e.Group("/bookusage")
	g.POST("/issue", h.issue, authMiddleware.AuthenticateCaptain)
	g.PUT("/:usageId/return", h.returnBook, authMiddleware.AuthenticateCaptain)
	g.GET("/reader/active", h.myActive, authMiddleware.AuthenticateReader)
	g.GET("/reader/history", h.myHistory, authMiddleware.AuthenticateReader)
	g.GET("/reader/:readerId", h.listForReader, authMiddleware.AuthenticateCaptain)
	g.GET("/book/:bookId", h.listForBook, authMiddleware.AuthenticateCaptain)
	g.GET("/:usageId", h.retrieve, authMiddleware.AuthenticateCaptain)
}
