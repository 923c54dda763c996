package reviews

import (
	"github.com/labstack/echo/v4"
	"github.com/pathsala/pathsala/pkg/auth"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers review routes. Listing a book's reviews is public;
// everything else belongs to the authenticated reader.
func RegisterRoutes(e *echo.Echo, db *bun.DB, authMiddleware *auth.Middleware) {
	h := &handler{
		reviewService: NewService(db),
	}

	g := e.Group("/reviews")
	g.POST("/create", h.create, authMiddleware.AuthenticateReader)
	g.GET("/book/:bookId", h.listForBook)
	g.GET("/book/:bookId/my-review", h.myReview, authMiddleware.AuthenticateReader)
	g.GET("/reader/myreviews", h.myReviews, authMiddleware.AuthenticateReader)
	g.PUT("/:reviewId", h.update, authMiddleware.AuthenticateReader)
	g.DELETE("/:reviewId", h.delete, authMiddleware.AuthenticateReader)
}
