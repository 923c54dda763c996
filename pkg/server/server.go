package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pathsala/pathsala/pkg/auth"
	"github.com/pathsala/pathsala/pkg/authors"
	"github.com/pathsala/pathsala/pkg/binder"
	"github.com/pathsala/pathsala/pkg/bookmarks"
	"github.com/pathsala/pathsala/pkg/books"
	"github.com/pathsala/pathsala/pkg/bookusage"
	"github.com/pathsala/pathsala/pkg/borrowing"
	"github.com/pathsala/pathsala/pkg/captains"
	"github.com/pathsala/pathsala/pkg/config"
	"github.com/pathsala/pathsala/pkg/errcodes"
	"github.com/pathsala/pathsala/pkg/favorites"
	"github.com/pathsala/pathsala/pkg/genres"
	"github.com/pathsala/pathsala/pkg/publishers"
	"github.com/pathsala/pathsala/pkg/reading"
	"github.com/pathsala/pathsala/pkg/readingprogress"
	"github.com/pathsala/pathsala/pkg/reviews"
	"github.com/pathsala/pathsala/pkg/users"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/health"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
	"github.com/robinjoseph08/golib/echo/v4/middleware/recovery"
	"github.com/uptrace/bun"
)

func New(cfg *config.Config, db *bun.DB) (*http.Server, error) {
	e := echo.New()

	b, err := binder.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	e.Binder = b

	e.Use(logger.Middleware())
	e.Use(recovery.Middleware())
	e.Use(middleware.CORS())

	health.RegisterRoutes(e)

	authService := auth.NewService(db, cfg.JWTSecret)
	authMiddleware := auth.NewMiddleware(authService)

	users.RegisterRoutes(e, db, authService, authMiddleware)
	captains.RegisterRoutes(e, db, authService, authMiddleware)

	books.RegisterRoutes(e, db, authMiddleware)
	authors.RegisterRoutes(e, db, authMiddleware)
	genres.RegisterRoutes(e, db, authMiddleware)
	publishers.RegisterRoutes(e, db, authMiddleware)

	reviews.RegisterRoutes(e, db, authMiddleware)
	favorites.RegisterRoutes(e, db, authMiddleware)
	bookmarks.RegisterRoutes(e, db, authMiddleware)
	readingprogress.RegisterRoutes(e, db, authMiddleware)
	reading.RegisterRoutes(e, db, authMiddleware)
	bookusage.RegisterRoutes(e, db, authMiddleware)
	borrowing.RegisterRoutes(e, db, authMiddleware)

	echo.NotFoundHandler = notFoundHandler
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:           e,
		ReadHeaderTimeout: 3 * time.Second,
	}

	return srv, nil
}

func notFoundHandler(c echo.Context) error {
	c.SetPath("/:path")
	return errcodes.NotFound("Page")
}
