package reading

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pathsala/pathsala/pkg/auth"
	"github.com/pkg/errors"
)

const recentReadBooks = 5

type handler struct {
	readingService *Service
}

func (h *handler) updateTime(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := auth.UserFromContext(c)

	params := UpdateTimePayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	if err := h.readingService.RecordTime(ctx, user.ID, params.BookID, params.TimeSpentMinutes); err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Reading time recorded",
	}))
}

func (h *handler) stats(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := auth.UserFromContext(c)

	stats, err := h.readingService.RetrieveStats(ctx, user.ID)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"stats":   stats,
	}))
}

func (h *handler) readBooks(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := auth.UserFromContext(c)

	books, err := h.readingService.ListReadBooks(ctx, user.ID, 0)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"books":   books,
	}))
}

func (h *handler) profile(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := auth.UserFromContext(c)

	stats, err := h.readingService.RetrieveStats(ctx, user.ID)
	if err != nil {
		return err
	}
	recent, err := h.readingService.ListReadBooks(ctx, user.ID, recentReadBooks)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success":     true,
		"user":        user,
		"stats":       stats,
		"recentBooks": recent,
	}))
}
