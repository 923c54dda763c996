package readingprogress

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pathsala/pathsala/pkg/auth"
	"github.com/pathsala/pathsala/pkg/errcodes"
	"github.com/pathsala/pathsala/pkg/models"
	"github.com/pkg/errors"
)

type handler struct {
	progressService *Service
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := auth.UserFromContext(c)

	params := UpdateProgressPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	progress, err := h.progressService.UpdateProgress(ctx, user.ID, UpdateProgressOptions{
		BookID:      params.BookID,
		CurrentPage: params.CurrentPage,
		IsFinished:  params.IsFinished,
	})
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"progress": progress,
	}))
}

func (h *handler) finish(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := auth.UserFromContext(c)
	bookID, err := strconv.Atoi(c.Param("bookId"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	progress, err := h.progressService.MarkFinished(ctx, user.ID, bookID)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"progress": progress,
	}))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := auth.UserFromContext(c)
	bookID, err := strconv.Atoi(c.Param("bookId"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	progress, err := h.progressService.RetrieveProgress(ctx, user.ID, bookID)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"progress": progress,
	}))
}

func (h *handler) list(c echo.Context) error {
	return h.respondList(c, h.progressService.ListProgress)
}

func (h *handler) listFinished(c echo.Context) error {
	return h.respondList(c, h.progressService.ListFinished)
}

func (h *handler) listInProgress(c echo.Context) error {
	return h.respondList(c, h.progressService.ListInProgress)
}

func (h *handler) respondList(c echo.Context, list func(ctx context.Context, userID int) ([]*models.ReadingProgress, error)) error {
	ctx := c.Request().Context()
	user, _ := auth.UserFromContext(c)

	rows, err := list(ctx, user.ID)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success":  true,
		"progress": rows,
	}))
}
