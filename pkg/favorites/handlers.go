package favorites

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pathsala/pathsala/pkg/auth"
	"github.com/pathsala/pathsala/pkg/errcodes"
	"github.com/pkg/errors"
)

type handler struct {
	favoriteService *Service
}

func (h *handler) add(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := auth.UserFromContext(c)

	params := BookRefPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	if err := h.favoriteService.Add(ctx, user.ID, params.BookID); err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Book added to favorites",
	}))
}

func (h *handler) remove(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := auth.UserFromContext(c)

	params := BookRefPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	if err := h.favoriteService.Remove(ctx, user.ID, params.BookID); err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Book removed from favorites",
	}))
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := auth.UserFromContext(c)

	books, err := h.favoriteService.ListBooks(ctx, user.ID)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"books":   books,
	}))
}

func (h *handler) check(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := auth.UserFromContext(c)
	bookID, err := strconv.Atoi(c.Param("bookId"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	contains, err := h.favoriteService.Contains(ctx, user.ID, bookID)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success":    true,
		"isFavorite": contains,
	}))
}
