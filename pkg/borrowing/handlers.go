package borrowing

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pathsala/pathsala/pkg/auth"
	"github.com/pathsala/pathsala/pkg/errcodes"
	"github.com/pkg/errors"
)

type handler struct {
	borrowingService *Service
}

func (h *handler) borrow(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := auth.UserFromContext(c)

	params := BorrowBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	loan, err := h.borrowingService.BorrowBook(ctx, user.ID, params.BookID)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusCreated, map[string]any{
		"success":   true,
		"borrowing": loan,
	}))
}

func (h *handler) returnBook(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := auth.UserFromContext(c)
	borrowingID, err := strconv.Atoi(c.Param("borrowingId"))
	if err != nil {
		return errcodes.NotFound("Borrowing")
	}

	loan, err := h.borrowingService.ReturnBook(ctx, borrowingID, user.ID)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success":   true,
		"borrowing": loan,
	}))
}

func (h *handler) history(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := auth.UserFromContext(c)

	loans, err := h.borrowingService.ListHistory(ctx, user.ID)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success":    true,
		"borrowings": loans,
	}))
}

func (h *handler) active(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := auth.UserFromContext(c)

	loans, err := h.borrowingService.ListActive(ctx, user.ID)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success":    true,
		"borrowings": loans,
	}))
}
