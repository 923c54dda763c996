package bookusage

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pathsala/pathsala/pkg/auth"
	"github.com/pathsala/pathsala/pkg/errcodes"
	"github.com/pkg/errors"
)

type handler struct {
	usageService *Service
}

func (h *handler) issue(c echo.Context) error {
	ctx := c.Request().Context()
	captain, _ := auth.CaptainFromContext(c)

	params := IssueBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	usage, err := h.usageService.IssueBook(ctx, IssueBookOptions{
		BookID:    params.BookID,
		UserID:    params.UserID,
		CaptainID: captain.ID,
	})
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"usage":   usage,
	}))
}

func (h *handler) returnBook(c echo.Context) error {
	ctx := c.Request().Context()
	captain, _ := auth.CaptainFromContext(c)
	usageID, err := strconv.Atoi(c.Param("usageId"))
	if err != nil {
		return errcodes.NotFound("Usage record")
	}

	usage, err := h.usageService.ReturnBook(ctx, usageID, captain.ID)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"usage":   usage,
	}))
}

func (h *handler) myActive(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := auth.UserFromContext(c)

	usages, err := h.usageService.ListUsages(ctx, ListUsagesOptions{
		UserID:     &user.ID,
		ActiveOnly: true,
	})
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"usages":  usages,
	}))
}

func (h *handler) myHistory(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := auth.UserFromContext(c)

	usages, err := h.usageService.ListUsages(ctx, ListUsagesOptions{
		UserID: &user.ID,
	})
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"usages":  usages,
	}))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	usageID, err := strconv.Atoi(c.Param("usageId"))
	if err != nil {
		return errcodes.NotFound("Usage record")
	}

	usage, err := h.usageService.RetrieveUsage(ctx, usageID)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"usage":   usage,
	}))
}

func (h *handler) listForReader(c echo.Context) error {
	ctx := c.Request().Context()
	readerID, err := strconv.Atoi(c.Param("readerId"))
	if err != nil {
		return errcodes.NotFound("User")
	}

	usages, err := h.usageService.ListUsages(ctx, ListUsagesOptions{
		UserID: &readerID,
	})
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"usages":  usages,
	}))
}

func (h *handler) listForBook(c echo.Context) error {
	ctx := c.Request().Context()
	bookID, err := strconv.Atoi(c.Param("bookId"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	usages, err := h.usageService.ListUsages(ctx, ListUsagesOptions{
		BookID: &bookID,
	})
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"usages":  usages,
	}))
}
