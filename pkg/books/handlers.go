package books

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pathsala/pathsala/pkg/auth"
	"github.com/pathsala/pathsala/pkg/errcodes"
	"github.com/pathsala/pathsala/pkg/models"
	"github.com/pkg/errors"
)

type handler struct {
	bookService *Service
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()
	captain, _ := auth.CaptainFromContext(c)

	params := CreateBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	book, err := h.bookService.CreateBook(ctx, CreateBookOptions{
		Title:           params.Title,
		ISBN:            params.ISBN,
		PublicationYear: params.PublicationYear,
		BookURL:         params.BookURL,
		AuthorID:        params.AuthorID,
		GenreID:         params.GenreID,
		PublisherID:     params.PublisherID,
		CaptainID:       captain.ID,
	})
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"book":    book,
	}))
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	params := ListBooksQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	books, total, err := h.bookService.ListBooks(ctx, ListBooksOptions{
		Page:     params.Page,
		Limit:    params.Limit,
		Title:    params.Title,
		AuthorID: params.AuthorID,
		GenreID:  params.GenreID,
		Search:   params.Search,
	})
	if err != nil {
		return err
	}

	pages := (total + params.Limit - 1) / params.Limit

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"books":   books,
		"pagination": map[string]any{
			"page":  params.Page,
			"limit": params.Limit,
			"total": total,
			"pages": pages,
		},
	}))
}

func (h *handler) popular(c echo.Context) error {
	ctx := c.Request().Context()

	params := PopularBooksQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	books, err := h.bookService.PopularBooks(ctx, params.Limit)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"books":   books,
	}))
}

func (h *handler) suggestions(c echo.Context) error {
	ctx := c.Request().Context()

	params := SuggestionsQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	query := strings.TrimSpace(params.Query)
	if query == "" {
		return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
			"success":     true,
			"suggestions": []*models.Book{},
		}))
	}

	books, err := h.bookService.SuggestBooks(ctx, query, params.Limit)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success":     true,
		"suggestions": books,
	}))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("bookId"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	book, err := h.bookService.RetrieveBook(ctx, id)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"book":    book,
	}))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("bookId"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	params := UpdateBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	book, err := h.bookService.UpdateBook(ctx, id, UpdateBookOptions{
		Title:           params.Title,
		ISBN:            params.ISBN,
		PublicationYear: params.PublicationYear,
		BookURL:         params.BookURL,
		AuthorID:        params.AuthorID,
		GenreID:         params.GenreID,
		PublisherID:     params.PublisherID,
	})
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"book":    book,
	}))
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.Atoi(c.Param("bookId"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	if err := h.bookService.DeleteBook(ctx, id); err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Book deleted successfully",
	}))
}
