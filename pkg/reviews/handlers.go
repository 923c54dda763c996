package reviews

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pathsala/pathsala/pkg/auth"
	"github.com/pathsala/pathsala/pkg/errcodes"
	"github.com/pkg/errors"
)

type handler struct {
	reviewService *Service
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := auth.UserFromContext(c)

	params := CreateReviewPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	review, err := h.reviewService.CreateReview(ctx, CreateReviewOptions{
		BookID:  params.BookID,
		UserID:  user.ID,
		Rating:  params.Rating,
		Comment: params.Comment,
	})
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusCreated, map[string]any{
		"success": true,
		"review":  review,
	}))
}

func (h *handler) listForBook(c echo.Context) error {
	ctx := c.Request().Context()
	bookID, err := strconv.Atoi(c.Param("bookId"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	reviews, average, err := h.reviewService.ListBookReviews(ctx, bookID)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success":       true,
		"reviews":       reviews,
		"averageRating": average,
	}))
}

func (h *handler) myReview(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := auth.UserFromContext(c)
	bookID, err := strconv.Atoi(c.Param("bookId"))
	if err != nil {
		return errcodes.NotFound("Book")
	}

	review, err := h.reviewService.RetrieveUserReview(ctx, bookID, user.ID)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"review":  review,
	}))
}

func (h *handler) myReviews(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := auth.UserFromContext(c)

	reviews, err := h.reviewService.ListUserReviews(ctx, user.ID)
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"reviews": reviews,
	}))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := auth.UserFromContext(c)
	reviewID, err := strconv.Atoi(c.Param("reviewId"))
	if err != nil {
		return errcodes.NotFound("Review")
	}

	params := UpdateReviewPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	review, err := h.reviewService.UpdateReview(ctx, reviewID, user.ID, UpdateReviewOptions{
		Rating:  params.Rating,
		Comment: params.Comment,
	})
	if err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"review":  review,
	}))
}

func (h *handler) delete(c echo.Context) error {
	ctx := c.Request().Context()
	user, _ := auth.UserFromContext(c)
	reviewID, err := strconv.Atoi(c.Param("reviewId"))
	if err != nil {
		return errcodes.NotFound("Review")
	}

	if err := h.reviewService.DeleteReview(ctx, reviewID, user.ID); err != nil {
		return err
	}

	return errors.WithStack(c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Review deleted successfully",
	}))
}
