package reviews

import (
	"context"
	"database/sql"
	"time"

	"github.com/pathsala/pathsala/pkg/errcodes"
	"github.com/pathsala/pathsala/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type CreateReviewOptions struct {
	BookID  int
	UserID  int
	Rating  float64
	Comment *string
}

type UpdateReviewOptions struct {
	Rating  *float64
	Comment *string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

func (svc *Service) bookExists(ctx context.Context, bookID int) error {
	exists, err := svc.db.NewSelect().
		Model((*models.Book)(nil)).
		Where("id = ?", bookID).
		Exists(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if !exists {
		return errcodes.NotFound("Book")
	}
	return nil
}

// CreateReview rejects a second review for the same (book, reader) pair.
func (svc *Service) CreateReview(ctx context.Context, opts CreateReviewOptions) (*models.Review, error) {
	if err := svc.bookExists(ctx, opts.BookID); err != nil {
		return nil, err
	}

	exists, err := svc.db.NewSelect().
		Model((*models.Review)(nil)).
		Where("book_id = ?", opts.BookID).
		Where("user_id = ?", opts.UserID).
		Exists(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if exists {
		return nil, errcodes.DuplicateReview()
	}

	now := time.Now()
	review := &models.Review{
		CreatedAt: now,
		UpdatedAt: now,
		BookID:    opts.BookID,
		UserID:    opts.UserID,
		Rating:    opts.Rating,
		Comment:   opts.Comment,
	}

	_, err = svc.db.NewInsert().Model(review).Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return review, nil
}

// ListBookReviews returns a book's reviews, newest first, plus the average
// rating. The average is nil when the book has no reviews.
func (svc *Service) ListBookReviews(ctx context.Context, bookID int) ([]*models.Review, *float64, error) {
	if err := svc.bookExists(ctx, bookID); err != nil {
		return nil, nil, err
	}

	reviews := []*models.Review{}
	err := svc.db.NewSelect().
		Model(&reviews).
		ColumnExpr("r.*").
		ColumnExpr("u.name AS user_name").
		Join("JOIN users AS u ON u.id = r.user_id").
		Where("r.book_id = ?", bookID).
		Order("r.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	var average *float64
	err = svc.db.NewSelect().
		Model((*models.Review)(nil)).
		ColumnExpr("AVG(rating)").
		Where("book_id = ?", bookID).
		Scan(ctx, &average)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	return reviews, average, nil
}

// RetrieveUserReview returns the reader's review of a book, or nil when they
// have not reviewed it.
func (svc *Service) RetrieveUserReview(ctx context.Context, bookID, userID int) (*models.Review, error) {
	if err := svc.bookExists(ctx, bookID); err != nil {
		return nil, err
	}

	review := &models.Review{}
	err := svc.db.NewSelect().
		Model(review).
		Where("r.book_id = ?", bookID).
		Where("r.user_id = ?", userID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, errors.WithStack(err)
	}
	return review, nil
}

func (svc *Service) ListUserReviews(ctx context.Context, userID int) ([]*models.Review, error) {
	reviews := []*models.Review{}
	err := svc.db.NewSelect().
		Model(&reviews).
		ColumnExpr("r.*").
		ColumnExpr("b.title AS book_title").
		Join("JOIN books AS b ON b.id = r.book_id").
		Where("r.user_id = ?", userID).
		Order("r.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return reviews, nil
}

// retrieveOwned fetches a review and checks it belongs to the reader.
func (svc *Service) retrieveOwned(ctx context.Context, reviewID, userID int) (*models.Review, error) {
	review := &models.Review{}
	err := svc.db.NewSelect().
		Model(review).
		Where("r.id = ?", reviewID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errcodes.NotFound("Review")
	} else if err != nil {
		return nil, errors.WithStack(err)
	}
	if review.UserID != userID {
		return nil, errcodes.Forbidden("Modifying another reader's review")
	}
	return review, nil
}

func (svc *Service) UpdateReview(ctx context.Context, reviewID, userID int, opts UpdateReviewOptions) (*models.Review, error) {
	review, err := svc.retrieveOwned(ctx, reviewID, userID)
	if err != nil {
		return nil, err
	}

	if opts.Rating != nil {
		review.Rating = *opts.Rating
	}
	if opts.Comment != nil {
		review.Comment = opts.Comment
	}
	review.UpdatedAt = time.Now()

	_, err = svc.db.NewUpdate().
		Model(review).
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return review, nil
}

func (svc *Service) DeleteReview(ctx context.Context, reviewID, userID int) error {
	review, err := svc.retrieveOwned(ctx, reviewID, userID)
	if err != nil {
		return err
	}

	_, err = svc.db.NewDelete().
		Model(review).
		WherePK().
		Exec(ctx)
	return errors.WithStack(err)
}
