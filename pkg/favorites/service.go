package favorites

import (
	"context"
	"time"

	"github.com/pathsala/pathsala/pkg/errcodes"
	"github.com/pathsala/pathsala/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// Add records the book for the reader. Adding a book twice is a no-op
// success; the unique index absorbs the conflict.
func (svc *Service) Add(ctx context.Context, userID, bookID int) error {
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

	favorite := &models.Favorite{
		CreatedAt: time.Now(),
		UserID:    userID,
		BookID:    bookID,
	}
	_, err = svc.db.NewInsert().
		Model(favorite).
		On("CONFLICT (user_id, book_id) DO NOTHING").
		Exec(ctx)
	return errors.WithStack(err)
}

func (svc *Service) Remove(ctx context.Context, userID, bookID int) error {
	res, err := svc.db.NewDelete().
		Model((*models.Favorite)(nil)).
		Where("user_id = ?", userID).
		Where("book_id = ?", bookID).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return errors.WithStack(err)
	}
	if rows == 0 {
		return errcodes.NotFound("Favorite")
	}
	return nil
}

// ListBooks returns the reader's favorited books, most recently added first.
func (svc *Service) ListBooks(ctx context.Context, userID int) ([]*models.Book, error) {
	books := []*models.Book{}
	err := svc.db.NewSelect().
		Model(&books).
		ColumnExpr("b.*").
		ColumnExpr("a.name AS author_name").
		ColumnExpr("g.name AS genre_name").
		Join("JOIN favorites AS f ON f.book_id = b.id").
		Join("LEFT JOIN authors AS a ON a.id = b.author_id").
		Join("LEFT JOIN genres AS g ON g.id = b.genre_id").
		Where("f.user_id = ?", userID).
		OrderExpr("f.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return books, nil
}

func (svc *Service) Contains(ctx context.Context, userID, bookID int) (bool, error) {
	exists, err := svc.db.NewSelect().
		Model((*models.Favorite)(nil)).
		Where("user_id = ?", userID).
		Where("book_id = ?", bookID).
		Exists(ctx)
	return exists, errors.WithStack(err)
}
