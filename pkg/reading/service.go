package reading

import (
	"context"
	"database/sql"
	"time"

	"github.com/pathsala/pathsala/pkg/errcodes"
	"github.com/pathsala/pathsala/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

// Stats summarizes a reader's tracked reading.
type Stats struct {
	BooksRead    int `json:"booksRead"`
	MinutesSpent int `json:"minutesSpent"`
	HoursSpent   int `json:"hoursSpent"`
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// RecordTime adds a reading session: the reader's minute counter and the
// read-book membership move together in one transaction.
func (svc *Service) RecordTime(ctx context.Context, userID, bookID, minutes int) error {
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

	err = svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewUpdate().
			Model((*models.User)(nil)).
			Set("time_spent_minutes = time_spent_minutes + ?", minutes).
			Set("updated_at = ?", time.Now()).
			Where("id = ?", userID).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		readBook := &models.ReadBook{
			CreatedAt: time.Now(),
			UserID:    userID,
			BookID:    bookID,
		}
		_, err = tx.NewInsert().
			Model(readBook).
			On("CONFLICT (user_id, book_id) DO NOTHING").
			Exec(ctx)
		return errors.WithStack(err)
	})
	return err
}

func (svc *Service) RetrieveStats(ctx context.Context, userID int) (*Stats, error) {
	user := &models.User{}
	err := svc.db.NewSelect().
		Model(user).
		Where("u.id = ?", userID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errcodes.NotFound("User")
	} else if err != nil {
		return nil, errors.WithStack(err)
	}

	booksRead, err := svc.db.NewSelect().
		Model((*models.ReadBook)(nil)).
		Where("user_id = ?", userID).
		Count(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &Stats{
		BooksRead:    booksRead,
		MinutesSpent: user.TimeSpentMinutes,
		HoursSpent:   user.TimeSpentMinutes / 60,
	}, nil
}

// ListReadBooks returns the reader's read books, most recent first. A zero
// limit means no cap.
func (svc *Service) ListReadBooks(ctx context.Context, userID, limit int) ([]*models.Book, error) {
	books := []*models.Book{}
	q := svc.db.NewSelect().
		Model(&books).
		ColumnExpr("b.*").
		ColumnExpr("a.name AS author_name").
		ColumnExpr("g.name AS genre_name").
		Join("JOIN read_books AS rb ON rb.book_id = b.id").
		Join("LEFT JOIN authors AS a ON a.id = b.author_id").
		Join("LEFT JOIN genres AS g ON g.id = b.genre_id").
		Where("rb.user_id = ?", userID).
		OrderExpr("rb.created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, errors.WithStack(err)
	}
	return books, nil
}
