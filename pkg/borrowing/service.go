package borrowing

import (
	"context"
	"database/sql"
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

// BorrowBook opens a take-home loan for the reader. Loans track whole days,
// unlike the minute-tracked in-library usage records.
func (svc *Service) BorrowBook(ctx context.Context, userID, bookID int) (*models.Borrowing, error) {
	exists, err := svc.db.NewSelect().
		Model((*models.Book)(nil)).
		Where("id = ?", bookID).
		Exists(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if !exists {
		return nil, errcodes.NotFound("Book")
	}

	now := time.Now()
	loan := &models.Borrowing{
		CreatedAt:  now,
		UserID:     userID,
		BookID:     bookID,
		BorrowDate: now,
		Status:     models.UsageStatusActive,
	}
	_, err = svc.db.NewInsert().Model(loan).Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return loan, nil
}

// ReturnBook closes a loan. Only the borrowing reader may return it, and only
// once.
func (svc *Service) ReturnBook(ctx context.Context, borrowingID, userID int) (*models.Borrowing, error) {
	loan := &models.Borrowing{}
	err := svc.db.NewSelect().
		Model(loan).
		Where("bw.id = ?", borrowingID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errcodes.NotFound("Borrowing")
	} else if err != nil {
		return nil, errors.WithStack(err)
	}

	if loan.UserID != userID {
		return nil, errcodes.Forbidden("Returning another reader's loan")
	}
	if loan.Status == models.UsageStatusReturned {
		return nil, errcodes.AlreadyReturned()
	}

	now := time.Now()
	days := int(now.Sub(loan.BorrowDate).Hours() / 24)
	loan.ReturnDate = &now
	loan.DurationDays = &days
	loan.Status = models.UsageStatusReturned

	_, err = svc.db.NewUpdate().
		Model(loan).
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return loan, nil
}

func (svc *Service) listLoans(ctx context.Context, userID int, activeOnly bool) ([]*models.Borrowing, error) {
	loans := []*models.Borrowing{}
	q := svc.db.NewSelect().
		Model(&loans).
		ColumnExpr("bw.*").
		ColumnExpr("b.title AS book_title").
		ColumnExpr("a.name AS author_name").
		Join("JOIN books AS b ON b.id = bw.book_id").
		Join("LEFT JOIN authors AS a ON a.id = b.author_id").
		Where("bw.user_id = ?", userID).
		Order("bw.borrow_date DESC")

	if activeOnly {
		q = q.Where("bw.status = ?", models.UsageStatusActive)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, errors.WithStack(err)
	}
	return loans, nil
}

func (svc *Service) ListHistory(ctx context.Context, userID int) ([]*models.Borrowing, error) {
	return svc.listLoans(ctx, userID, false)
}

func (svc *Service) ListActive(ctx context.Context, userID int) ([]*models.Borrowing, error) {
	return svc.listLoans(ctx, userID, true)
}
