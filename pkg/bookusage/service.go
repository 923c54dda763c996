package bookusage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pathsala/pathsala/pkg/errcodes"
	"github.com/pathsala/pathsala/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type IssueBookOptions struct {
	BookID    int
	UserID    int
	CaptainID int
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// IssueBook opens an active usage record for in-library reading and appends
// an audit row. The audit write is fire-and-forget relative to the usage row:
// a crash in between loses the audit entry, not the usage.
func (svc *Service) IssueBook(ctx context.Context, opts IssueBookOptions) (*models.BookUsage, error) {
	bookExists, err := svc.db.NewSelect().
		Model((*models.Book)(nil)).
		Where("id = ?", opts.BookID).
		Exists(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if !bookExists {
		return nil, errcodes.NotFound("Book")
	}

	userExists, err := svc.db.NewSelect().
		Model((*models.User)(nil)).
		Where("id = ?", opts.UserID).
		Exists(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if !userExists {
		return nil, errcodes.NotFound("User")
	}

	now := time.Now()
	usage := &models.BookUsage{
		CreatedAt: now,
		UserID:    opts.UserID,
		BookID:    opts.BookID,
		CaptainID: opts.CaptainID,
		IssueDate: now,
		Status:    models.UsageStatusActive,
	}
	_, err = svc.db.NewInsert().Model(usage).Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := svc.appendAudit(ctx, opts.UserID, opts.CaptainID, models.ActionBookIssued, fmt.Sprintf("Issued book %d (usage %d)", opts.BookID, usage.ID)); err != nil {
		return nil, err
	}

	return usage, nil
}

// ReturnBook closes an active usage. The transition is one-way; returning an
// already returned record is a business error.
func (svc *Service) ReturnBook(ctx context.Context, usageID, captainID int) (*models.BookUsage, error) {
	usage := &models.BookUsage{}
	err := svc.db.NewSelect().
		Model(usage).
		Where("bu.id = ?", usageID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errcodes.NotFound("Usage record")
	} else if err != nil {
		return nil, errors.WithStack(err)
	}

	if usage.Status == models.UsageStatusReturned {
		return nil, errcodes.AlreadyReturned()
	}

	now := time.Now()
	minutes := int(now.Sub(usage.IssueDate).Minutes())
	usage.ReturnDate = &now
	usage.DurationMinutes = &minutes
	usage.Status = models.UsageStatusReturned

	_, err = svc.db.NewUpdate().
		Model(usage).
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := svc.appendAudit(ctx, usage.UserID, captainID, models.ActionBookReturned, fmt.Sprintf("Returned book %d (usage %d)", usage.BookID, usage.ID)); err != nil {
		return nil, err
	}

	return usage, nil
}

func (svc *Service) appendAudit(ctx context.Context, userID, captainID int, actionType, notes string) error {
	action := &models.AdminAction{
		CreatedAt:  time.Now(),
		UserID:     userID,
		CaptainID:  captainID,
		ActionType: actionType,
		Notes:      notes,
	}
	_, err := svc.db.NewInsert().Model(action).Exec(ctx)
	return errors.WithStack(err)
}

func (svc *Service) joinedQuery(model any) *bun.SelectQuery {
	return svc.db.NewSelect().
		Model(model).
		ColumnExpr("bu.*").
		ColumnExpr("b.title AS book_title").
		ColumnExpr("u.name AS user_name").
		Join("JOIN books AS b ON b.id = bu.book_id").
		Join("JOIN users AS u ON u.id = bu.user_id")
}

func (svc *Service) RetrieveUsage(ctx context.Context, usageID int) (*models.BookUsage, error) {
	usage := &models.BookUsage{}
	err := svc.joinedQuery(usage).
		Where("bu.id = ?", usageID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errcodes.NotFound("Usage record")
	} else if err != nil {
		return nil, errors.WithStack(err)
	}
	return usage, nil
}

type ListUsagesOptions struct {
	UserID     *int
	BookID     *int
	ActiveOnly bool
}

func (svc *Service) ListUsages(ctx context.Context, opts ListUsagesOptions) ([]*models.BookUsage, error) {
	usages := []*models.BookUsage{}
	q := svc.joinedQuery(&usages).
		Order("bu.issue_date DESC")

	if opts.UserID != nil {
		q = q.Where("bu.user_id = ?", *opts.UserID)
	}
	if opts.BookID != nil {
		q = q.Where("bu.book_id = ?", *opts.BookID)
	}
	if opts.ActiveOnly {
		q = q.Where("bu.status = ?", models.UsageStatusActive)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, errors.WithStack(err)
	}
	return usages, nil
}
