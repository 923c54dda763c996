package readingprogress

import (
	"context"
	"database/sql"
	"time"

	"github.com/pathsala/pathsala/pkg/errcodes"
	"github.com/pathsala/pathsala/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type UpdateProgressOptions struct {
	BookID      int
	CurrentPage *int
	IsFinished  *bool
}

// listFilter narrows ListProgress to a finished state.
type listFilter int

const (
	filterAll listFilter = iota
	filterFinished
	filterInProgress
)

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

// UpdateProgress upserts the reader's position in a book. Finishing stamps
// finished_at; marking the book unfinished again clears the stamp so the row
// always reflects the current state.
func (svc *Service) UpdateProgress(ctx context.Context, userID int, opts UpdateProgressOptions) (*models.ReadingProgress, error) {
	if err := svc.bookExists(ctx, opts.BookID); err != nil {
		return nil, err
	}

	now := time.Now()
	progress := &models.ReadingProgress{}
	err := svc.db.NewSelect().
		Model(progress).
		Where("rp.user_id = ?", userID).
		Where("rp.book_id = ?", opts.BookID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		progress = &models.ReadingProgress{
			UserID: userID,
			BookID: opts.BookID,
		}
	} else if err != nil {
		return nil, errors.WithStack(err)
	}

	if opts.CurrentPage != nil {
		progress.CurrentPage = opts.CurrentPage
	}
	if opts.IsFinished != nil {
		progress.IsFinished = *opts.IsFinished
		if *opts.IsFinished {
			if progress.FinishedAt == nil {
				progress.FinishedAt = &now
			}
		} else {
			progress.FinishedAt = nil
		}
	}
	progress.LastReadAt = now

	if progress.ID == 0 {
		_, err = svc.db.NewInsert().Model(progress).Exec(ctx)
	} else {
		_, err = svc.db.NewUpdate().Model(progress).WherePK().Exec(ctx)
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return progress, nil
}

// MarkFinished is UpdateProgress sugar: the page stays untouched.
func (svc *Service) MarkFinished(ctx context.Context, userID, bookID int) (*models.ReadingProgress, error) {
	finished := true
	return svc.UpdateProgress(ctx, userID, UpdateProgressOptions{
		BookID:     bookID,
		IsFinished: &finished,
	})
}

// RetrieveProgress returns the reader's progress in a book, or nil when they
// have not started it.
func (svc *Service) RetrieveProgress(ctx context.Context, userID, bookID int) (*models.ReadingProgress, error) {
	if err := svc.bookExists(ctx, bookID); err != nil {
		return nil, err
	}

	progress := &models.ReadingProgress{}
	err := svc.joinedQuery(progress).
		Where("rp.user_id = ?", userID).
		Where("rp.book_id = ?", bookID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, errors.WithStack(err)
	}
	return progress, nil
}

func (svc *Service) joinedQuery(model any) *bun.SelectQuery {
	return svc.db.NewSelect().
		Model(model).
		ColumnExpr("rp.*").
		ColumnExpr("b.title AS book_title").
		ColumnExpr("a.name AS author_name").
		ColumnExpr("g.name AS genre_name").
		Join("JOIN books AS b ON b.id = rp.book_id").
		Join("LEFT JOIN authors AS a ON a.id = b.author_id").
		Join("LEFT JOIN genres AS g ON g.id = b.genre_id")
}

func (svc *Service) listProgress(ctx context.Context, userID int, filter listFilter) ([]*models.ReadingProgress, error) {
	rows := []*models.ReadingProgress{}
	q := svc.joinedQuery(&rows).
		Where("rp.user_id = ?", userID).
		Order("rp.last_read_at DESC")

	switch filter {
	case filterFinished:
		q = q.Where("rp.is_finished")
	case filterInProgress:
		q = q.Where("NOT rp.is_finished")
	case filterAll:
	}

	if err := q.Scan(ctx); err != nil {
		return nil, errors.WithStack(err)
	}
	return rows, nil
}

func (svc *Service) ListProgress(ctx context.Context, userID int) ([]*models.ReadingProgress, error) {
	return svc.listProgress(ctx, userID, filterAll)
}

func (svc *Service) ListFinished(ctx context.Context, userID int) ([]*models.ReadingProgress, error) {
	return svc.listProgress(ctx, userID, filterFinished)
}

func (svc *Service) ListInProgress(ctx context.Context, userID int) ([]*models.ReadingProgress, error) {
	return svc.listProgress(ctx, userID, filterInProgress)
}
