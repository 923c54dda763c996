package authors

import (
	"context"
	"database/sql"
	"time"

	"github.com/pathsala/pathsala/pkg/errcodes"
	"github.com/pathsala/pathsala/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type CreateAuthorOptions struct {
	Name string
}

type UpdateAuthorOptions struct {
	Name *string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

func (svc *Service) CreateAuthor(ctx context.Context, opts CreateAuthorOptions) (*models.Author, error) {
	exists, err := svc.db.NewSelect().
		Model((*models.Author)(nil)).
		Where("name = ? COLLATE NOCASE", opts.Name).
		Exists(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if exists {
		return nil, errcodes.DuplicateResource("Author")
	}

	now := time.Now()
	author := &models.Author{
		CreatedAt: now,
		UpdatedAt: now,
		Name:      opts.Name,
	}

	_, err = svc.db.NewInsert().Model(author).Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return author, nil
}

func (svc *Service) ListAuthors(ctx context.Context) ([]*models.Author, error) {
	authors := []*models.Author{}
	err := svc.db.NewSelect().
		Model(&authors).
		ColumnExpr("a.*").
		ColumnExpr("COUNT(b.id) AS book_count").
		Join("LEFT JOIN books AS b ON b.author_id = a.id").
		GroupExpr("a.id").
		Order("a.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return authors, nil
}

func (svc *Service) RetrieveAuthor(ctx context.Context, id int) (*models.Author, error) {
	author := &models.Author{}
	err := svc.db.NewSelect().
		Model(author).
		ColumnExpr("a.*").
		ColumnExpr("COUNT(b.id) AS book_count").
		Join("LEFT JOIN books AS b ON b.author_id = a.id").
		GroupExpr("a.id").
		Where("a.id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errcodes.NotFound("Author")
	} else if err != nil {
		return nil, errors.WithStack(err)
	}
	return author, nil
}

func (svc *Service) UpdateAuthor(ctx context.Context, id int, opts UpdateAuthorOptions) (*models.Author, error) {
	author, err := svc.RetrieveAuthor(ctx, id)
	if err != nil {
		return nil, err
	}

	if opts.Name != nil {
		author.Name = *opts.Name
	}
	author.UpdatedAt = time.Now()

	_, err = svc.db.NewUpdate().
		Model(author).
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return author, nil
}

func (svc *Service) DeleteAuthor(ctx context.Context, id int) error {
	res, err := svc.db.NewDelete().
		Model((*models.Author)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return errors.WithStack(err)
	}
	if rows == 0 {
		return errcodes.NotFound("Author")
	}
	return nil
}
