package genres

import (
	"context"
	"database/sql"
	"time"

	"github.com/pathsala/pathsala/pkg/errcodes"
	"github.com/pathsala/pathsala/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type CreateGenreOptions struct {
	Name string
}

type UpdateGenreOptions struct {
	Name *string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

func (svc *Service) CreateGenre(ctx context.Context, opts CreateGenreOptions) (*models.Genre, error) {
	exists, err := svc.db.NewSelect().
		Model((*models.Genre)(nil)).
		Where("name = ? COLLATE NOCASE", opts.Name).
		Exists(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if exists {
		return nil, errcodes.DuplicateResource("Genre")
	}

	now := time.Now()
	genre := &models.Genre{
		CreatedAt: now,
		UpdatedAt: now,
		Name:      opts.Name,
	}

	_, err = svc.db.NewInsert().Model(genre).Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return genre, nil
}

func (svc *Service) ListGenres(ctx context.Context) ([]*models.Genre, error) {
	genres := []*models.Genre{}
	err := svc.db.NewSelect().
		Model(&genres).
		ColumnExpr("g.*").
		ColumnExpr("COUNT(b.id) AS book_count").
		Join("LEFT JOIN books AS b ON b.genre_id = g.id").
		GroupExpr("g.id").
		Order("g.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return genres, nil
}

func (svc *Service) RetrieveGenre(ctx context.Context, id int) (*models.Genre, error) {
	genre := &models.Genre{}
	err := svc.db.NewSelect().
		Model(genre).
		ColumnExpr("g.*").
		ColumnExpr("COUNT(b.id) AS book_count").
		Join("LEFT JOIN books AS b ON b.genre_id = g.id").
		GroupExpr("g.id").
		Where("g.id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errcodes.NotFound("Genre")
	} else if err != nil {
		return nil, errors.WithStack(err)
	}
	return genre, nil
}

func (svc *Service) UpdateGenre(ctx context.Context, id int, opts UpdateGenreOptions) (*models.Genre, error) {
	genre, err := svc.RetrieveGenre(ctx, id)
	if err != nil {
		return nil, err
	}

	if opts.Name != nil {
		genre.Name = *opts.Name
	}
	genre.UpdatedAt = time.Now()

	_, err = svc.db.NewUpdate().
		Model(genre).
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return genre, nil
}

func (svc *Service) DeleteGenre(ctx context.Context, id int) error {
	res, err := svc.db.NewDelete().
		Model((*models.Genre)(nil)).
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
		return errcodes.NotFound("Genre")
	}
	return nil
}
