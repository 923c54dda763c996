package publishers

import (
	"context"
	"database/sql"
	"time"

	"github.com/pathsala/pathsala/pkg/errcodes"
	"github.com/pathsala/pathsala/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type CreatePublisherOptions struct {
	Name    string
	Country *string
}

type UpdatePublisherOptions struct {
	Name    *string
	Country *string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

func (svc *Service) CreatePublisher(ctx context.Context, opts CreatePublisherOptions) (*models.Publisher, error) {
	exists, err := svc.db.NewSelect().
		Model((*models.Publisher)(nil)).
		Where("name = ? COLLATE NOCASE", opts.Name).
		Exists(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if exists {
		return nil, errcodes.DuplicateResource("Publisher")
	}

	now := time.Now()
	publisher := &models.Publisher{
		CreatedAt: now,
		UpdatedAt: now,
		Name:      opts.Name,
		Country:   opts.Country,
	}

	_, err = svc.db.NewInsert().Model(publisher).Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return publisher, nil
}

func (svc *Service) ListPublishers(ctx context.Context) ([]*models.Publisher, error) {
	publishers := []*models.Publisher{}
	err := svc.db.NewSelect().
		Model(&publishers).
		ColumnExpr("p.*").
		ColumnExpr("COUNT(b.id) AS book_count").
		Join("LEFT JOIN books AS b ON b.publisher_id = p.id").
		GroupExpr("p.id").
		Order("p.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return publishers, nil
}

func (svc *Service) RetrievePublisher(ctx context.Context, id int) (*models.Publisher, error) {
	publisher := &models.Publisher{}
	err := svc.db.NewSelect().
		Model(publisher).
		ColumnExpr("p.*").
		ColumnExpr("COUNT(b.id) AS book_count").
		Join("LEFT JOIN books AS b ON b.publisher_id = p.id").
		GroupExpr("p.id").
		Where("p.id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errcodes.NotFound("Publisher")
	} else if err != nil {
		return nil, errors.WithStack(err)
	}
	return publisher, nil
}

func (svc *Service) UpdatePublisher(ctx context.Context, id int, opts UpdatePublisherOptions) (*models.Publisher, error) {
	publisher, err := svc.RetrievePublisher(ctx, id)
	if err != nil {
		return nil, err
	}

	if opts.Name != nil {
		publisher.Name = *opts.Name
	}
	if opts.Country != nil {
		publisher.Country = opts.Country
	}
	publisher.UpdatedAt = time.Now()

	_, err = svc.db.NewUpdate().
		Model(publisher).
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return publisher, nil
}

func (svc *Service) DeletePublisher(ctx context.Context, id int) error {
	res, err := svc.db.NewDelete().
		Model((*models.Publisher)(nil)).
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
		return errcodes.NotFound("Publisher")
	}
	return nil
}
