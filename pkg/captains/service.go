package captains

import (
	"context"
	"database/sql"
	"time"

	"github.com/pathsala/pathsala/pkg/auth"
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

type CreateCaptainOptions struct {
	Name     string
	Email    string
	Password string
}

// Create registers a new captain. The email must not already be taken.
func (svc *Service) Create(ctx context.Context, opts CreateCaptainOptions) (*models.Captain, error) {
	exists, err := svc.db.NewSelect().
		Model((*models.Captain)(nil)).
		Where("email = ? COLLATE NOCASE", opts.Email).
		Exists(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if exists {
		return nil, errcodes.DuplicateResource("Email")
	}

	hash, err := auth.HashPassword(opts.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	captain := &models.Captain{
		CreatedAt:    now,
		UpdatedAt:    now,
		Name:         opts.Name,
		Email:        opts.Email,
		PasswordHash: hash,
		Status:       models.CaptainStatusActive,
	}

	_, err = svc.db.NewInsert().Model(captain).Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return captain, nil
}

// Authenticate checks captain credentials.
func (svc *Service) Authenticate(ctx context.Context, email, password string) (*models.Captain, error) {
	captain := &models.Captain{}
	err := svc.db.NewSelect().
		Model(captain).
		Where("cap.email = ? COLLATE NOCASE", email).
		Where("cap.status = ?", models.CaptainStatusActive).
		Scan(ctx)
	if err != nil {
		return nil, errcodes.Unauthorized("Invalid email or password")
	}

	if !auth.CheckPassword(password, captain.PasswordHash) {
		return nil, errcodes.Unauthorized("Invalid email or password")
	}

	return captain, nil
}

// Retrieve loads a captain by id.
func (svc *Service) Retrieve(ctx context.Context, id int) (*models.Captain, error) {
	captain := &models.Captain{}
	err := svc.db.NewSelect().
		Model(captain).
		Where("cap.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Captain")
		}
		return nil, errors.WithStack(err)
	}
	return captain, nil
}
