package users

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

type CreateUserOptions struct {
	Name     string
	Email    string
	Password string
}

// Create registers a new reader. The email must not already be taken.
func (svc *Service) Create(ctx context.Context, opts CreateUserOptions) (*models.User, error) {
	exists, err := svc.db.NewSelect().
		Model((*models.User)(nil)).
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
	user := &models.User{
		CreatedAt:    now,
		UpdatedAt:    now,
		Name:         opts.Name,
		Email:        opts.Email,
		PasswordHash: hash,
		Status:       models.UserStatusActive,
	}

	_, err = svc.db.NewInsert().Model(user).Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

// Authenticate checks reader credentials. The same error is returned for an
// unknown email and a wrong password.
func (svc *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user := &models.User{}
	err := svc.db.NewSelect().
		Model(user).
		Where("u.email = ? COLLATE NOCASE", email).
		Where("u.status = ?", models.UserStatusActive).
		Scan(ctx)
	if err != nil {
		return nil, errcodes.Unauthorized("Invalid email or password")
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, errcodes.Unauthorized("Invalid email or password")
	}

	return user, nil
}

// Retrieve loads a reader by id.
func (svc *Service) Retrieve(ctx context.Context, id int) (*models.User, error) {
	user := &models.User{}
	err := svc.db.NewSelect().
		Model(user).
		Where("u.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("User")
		}
		return nil, errors.WithStack(err)
	}
	return user, nil
}
