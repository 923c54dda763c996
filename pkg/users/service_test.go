package users

import (
	"context"
	"testing"

	"github.com/pathsala/pathsala/pkg/errcodes"
	"github.com/pathsala/pathsala/pkg/models"
	"github.com/pathsala/pathsala/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	user, err := svc.Create(ctx, CreateUserOptions{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, models.UserStatusActive, user.Status)
	assert.NotEqual(t, "secret1", user.PasswordHash)
}

func TestServiceCreateDuplicateEmail(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateUserOptions{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	// Same email with different case is still a duplicate.
	_, err = svc.Create(ctx, CreateUserOptions{
		Name:     "Other Alice",
		Email:    "Alice@Example.com",
		Password: "secret2",
	})
	assert.ErrorIs(t, err, errcodes.DuplicateResource("Email"))
}

func TestServiceAuthenticate(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateUserOptions{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	user, err := svc.Authenticate(ctx, "alice@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = svc.Authenticate(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, errcodes.Unauthorized("Invalid email or password"))

	_, err = svc.Authenticate(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, errcodes.Unauthorized("Invalid email or password"))
}

func TestServiceRetrieve(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	user := testutils.CreateUser(t, db, "alice@example.com")

	got, err := svc.Retrieve(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)

	_, err = svc.Retrieve(ctx, 9999)
	assert.ErrorIs(t, err, errcodes.NotFound("User"))
}
