package auth

import (
	"context"
	"testing"

	"github.com/pathsala/pathsala/pkg/errcodes"
	"github.com/pathsala/pathsala/pkg/models"
	"github.com/pathsala/pathsala/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	svc := NewService(db, "test-secret")
	ctx := context.Background()

	token, err := svc.GenerateToken(42, SubjectReader)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.SubjectID)
	assert.Equal(t, SubjectReader, claims.SubjectKind)
	assert.NotEmpty(t, claims.ID)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	ctx := context.Background()

	token, err := NewService(db, "secret-a").GenerateToken(1, SubjectReader)
	require.NoError(t, err)

	_, err = NewService(db, "secret-b").ValidateToken(ctx, token)
	require.Error(t, err)
	assert.ErrorIs(t, err, errcodes.Unauthorized("Invalid or expired token"))
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	svc := NewService(db, "test-secret")

	_, err := svc.ValidateToken(context.Background(), "not-a-token")
	assert.Error(t, err)
}

func TestRevokeToken(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	svc := NewService(db, "test-secret")
	ctx := context.Background()

	token, err := svc.GenerateToken(7, SubjectCaptain)
	require.NoError(t, err)

	_, err = svc.ValidateToken(ctx, token)
	require.NoError(t, err)

	require.NoError(t, svc.RevokeToken(ctx, token))

	_, err = svc.ValidateToken(ctx, token)
	require.Error(t, err)
	assert.ErrorIs(t, err, errcodes.Unauthorized("Token has been revoked"))

	// Revoking again is a no-op, not an error.
	require.NoError(t, svc.RevokeToken(ctx, token))

	count, err := db.NewSelect().
		Model((*models.BlacklistToken)(nil)).
		Where("token = ?", token).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGetUserByIDOnlyReturnsActive(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	svc := NewService(db, "test-secret")
	ctx := context.Background()

	user := testutils.CreateUser(t, db, "reader@example.com")

	got, err := svc.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = db.NewUpdate().
		Model((*models.User)(nil)).
		Set("status = ?", "disabled").
		Where("id = ?", user.ID).
		Exec(ctx)
	require.NoError(t, err)

	_, err = svc.GetUserByID(ctx, user.ID)
	assert.Error(t, err)
}

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.True(t, CheckPassword("secret1", hash))
	assert.False(t, CheckPassword("secret2", hash))
}
