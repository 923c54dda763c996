package authors

import (
	"context"
	"testing"

	"github.com/pathsala/pathsala/pkg/errcodes"
	"github.com/pathsala/pathsala/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorLifecycle(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	author, err := svc.CreateAuthor(ctx, CreateAuthorOptions{Name: "Rabindranath Tagore"})
	require.NoError(t, err)

	_, err = svc.CreateAuthor(ctx, CreateAuthorOptions{Name: "rabindranath tagore"})
	assert.ErrorIs(t, err, errcodes.DuplicateResource("Author"))

	captain := testutils.CreateCaptain(t, db, "captain@example.com")
	testutils.CreateBook(t, db, captain.ID, "Gitanjali", "111", testutils.BookOptions{AuthorID: &author.ID})

	got, err := svc.RetrieveAuthor(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.BookCount)

	name := "R. Tagore"
	updated, err := svc.UpdateAuthor(ctx, author.ID, UpdateAuthorOptions{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "R. Tagore", updated.Name)

	require.NoError(t, svc.DeleteAuthor(ctx, author.ID))
	_, err = svc.RetrieveAuthor(ctx, author.ID)
	assert.ErrorIs(t, err, errcodes.NotFound("Author"))
}
