package borrowing

import (
	"context"
	"testing"

	"github.com/pathsala/pathsala/pkg/errcodes"
	"github.com/pathsala/pathsala/pkg/models"
	"github.com/pathsala/pathsala/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorrowAndReturn(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	captain := testutils.CreateCaptain(t, db, "captain@example.com")
	book := testutils.CreateBook(t, db, captain.ID, "Gitanjali", "111", testutils.BookOptions{})
	reader := testutils.CreateUser(t, db, "reader@example.com")

	loan, err := svc.BorrowBook(ctx, reader.ID, book.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UsageStatusActive, loan.Status)

	_, err = svc.BorrowBook(ctx, reader.ID, book.ID+1000)
	assert.ErrorIs(t, err, errcodes.NotFound("Book"))

	returned, err := svc.ReturnBook(ctx, loan.ID, reader.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UsageStatusReturned, returned.Status)
	require.NotNil(t, returned.ReturnDate)
	require.NotNil(t, returned.DurationDays)
	assert.GreaterOrEqual(t, *returned.DurationDays, 0)

	_, err = svc.ReturnBook(ctx, loan.ID, reader.ID)
	assert.ErrorIs(t, err, errcodes.AlreadyReturned())

	_, err = svc.ReturnBook(ctx, loan.ID+1000, reader.ID)
	assert.ErrorIs(t, err, errcodes.NotFound("Borrowing"))
}

func TestReturnOwnLoanOnly(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	captain := testutils.CreateCaptain(t, db, "captain@example.com")
	book := testutils.CreateBook(t, db, captain.ID, "Gitanjali", "111", testutils.BookOptions{})
	owner := testutils.CreateUser(t, db, "owner@example.com")
	stranger := testutils.CreateUser(t, db, "stranger@example.com")

	loan, err := svc.BorrowBook(ctx, owner.ID, book.ID)
	require.NoError(t, err)

	_, err = svc.ReturnBook(ctx, loan.ID, stranger.ID)
	assert.ErrorIs(t, err, errcodes.Forbidden("Returning another reader's loan"))

	// The loan stays active after the rejected attempt.
	active, err := svc.ListActive(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestListLoans(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	captain := testutils.CreateCaptain(t, db, "captain@example.com")
	author := testutils.CreateAuthor(t, db, "Tagore")
	first := testutils.CreateBook(t, db, captain.ID, "First", "111", testutils.BookOptions{AuthorID: &author.ID})
	second := testutils.CreateBook(t, db, captain.ID, "Second", "222", testutils.BookOptions{})
	reader := testutils.CreateUser(t, db, "reader@example.com")

	loan, err := svc.BorrowBook(ctx, reader.ID, first.ID)
	require.NoError(t, err)
	_, err = svc.BorrowBook(ctx, reader.ID, second.ID)
	require.NoError(t, err)

	_, err = svc.ReturnBook(ctx, loan.ID, reader.ID)
	require.NoError(t, err)

	history, err := svc.ListHistory(ctx, reader.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2)
	require.NotNil(t, history[0].BookTitle)

	active, err := svc.ListActive(ctx, reader.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].BookID)
}
