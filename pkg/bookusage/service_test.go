package bookusage

import (
	"context"
	"testing"

	"github.com/pathsala/pathsala/pkg/errcodes"
	"github.com/pathsala/pathsala/pkg/models"
	"github.com/pathsala/pathsala/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueBook(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	captain := testutils.CreateCaptain(t, db, "captain@example.com")
	book := testutils.CreateBook(t, db, captain.ID, "Gitanjali", "111", testutils.BookOptions{})
	reader := testutils.CreateUser(t, db, "reader@example.com")

	usage, err := svc.IssueBook(ctx, IssueBookOptions{
		BookID:    book.ID,
		UserID:    reader.ID,
		CaptainID: captain.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.UsageStatusActive, usage.Status)
	assert.Nil(t, usage.ReturnDate)

	// The issue leaves an audit trail.
	actions := []*models.AdminAction{}
	require.NoError(t, db.NewSelect().Model(&actions).Scan(ctx))
	require.Len(t, actions, 1)
	assert.Equal(t, models.ActionBookIssued, actions[0].ActionType)
	assert.Equal(t, captain.ID, actions[0].CaptainID)
	assert.Equal(t, reader.ID, actions[0].UserID)

	_, err = svc.IssueBook(ctx, IssueBookOptions{BookID: book.ID + 1000, UserID: reader.ID, CaptainID: captain.ID})
	assert.ErrorIs(t, err, errcodes.NotFound("Book"))

	_, err = svc.IssueBook(ctx, IssueBookOptions{BookID: book.ID, UserID: reader.ID + 1000, CaptainID: captain.ID})
	assert.ErrorIs(t, err, errcodes.NotFound("User"))
}

func TestReturnBookOneWay(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	captain := testutils.CreateCaptain(t, db, "captain@example.com")
	book := testutils.CreateBook(t, db, captain.ID, "Gitanjali", "111", testutils.BookOptions{})
	reader := testutils.CreateUser(t, db, "reader@example.com")

	usage, err := svc.IssueBook(ctx, IssueBookOptions{
		BookID:    book.ID,
		UserID:    reader.ID,
		CaptainID: captain.ID,
	})
	require.NoError(t, err)

	returned, err := svc.ReturnBook(ctx, usage.ID, captain.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UsageStatusReturned, returned.Status)
	require.NotNil(t, returned.ReturnDate)
	require.NotNil(t, returned.DurationMinutes)
	assert.GreaterOrEqual(t, *returned.DurationMinutes, 0)

	// The transition is one-way.
	_, err = svc.ReturnBook(ctx, usage.ID, captain.ID)
	assert.ErrorIs(t, err, errcodes.AlreadyReturned())

	_, err = svc.ReturnBook(ctx, usage.ID+1000, captain.ID)
	assert.ErrorIs(t, err, errcodes.NotFound("Usage record"))

	// Issue and return both audited.
	actions := []*models.AdminAction{}
	require.NoError(t, db.NewSelect().Model(&actions).Order("id ASC").Scan(ctx))
	require.Len(t, actions, 2)
	assert.Equal(t, models.ActionBookIssued, actions[0].ActionType)
	assert.Equal(t, models.ActionBookReturned, actions[1].ActionType)
}

func TestListUsages(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	captain := testutils.CreateCaptain(t, db, "captain@example.com")
	book := testutils.CreateBook(t, db, captain.ID, "Gitanjali", "111", testutils.BookOptions{})
	other := testutils.CreateBook(t, db, captain.ID, "Other", "222", testutils.BookOptions{})
	reader := testutils.CreateUser(t, db, "reader@example.com")

	first, err := svc.IssueBook(ctx, IssueBookOptions{BookID: book.ID, UserID: reader.ID, CaptainID: captain.ID})
	require.NoError(t, err)
	_, err = svc.IssueBook(ctx, IssueBookOptions{BookID: other.ID, UserID: reader.ID, CaptainID: captain.ID})
	require.NoError(t, err)

	_, err = svc.ReturnBook(ctx, first.ID, captain.ID)
	require.NoError(t, err)

	history, err := svc.ListUsages(ctx, ListUsagesOptions{UserID: &reader.ID})
	require.NoError(t, err)
	assert.Len(t, history, 2)
	require.NotNil(t, history[0].BookTitle)

	active, err := svc.ListUsages(ctx, ListUsagesOptions{UserID: &reader.ID, ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, other.ID, active[0].BookID)

	byBook, err := svc.ListUsages(ctx, ListUsagesOptions{BookID: &book.ID})
	require.NoError(t, err)
	require.Len(t, byBook, 1)
	assert.Equal(t, first.ID, byBook[0].ID)
}
