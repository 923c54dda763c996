package reading

import (
	"context"
	"testing"

	"github.com/pathsala/pathsala/pkg/errcodes"
	"github.com/pathsala/pathsala/pkg/models"
	"github.com/pathsala/pathsala/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordTime(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	captain := testutils.CreateCaptain(t, db, "captain@example.com")
	book := testutils.CreateBook(t, db, captain.ID, "Gitanjali", "111", testutils.BookOptions{})
	reader := testutils.CreateUser(t, db, "reader@example.com")

	require.NoError(t, svc.RecordTime(ctx, reader.ID, book.ID, 30))
	require.NoError(t, svc.RecordTime(ctx, reader.ID, book.ID, 45))

	// Minutes accumulate; the membership row does not duplicate.
	user := &models.User{}
	require.NoError(t, db.NewSelect().Model(user).Where("u.id = ?", reader.ID).Scan(ctx))
	assert.Equal(t, 75, user.TimeSpentMinutes)

	count, err := db.NewSelect().Model((*models.ReadBook)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Unknown book leaves the counter untouched.
	err = svc.RecordTime(ctx, reader.ID, book.ID+1000, 10)
	assert.ErrorIs(t, err, errcodes.NotFound("Book"))

	require.NoError(t, db.NewSelect().Model(user).Where("u.id = ?", reader.ID).Scan(ctx))
	assert.Equal(t, 75, user.TimeSpentMinutes)
}

func TestRetrieveStats(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	captain := testutils.CreateCaptain(t, db, "captain@example.com")
	first := testutils.CreateBook(t, db, captain.ID, "First", "111", testutils.BookOptions{})
	second := testutils.CreateBook(t, db, captain.ID, "Second", "222", testutils.BookOptions{})
	reader := testutils.CreateUser(t, db, "reader@example.com")

	stats, err := svc.RetrieveStats(ctx, reader.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.BooksRead)
	assert.Equal(t, 0, stats.MinutesSpent)

	require.NoError(t, svc.RecordTime(ctx, reader.ID, first.ID, 90))
	require.NoError(t, svc.RecordTime(ctx, reader.ID, second.ID, 40))

	stats, err = svc.RetrieveStats(ctx, reader.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.BooksRead)
	assert.Equal(t, 130, stats.MinutesSpent)
	// Hours round down.
	assert.Equal(t, 2, stats.HoursSpent)
}

func TestListReadBooks(t *testing.T) {
	t.Parallel()

	db := testutils.NewDB(t)
	svc := NewService(db)
	ctx := context.Background()

	captain := testutils.CreateCaptain(t, db, "captain@example.com")
	author := testutils.CreateAuthor(t, db, "Tagore")
	reader := testutils.CreateUser(t, db, "reader@example.com")

	isbns := []string{"111", "222", "333"}
	for _, isbn := range isbns {
		book := testutils.CreateBook(t, db, captain.ID, "Book "+isbn, isbn, testutils.BookOptions{AuthorID: &author.ID})
		require.NoError(t, svc.RecordTime(ctx, reader.ID, book.ID, 10))
	}

	books, err := svc.ListReadBooks(ctx, reader.ID, 0)
	require.NoError(t, err)
	assert.Len(t, books, 3)

	books, err = svc.ListReadBooks(ctx, reader.ID, 2)
	require.NoError(t, err)
	assert.Len(t, books, 2)
	require.NotNil(t, books[0].AuthorName)
	assert.Equal(t, "Tagore", *books[0].AuthorName)
}
