// Package testutils provides database fixtures shared by package tests.
package testutils

import (
	"context"
	"database/sql"
	"testing"

	"github.com/pathsala/pathsala/pkg/migrations"
	"github.com/pathsala/pathsala/pkg/models"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"golang.org/x/crypto/bcrypt"
)

// testBcryptCost keeps fixture creation fast; production hashing uses the
// auth package's cost.
const testBcryptCost = bcrypt.MinCost

// NewDB opens an in-memory database with all migrations applied.
func NewDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)

	// A second pooled connection to :memory: would open a separate empty
	// database without the pragma below, so keep the fixture on a single
	// connection.
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = db.Exec("PRAGMA foreign_keys=ON")
	require.NoError(t, err)

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// CreateUser inserts an active reader with the given email. The password is
// always "password123".
func CreateUser(t *testing.T, db *bun.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), testBcryptCost)
	require.NoError(t, err)

	user := &models.User{
		Name:         "Test Reader",
		Email:        email,
		PasswordHash: string(hash),
		Status:       models.UserStatusActive,
	}
	_, err = db.NewInsert().Model(user).Exec(context.Background())
	require.NoError(t, err)

	return user
}

// CreateCaptain inserts an active captain with the given email. The password
// is always "password123".
func CreateCaptain(t *testing.T, db *bun.DB, email string) *models.Captain {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), testBcryptCost)
	require.NoError(t, err)

	captain := &models.Captain{
		Name:         "Test Captain",
		Email:        email,
		PasswordHash: string(hash),
		Status:       models.CaptainStatusActive,
	}
	_, err = db.NewInsert().Model(captain).Exec(context.Background())
	require.NoError(t, err)

	return captain
}

// CreateAuthor inserts an author.
func CreateAuthor(t *testing.T, db *bun.DB, name string) *models.Author {
	t.Helper()

	author := &models.Author{Name: name}
	_, err := db.NewInsert().Model(author).Exec(context.Background())
	require.NoError(t, err)

	return author
}

// CreateGenre inserts a genre.
func CreateGenre(t *testing.T, db *bun.DB, name string) *models.Genre {
	t.Helper()

	genre := &models.Genre{Name: name}
	_, err := db.NewInsert().Model(genre).Exec(context.Background())
	require.NoError(t, err)

	return genre
}

// CreatePublisher inserts a publisher.
func CreatePublisher(t *testing.T, db *bun.DB, name string) *models.Publisher {
	t.Helper()

	publisher := &models.Publisher{Name: name}
	_, err := db.NewInsert().Model(publisher).Exec(context.Background())
	require.NoError(t, err)

	return publisher
}

// BookOptions are the optional fields for CreateBook.
type BookOptions struct {
	AuthorID    *int
	GenreID     *int
	PublisherID *int
}

// CreateBook inserts a book cataloged by the given captain.
func CreateBook(t *testing.T, db *bun.DB, captainID int, title, isbn string, opts BookOptions) *models.Book {
	t.Helper()

	book := &models.Book{
		Title:           title,
		ISBN:            isbn,
		PublicationYear: 2000,
		AuthorID:        opts.AuthorID,
		GenreID:         opts.GenreID,
		PublisherID:     opts.PublisherID,
		CaptainID:       captainID,
	}
	_, err := db.NewInsert().Model(book).Exec(context.Background())
	require.NoError(t, err)

	return book
}

// CreateReview inserts a review.
func CreateReview(t *testing.T, db *bun.DB, bookID, userID int, rating float64) *models.Review {
	t.Helper()

	review := &models.Review{
		BookID: bookID,
		UserID: userID,
		Rating: rating,
	}
	_, err := db.NewInsert().Model(review).Exec(context.Background())
	require.NoError(t, err)

	return review
}
