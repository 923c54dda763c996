package migrations

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

func init() {
	up := func(_ context.Context, db *bun.DB) error {
		stmts := []string{
			`CREATE TABLE captains (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				name TEXT NOT NULL,
				email TEXT NOT NULL,
				password_hash TEXT NOT NULL,
				status TEXT NOT NULL DEFAULT 'active'
			)`,
			`CREATE UNIQUE INDEX ux_captains_email ON captains (email COLLATE NOCASE)`,

			`CREATE TABLE users (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				name TEXT NOT NULL,
				email TEXT NOT NULL,
				password_hash TEXT NOT NULL,
				status TEXT NOT NULL DEFAULT 'active',
				time_spent_minutes INTEGER NOT NULL DEFAULT 0,
				captain_id INTEGER REFERENCES captains (id) ON DELETE SET NULL
			)`,
			`CREATE UNIQUE INDEX ux_users_email ON users (email COLLATE NOCASE)`,

			`CREATE TABLE authors (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				name TEXT NOT NULL
			)`,
			`CREATE TABLE genres (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				name TEXT NOT NULL
			)`,
			`CREATE TABLE publishers (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				name TEXT NOT NULL,
				country TEXT
			)`,

			`CREATE TABLE books (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				title TEXT NOT NULL,
				isbn TEXT NOT NULL,
				publication_year INTEGER NOT NULL,
				book_url TEXT,
				author_id INTEGER REFERENCES authors (id) ON DELETE SET NULL,
				genre_id INTEGER REFERENCES genres (id) ON DELETE SET NULL,
				publisher_id INTEGER REFERENCES publishers (id) ON DELETE SET NULL,
				captain_id INTEGER REFERENCES captains (id) ON DELETE SET NULL
			)`,
			`CREATE UNIQUE INDEX ux_books_isbn ON books (isbn)`,
			`CREATE INDEX ix_books_author_id ON books (author_id)`,
			`CREATE INDEX ix_books_genre_id ON books (genre_id)`,

			`CREATE TABLE reviews (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				book_id INTEGER REFERENCES books (id) ON DELETE CASCADE NOT NULL,
				user_id INTEGER REFERENCES users (id) ON DELETE CASCADE NOT NULL,
				rating REAL NOT NULL CHECK (rating >= 0 AND rating <= 5),
				comment TEXT
			)`,
			`CREATE UNIQUE INDEX ux_reviews_book_user ON reviews (book_id, user_id)`,

			`CREATE TABLE book_usages (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				user_id INTEGER REFERENCES users (id) ON DELETE CASCADE NOT NULL,
				book_id INTEGER REFERENCES books (id) ON DELETE CASCADE NOT NULL,
				captain_id INTEGER REFERENCES captains (id) ON DELETE SET NULL,
				issue_date TIMESTAMPTZ NOT NULL,
				return_date TIMESTAMPTZ,
				duration_minutes INTEGER,
				status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'returned'))
			)`,
			`CREATE INDEX ix_book_usages_user_id ON book_usages (user_id)`,
			`CREATE INDEX ix_book_usages_book_id ON book_usages (book_id)`,

			`CREATE TABLE borrowings (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				user_id INTEGER REFERENCES users (id) ON DELETE CASCADE NOT NULL,
				book_id INTEGER REFERENCES books (id) ON DELETE CASCADE NOT NULL,
				captain_id INTEGER REFERENCES captains (id) ON DELETE SET NULL,
				borrow_date TIMESTAMPTZ NOT NULL,
				return_date TIMESTAMPTZ,
				duration_days INTEGER,
				status TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'returned'))
			)`,
			`CREATE INDEX ix_borrowings_user_id ON borrowings (user_id)`,

			`CREATE TABLE favorites (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				user_id INTEGER REFERENCES users (id) ON DELETE CASCADE NOT NULL,
				book_id INTEGER REFERENCES books (id) ON DELETE CASCADE NOT NULL
			)`,
			`CREATE UNIQUE INDEX ux_favorites_user_book ON favorites (user_id, book_id)`,

			`CREATE TABLE bookmarks (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				user_id INTEGER REFERENCES users (id) ON DELETE CASCADE NOT NULL,
				book_id INTEGER REFERENCES books (id) ON DELETE CASCADE NOT NULL
			)`,
			`CREATE UNIQUE INDEX ux_bookmarks_user_book ON bookmarks (user_id, book_id)`,

			`CREATE TABLE read_books (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				user_id INTEGER REFERENCES users (id) ON DELETE CASCADE NOT NULL,
				book_id INTEGER REFERENCES books (id) ON DELETE CASCADE NOT NULL
			)`,
			`CREATE UNIQUE INDEX ux_read_books_user_book ON read_books (user_id, book_id)`,

			`CREATE TABLE reading_progress (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id INTEGER REFERENCES users (id) ON DELETE CASCADE NOT NULL,
				book_id INTEGER REFERENCES books (id) ON DELETE CASCADE NOT NULL,
				current_page INTEGER,
				is_finished BOOLEAN NOT NULL DEFAULT FALSE,
				finished_at TIMESTAMPTZ,
				last_read_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
			)`,
			`CREATE UNIQUE INDEX ux_reading_progress_user_book ON reading_progress (user_id, book_id)`,

			`CREATE TABLE admin_actions (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				user_id INTEGER REFERENCES users (id) ON DELETE CASCADE NOT NULL,
				captain_id INTEGER REFERENCES captains (id) ON DELETE CASCADE NOT NULL,
				action_type TEXT NOT NULL,
				notes TEXT NOT NULL DEFAULT ''
			)`,

			`CREATE TABLE blacklist_tokens (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				token TEXT NOT NULL
			)`,
			`CREATE UNIQUE INDEX ux_blacklist_tokens_token ON blacklist_tokens (token)`,
		}

		for _, stmt := range stmts {
			if _, err := db.Exec(stmt); err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}

	down := func(_ context.Context, db *bun.DB) error {
		tables := []string{
			"blacklist_tokens",
			"admin_actions",
			"reading_progress",
			"read_books",
			"bookmarks",
			"favorites",
			"borrowings",
			"book_usages",
			"reviews",
			"books",
			"publishers",
			"genres",
			"authors",
			"users",
			"captains",
		}
		for _, table := range tables {
			if _, err := db.Exec("DROP TABLE IF EXISTS " + table); err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}

	Migrations.MustRegister(up, down)
}
