package books

import (
	"context"
	"database/sql"
	"time"

	"github.com/pathsala/pathsala/pkg/errcodes"
	"github.com/pathsala/pathsala/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type ListBooksOptions struct {
	Page     int
	Limit    int
	Title    *string
	AuthorID *int
	GenreID  *int
	Search   *string
}

type CreateBookOptions struct {
	Title           string
	ISBN            string
	PublicationYear int
	BookURL         *string
	AuthorID        *int
	GenreID         *int
	PublisherID     *int
	CaptainID       int
}

type UpdateBookOptions struct {
	Title           *string
	ISBN            *string
	PublicationYear *int
	BookURL         *string
	AuthorID        *int
	GenreID         *int
	PublisherID     *int
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// detailQuery is the shared shape for every catalog read: book columns plus
// the joined author/genre/publisher names and review aggregates. AVG(rating)
// stays NULL for unreviewed books so callers can tell "no reviews" apart from
// a genuine zero rating.
func (svc *Service) detailQuery() *bun.SelectQuery {
	return svc.db.NewSelect().
		Model((*models.Book)(nil)).
		ColumnExpr("b.*").
		ColumnExpr("a.name AS author_name").
		ColumnExpr("g.name AS genre_name").
		ColumnExpr("p.name AS publisher_name").
		ColumnExpr("AVG(r.rating) AS average_rating").
		ColumnExpr("COUNT(r.id) AS review_count").
		Join("LEFT JOIN authors AS a ON a.id = b.author_id").
		Join("LEFT JOIN genres AS g ON g.id = b.genre_id").
		Join("LEFT JOIN publishers AS p ON p.id = b.publisher_id").
		Join("LEFT JOIN reviews AS r ON r.book_id = b.id").
		GroupExpr("b.id")
}

func applyListFilter(q *bun.SelectQuery, opts ListBooksOptions) *bun.SelectQuery {
	switch {
	case opts.Title != nil:
		q = q.Where("b.title LIKE ? COLLATE NOCASE", "%"+*opts.Title+"%")
	case opts.AuthorID != nil:
		q = q.Where("b.author_id = ?", *opts.AuthorID)
	case opts.GenreID != nil:
		q = q.Where("b.genre_id = ?", *opts.GenreID)
	case opts.Search != nil:
		pattern := "%" + *opts.Search + "%"
		q = q.Where("(b.title LIKE ? COLLATE NOCASE OR a.name LIKE ? COLLATE NOCASE)", pattern, pattern)
	}
	return q
}

// ListBooks returns a page of books plus the total count. The count runs the
// same filter as the page query, so pagination stays consistent when a filter
// is active.
func (svc *Service) ListBooks(ctx context.Context, opts ListBooksOptions) ([]*models.Book, int, error) {
	books := []*models.Book{}
	err := applyListFilter(svc.detailQuery(), opts).
		OrderExpr("b.title ASC").
		Limit(opts.Limit).
		Offset((opts.Page-1)*opts.Limit).
		Scan(ctx, &books)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	countQuery := svc.db.NewSelect().
		Model((*models.Book)(nil)).
		Join("LEFT JOIN authors AS a ON a.id = b.author_id")
	total, err := applyListFilter(countQuery, opts).Count(ctx)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	return books, total, nil
}

// PopularBooks returns a random sample of the catalog. Deliberately
// non-deterministic so the shelf looks different on every visit.
func (svc *Service) PopularBooks(ctx context.Context, limit int) ([]*models.Book, error) {
	books := []*models.Book{}
	err := svc.detailQuery().
		OrderExpr("RANDOM()").
		Limit(limit).
		Scan(ctx, &books)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return books, nil
}

// SuggestBooks matches the query against titles and author names,
// best-rated first.
func (svc *Service) SuggestBooks(ctx context.Context, query string, limit int) ([]*models.Book, error) {
	pattern := "%" + query + "%"
	books := []*models.Book{}
	err := svc.detailQuery().
		Where("(b.title LIKE ? COLLATE NOCASE OR a.name LIKE ? COLLATE NOCASE)", pattern, pattern).
		OrderExpr("average_rating DESC NULLS LAST, b.title ASC").
		Limit(limit).
		Scan(ctx, &books)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return books, nil
}

func (svc *Service) RetrieveBook(ctx context.Context, id int) (*models.Book, error) {
	book := &models.Book{}
	err := svc.detailQuery().
		Where("b.id = ?", id).
		Scan(ctx, book)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errcodes.NotFound("Book")
	} else if err != nil {
		return nil, errors.WithStack(err)
	}
	return book, nil
}

func (svc *Service) CreateBook(ctx context.Context, opts CreateBookOptions) (*models.Book, error) {
	exists, err := svc.db.NewSelect().
		Model((*models.Book)(nil)).
		Where("isbn = ?", opts.ISBN).
		Exists(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if exists {
		return nil, errcodes.DuplicateResource("ISBN")
	}

	now := time.Now()
	book := &models.Book{
		CreatedAt:       now,
		UpdatedAt:       now,
		Title:           opts.Title,
		ISBN:            opts.ISBN,
		PublicationYear: opts.PublicationYear,
		BookURL:         opts.BookURL,
		AuthorID:        opts.AuthorID,
		GenreID:         opts.GenreID,
		PublisherID:     opts.PublisherID,
		CaptainID:       opts.CaptainID,
	}

	_, err = svc.db.NewInsert().Model(book).Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return svc.RetrieveBook(ctx, book.ID)
}

// UpdateBook applies only the provided fields and leaves the rest untouched.
func (svc *Service) UpdateBook(ctx context.Context, id int, opts UpdateBookOptions) (*models.Book, error) {
	book := &models.Book{}
	err := svc.db.NewSelect().
		Model(book).
		Where("b.id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errcodes.NotFound("Book")
	} else if err != nil {
		return nil, errors.WithStack(err)
	}

	if opts.ISBN != nil && *opts.ISBN != book.ISBN {
		exists, err := svc.db.NewSelect().
			Model((*models.Book)(nil)).
			Where("isbn = ?", *opts.ISBN).
			Where("id != ?", id).
			Exists(ctx)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if exists {
			return nil, errcodes.DuplicateResource("ISBN")
		}
		book.ISBN = *opts.ISBN
	}
	if opts.Title != nil {
		book.Title = *opts.Title
	}
	if opts.PublicationYear != nil {
		book.PublicationYear = *opts.PublicationYear
	}
	if opts.BookURL != nil {
		book.BookURL = opts.BookURL
	}
	if opts.AuthorID != nil {
		book.AuthorID = opts.AuthorID
	}
	if opts.GenreID != nil {
		book.GenreID = opts.GenreID
	}
	if opts.PublisherID != nil {
		book.PublisherID = opts.PublisherID
	}
	book.UpdatedAt = time.Now()

	_, err = svc.db.NewUpdate().
		Model(book).
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return svc.RetrieveBook(ctx, id)
}

func (svc *Service) DeleteBook(ctx context.Context, id int) error {
	res, err := svc.db.NewDelete().
		Model((*models.Book)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return errors.WithStack(err)
	}
	if rows == 0 {
		return errcodes.NotFound("Book")
	}
	return nil
}
