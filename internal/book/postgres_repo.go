package book

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

const selectBooksSQL = `
	SELECT b.id, b.title, b.isbn, b.publisher, b.year, b.language,
	       COALESCE(array_agg(ba.author_id ORDER BY ba.author_id)
	                FILTER (WHERE ba.author_id IS NOT NULL), '{}')
	FROM books b
	LEFT JOIN book_authors ba ON ba.book_id = b.id`

func (r *PostgresRepo) List(ctx context.Context) ([]Book, error) {
	rows, err := r.db.Query(ctx, selectBooksSQL+`
		GROUP BY b.id
		ORDER BY b.id`)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()
	return scanBooks(rows)
}

func (r *PostgresRepo) SearchByTitle(ctx context.Context, text string) ([]Book, error) {
	rows, err := r.db.Query(ctx, selectBooksSQL+`
		WHERE b.title LIKE '%' || $1 || '%'
		GROUP BY b.id
		ORDER BY b.id`, text)
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}
	defer rows.Close()
	return scanBooks(rows)
}

func (r *PostgresRepo) Get(ctx context.Context, id int64) (Book, error) {
	var b Book
	err := r.db.QueryRow(ctx, selectBooksSQL+`
		WHERE b.id = $1
		GROUP BY b.id`, id).
		Scan(&b.ID, &b.Title, &b.ISBN, &b.Publisher, &b.Year, &b.Language, &b.AuthorIDs)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, fmt.Errorf("get book %d: %w", id, err)
	}
	return b, nil
}

func (r *PostgresRepo) ListByAuthor(ctx context.Context, authorID int64) ([]Book, error) {
	rows, err := r.db.Query(ctx, selectBooksSQL+`
		WHERE b.id IN (SELECT book_id FROM book_authors WHERE author_id = $1)
		GROUP BY b.id
		ORDER BY b.id`, authorID)
	if err != nil {
		return nil, fmt.Errorf("list books by author %d: %w", authorID, err)
	}
	defer rows.Close()
	return scanBooks(rows)
}

func (r *PostgresRepo) Save(ctx context.Context, b *Book) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("save book: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO books (title, isbn, publisher, year, language)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		b.Title, b.ISBN, b.Publisher, b.Year, string(b.Language)).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("save book: %w", err)
	}

	for _, authorID := range b.AuthorIDs {
		_, err = tx.Exec(ctx, `
			INSERT INTO book_authors (book_id, author_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING`, b.ID, authorID)
		if err != nil {
			return fmt.Errorf("save book association: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepo) Update(ctx context.Context, b Book) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE books
		SET title = $2, isbn = $3, publisher = $4, year = $5, language = $6
		WHERE id = $1`,
		b.ID, b.Title, b.ISBN, b.Publisher, b.Year, string(b.Language))
	if err != nil {
		return fmt.Errorf("update book %d: %w", b.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the book row; association rows go with it through the
// foreign key cascade.
func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) AttachAuthor(ctx context.Context, bookID, authorID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO book_authors (book_id, author_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`, bookID, authorID)
	if err != nil {
		return fmt.Errorf("attach author %d to book %d: %w", authorID, bookID, err)
	}
	return nil
}

func scanBooks(rows pgx.Rows) ([]Book, error) {
	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.Title, &b.ISBN, &b.Publisher, &b.Year, &b.Language, &b.AuthorIDs); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
