package author

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

func (r *PostgresRepo) List(ctx context.Context) ([]Author, error) {
	rows, err := r.db.Query(ctx, `SELECT id, full_name FROM authors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	defer rows.Close()
	return scanAuthors(rows)
}

func (r *PostgresRepo) SearchByName(ctx context.Context, text string) ([]Author, error) {
	const query = `
		SELECT id, full_name
		FROM authors
		WHERE full_name LIKE '%' || $1 || '%'
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, text)
	if err != nil {
		return nil, fmt.Errorf("search authors: %w", err)
	}
	defer rows.Close()
	return scanAuthors(rows)
}

func (r *PostgresRepo) Get(ctx context.Context, id int64) (Author, error) {
	var a Author
	err := r.db.QueryRow(ctx, `SELECT id, full_name FROM authors WHERE id = $1`, id).
		Scan(&a.ID, &a.FullName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Author{}, ErrNotFound
		}
		return Author{}, fmt.Errorf("get author %d: %w", id, err)
	}
	return a, nil
}

func (r *PostgresRepo) Save(ctx context.Context, a *Author) error {
	err := r.db.QueryRow(ctx, `INSERT INTO authors (full_name) VALUES ($1) RETURNING id`, a.FullName).
		Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("save author: %w", err)
	}
	return nil
}

func (r *PostgresRepo) Update(ctx context.Context, a Author) error {
	tag, err := r.db.Exec(ctx, `UPDATE authors SET full_name = $2 WHERE id = $1`, a.ID, a.FullName)
	if err != nil {
		return fmt.Errorf("update author %d: %w", a.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete evaluates the ownership guard and removes the author inside
// one transaction, so the guard cannot pass on a stale read while a
// book is attached concurrently.
func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("delete author %d: %w", id, err)
	}
	defer tx.Rollback(ctx)

	var exists int
	err = tx.QueryRow(ctx, `SELECT 1 FROM authors WHERE id = $1 FOR UPDATE`, id).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("delete author %d: %w", id, err)
	}

	var owned int
	err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM book_authors WHERE author_id = $1`, id).Scan(&owned)
	if err != nil {
		return fmt.Errorf("delete author %d: %w", id, err)
	}
	if owned > 0 {
		return ErrDeleteBlocked
	}

	if _, err := tx.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete author %d: %w", id, err)
	}

	return tx.Commit(ctx)
}

func scanAuthors(rows pgx.Rows) ([]Author, error) {
	var out []Author
	for rows.Next() {
		var a Author
		if err := rows.Scan(&a.ID, &a.FullName); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
