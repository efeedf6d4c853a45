package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookshelf-graphql/internal/domains/book/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// postgresRepository implements RepositoryInterface on the books table.
// author_id carries no foreign key: the reference is only checked when a book is created.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const bookColumns = `id, title, pages, author_id, year_of_publication, is_deleted, created_at, updated_at`

func scanBook(row pgx.Row) (*model.Book, error) {
	var b model.Book
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Pages,
		&b.AuthorID,
		&b.YearOfPublication,
		&b.IsDeleted,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	query := `
        INSERT INTO books (title, pages, author_id, year_of_publication)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + bookColumns

	created, err := scanBook(r.pool.QueryRow(ctx, query,
		b.Title,
		b.Pages,
		b.AuthorID,
		b.YearOfPublication,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	b, err := scanBook(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}
	return b, nil
}

func (r *postgresRepository) Find(ctx context.Context, filter model.BookFilter) ([]*model.Book, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + bookColumns + ` FROM books WHERE 1=1`)

	args := []interface{}{}
	if filter.AuthorID != nil {
		args = append(args, *filter.AuthorID)
		queryBuilder.WriteString(fmt.Sprintf(" AND author_id = $%d", len(args)))
	}
	if filter.IsDeleted != nil {
		args = append(args, *filter.IsDeleted)
		queryBuilder.WriteString(fmt.Sprintf(" AND is_deleted = $%d", len(args)))
	}
	queryBuilder.WriteString(" ORDER BY created_at ASC, id ASC")

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := []*model.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate books: %w", err)
	}
	return books, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, patch model.BookPatch) (*model.Book, error) {
	query := `
        UPDATE books SET
            title      = COALESCE($2, title),
            pages      = COALESCE($3, pages),
            author_id  = COALESCE($4, author_id),
            is_deleted = COALESCE($5, is_deleted),
            updated_at = NOW()
        WHERE id = $1
        RETURNING ` + bookColumns

	updated, err := scanBook(r.pool.QueryRow(ctx, query,
		id,
		patch.Title,
		patch.Pages,
		patch.AuthorID,
		patch.IsDeleted,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	return updated, nil
}
