package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bookshelf-graphql/internal/domains/author/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// postgresRepository implements RepositoryInterface on the authors table.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

const authorColumns = `id, first_name, last_name, email, age, books, is_deleted, created_at, updated_at`

func scanAuthor(row pgx.Row) (*model.Author, error) {
	var a model.Author
	err := row.Scan(
		&a.ID,
		&a.FirstName,
		&a.LastName,
		&a.Email,
		&a.Age,
		&a.Books,
		&a.IsDeleted,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if a.Books == nil {
		a.Books = []uuid.UUID{}
	}
	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        INSERT INTO authors (first_name, last_name, email, age, books)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + authorColumns

	books := a.Books
	if books == nil {
		books = []uuid.UUID{}
	}

	created, err := scanAuthor(r.pool.QueryRow(ctx, query,
		a.FirstName,
		a.LastName,
		a.Email,
		a.Age,
		books,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}
	return created, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	query := `SELECT ` + authorColumns + ` FROM authors WHERE id = $1`

	a, err := scanAuthor(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}
	return a, nil
}

func (r *postgresRepository) Find(ctx context.Context, filter model.AuthorFilter) ([]*model.Author, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + authorColumns + ` FROM authors WHERE 1=1`)

	args := []interface{}{}
	if filter.IsDeleted != nil {
		args = append(args, *filter.IsDeleted)
		queryBuilder.WriteString(fmt.Sprintf(" AND is_deleted = $%d", len(args)))
	}
	queryBuilder.WriteString(" ORDER BY created_at ASC, id ASC")

	rows, err := r.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	authors := []*model.Author{}
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate authors: %w", err)
	}
	return authors, nil
}

func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, patch model.AuthorPatch) (*model.Author, error) {
	// COALESCE keeps the stored value for every field the patch leaves nil.
	query := `
        UPDATE authors SET
            first_name = COALESCE($2, first_name),
            last_name  = COALESCE($3, last_name),
            email      = COALESCE($4, email),
            age        = COALESCE($5, age),
            books      = COALESCE($6, books),
            is_deleted = COALESCE($7, is_deleted),
            updated_at = NOW()
        WHERE id = $1
        RETURNING ` + authorColumns

	var books []uuid.UUID
	if patch.Books != nil {
		books = *patch.Books
		if books == nil {
			books = []uuid.UUID{}
		}
	}

	updated, err := scanAuthor(r.pool.QueryRow(ctx, query,
		id,
		patch.FirstName,
		patch.LastName,
		patch.Email,
		patch.Age,
		books,
		patch.IsDeleted,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}
	return updated, nil
}
