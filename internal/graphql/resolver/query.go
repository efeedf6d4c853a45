package resolver

import (
	"context"

	usermodel "bookshelf-graphql/internal/domains/user/model"
	"bookshelf-graphql/internal/graphql/executor"
)

func (r *Resolver) queryFields() map[string]executor.FieldFunc[executor.Root] {
	return map[string]executor.FieldFunc[executor.Root]{
		"findBookById":   r.findBookByID,
		"getBooks":       r.getBooks,
		"findAuthorById": r.findAuthorByID,
		"getAuthors":     r.getAuthors,
		"getUserById":    r.getUserByID,
		"getUsers":       r.getUsers,
	}
}

// findBookByID returns null for unknown ids. Soft-deleted books are returned.
func (r *Resolver) findBookByID(ctx context.Context, _ executor.Root, args executor.Args) (any, error) {
	id, ok := parseID(args.String("id"))
	if !ok {
		return nil, nil
	}
	b, err := r.books.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

func (r *Resolver) getBooks(ctx context.Context, _ executor.Root, _ executor.Args) (any, error) {
	return r.books.ListActive(ctx)
}

func (r *Resolver) findAuthorByID(ctx context.Context, _ executor.Root, args executor.Args) (any, error) {
	id, ok := parseID(args.String("id"))
	if !ok {
		return nil, nil
	}
	a, err := r.authors.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

func (r *Resolver) getAuthors(ctx context.Context, _ executor.Root, _ executor.Args) (any, error) {
	return r.authors.ListActive(ctx)
}

// getUserByID is the one lookup that fails instead of returning null.
func (r *Resolver) getUserByID(ctx context.Context, _ executor.Root, args executor.Args) (any, error) {
	id, ok := parseID(args.String("id"))
	if !ok {
		return nil, usermodel.ErrUserNotFound
	}
	return r.users.GetByID(ctx, id)
}

func (r *Resolver) getUsers(ctx context.Context, _ executor.Root, _ executor.Args) (any, error) {
	return r.users.ListActive(ctx)
}
