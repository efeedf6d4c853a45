package resolver

import (
	"context"
	"time"

	authormodel "bookshelf-graphql/internal/domains/author/model"
	bookmodel "bookshelf-graphql/internal/domains/book/model"
	"bookshelf-graphql/internal/graphql/executor"
	"bookshelf-graphql/internal/shared/apperror"
)

func (r *Resolver) mutationFields() map[string]executor.FieldFunc[executor.Root] {
	return map[string]executor.FieldFunc[executor.Root]{
		"createBook":   r.createBook,
		"updateBook":   r.updateBook,
		"deleteBook":   r.deleteBook,
		"createAuthor": r.createAuthor,
		"updateAuthor": r.updateAuthor,
		"deleteAuthor": r.deleteAuthor,
		"registerUser": r.registerUser,
	}
}

func (r *Resolver) createBook(ctx context.Context, _ executor.Root, args executor.Args) (any, error) {
	authorID, ok := parseID(args.String("author"))
	if !ok {
		return nil, bookmodel.ErrAuthorNotFound
	}

	in := bookmodel.CreateBookInput{
		Title:    args.String("title"),
		Pages:    args.Int("pages"),
		AuthorID: authorID,
	}
	if t, ok := args["yearOfPublication"].(time.Time); ok {
		in.YearOfPublication = &t
	}
	return r.books.Create(ctx, in)
}

// updateBook returns null for unknown ids.
func (r *Resolver) updateBook(ctx context.Context, _ executor.Root, args executor.Args) (any, error) {
	id, ok := parseID(args.String("id"))
	if !ok {
		return nil, nil
	}

	in := bookmodel.UpdateBookInput{
		Title: args.StringPtr("title"),
		Pages: args.IntPtr("pages"),
	}
	if raw := args.StringPtr("author"); raw != nil {
		authorID, ok := parseID(*raw)
		if !ok {
			return nil, apperror.Validation("author must be a valid identifier")
		}
		in.AuthorID = &authorID
	}

	b, err := r.books.Update(ctx, id, in)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return b, nil
}

func (r *Resolver) deleteBook(ctx context.Context, _ executor.Root, args executor.Args) (any, error) {
	id, ok := parseID(args.String("id"))
	if !ok {
		return nil, apperror.Prefix(bookmodel.ErrBookNotFound, "Error deleting book")
	}
	return r.books.ToggleDeleted(ctx, id)
}

func (r *Resolver) createAuthor(ctx context.Context, _ executor.Root, args executor.Args) (any, error) {
	return r.authors.Create(ctx, authormodel.CreateAuthorInput{
		FirstName: args.String("firstName"),
		LastName:  args.String("lastName"),
		Email:     args.String("email"),
		Age:       args.Int("age"),
	})
}

// updateAuthor returns null for unknown ids.
func (r *Resolver) updateAuthor(ctx context.Context, _ executor.Root, args executor.Args) (any, error) {
	id, ok := parseID(args.String("id"))
	if !ok {
		return nil, nil
	}

	a, err := r.authors.Update(ctx, id, authormodel.UpdateAuthorInput{
		FirstName: args.StringPtr("firstName"),
		LastName:  args.StringPtr("lastName"),
		Email:     args.StringPtr("email"),
		Age:       args.IntPtr("age"),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

func (r *Resolver) deleteAuthor(ctx context.Context, _ executor.Root, args executor.Args) (any, error) {
	id, ok := parseID(args.String("id"))
	if !ok {
		return nil, apperror.Prefix(authormodel.ErrAuthorNotFound, "Error deleting author")
	}
	return r.authors.ToggleDeleted(ctx, id)
}

func (r *Resolver) registerUser(ctx context.Context, _ executor.Root, _ executor.Args) (any, error) {
	return r.users.Register(ctx)
}
