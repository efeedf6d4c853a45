package resolver

import (
	"context"

	authormodel "bookshelf-graphql/internal/domains/author/model"
	bookmodel "bookshelf-graphql/internal/domains/book/model"
	usermodel "bookshelf-graphql/internal/domains/user/model"
	"bookshelf-graphql/internal/graphql/executor"
)

func (r *Resolver) bookFields() map[string]executor.FieldFunc[*bookmodel.Book] {
	type fn = executor.FieldFunc[*bookmodel.Book]
	return map[string]fn{
		"id":                func(_ context.Context, b *bookmodel.Book, _ executor.Args) (any, error) { return b.ID, nil },
		"title":             func(_ context.Context, b *bookmodel.Book, _ executor.Args) (any, error) { return b.Title, nil },
		"pages":             func(_ context.Context, b *bookmodel.Book, _ executor.Args) (any, error) { return b.Pages, nil },
		"isDeleted":         func(_ context.Context, b *bookmodel.Book, _ executor.Args) (any, error) { return b.IsDeleted, nil },
		"yearOfPublication": func(_ context.Context, b *bookmodel.Book, _ executor.Args) (any, error) { return b.YearOfPublication, nil },
		"createdAt":         func(_ context.Context, b *bookmodel.Book, _ executor.Args) (any, error) { return b.CreatedAt, nil },
		"updatedAt":         func(_ context.Context, b *bookmodel.Book, _ executor.Args) (any, error) { return b.UpdatedAt, nil },
		"author":            r.bookAuthor,
	}
}

// bookAuthor is null when the referenced author does not exist.
func (r *Resolver) bookAuthor(ctx context.Context, b *bookmodel.Book, _ executor.Args) (any, error) {
	a, err := r.authors.GetByID(ctx, b.AuthorID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

func (r *Resolver) authorFields() map[string]executor.FieldFunc[*authormodel.Author] {
	type fn = executor.FieldFunc[*authormodel.Author]
	return map[string]fn{
		"id":        func(_ context.Context, a *authormodel.Author, _ executor.Args) (any, error) { return a.ID, nil },
		"firstName": func(_ context.Context, a *authormodel.Author, _ executor.Args) (any, error) { return a.FirstName, nil },
		"lastName":  func(_ context.Context, a *authormodel.Author, _ executor.Args) (any, error) { return a.LastName, nil },
		"email":     func(_ context.Context, a *authormodel.Author, _ executor.Args) (any, error) { return a.Email, nil },
		"age":       func(_ context.Context, a *authormodel.Author, _ executor.Args) (any, error) { return a.Age, nil },
		"isDeleted": func(_ context.Context, a *authormodel.Author, _ executor.Args) (any, error) { return a.IsDeleted, nil },
		"bookIds":   func(_ context.Context, a *authormodel.Author, _ executor.Args) (any, error) { return a.Books, nil },
		"createdAt": func(_ context.Context, a *authormodel.Author, _ executor.Args) (any, error) { return a.CreatedAt, nil },
		"updatedAt": func(_ context.Context, a *authormodel.Author, _ executor.Args) (any, error) { return a.UpdatedAt, nil },
		"books":     r.authorBooks,
	}
}

// authorBooks queries books by author rather than trusting the stored list.
func (r *Resolver) authorBooks(ctx context.Context, a *authormodel.Author, _ executor.Args) (any, error) {
	return r.books.ListByAuthor(ctx, a.ID)
}

func (r *Resolver) userFields() map[string]executor.FieldFunc[*usermodel.User] {
	type fn = executor.FieldFunc[*usermodel.User]
	return map[string]fn{
		"id":             func(_ context.Context, u *usermodel.User, _ executor.Args) (any, error) { return u.ID, nil },
		"firstName":      func(_ context.Context, u *usermodel.User, _ executor.Args) (any, error) { return u.FirstName, nil },
		"lastName":       func(_ context.Context, u *usermodel.User, _ executor.Args) (any, error) { return u.LastName, nil },
		"email":          func(_ context.Context, u *usermodel.User, _ executor.Args) (any, error) { return u.Email, nil },
		"password":       func(_ context.Context, u *usermodel.User, _ executor.Args) (any, error) { return u.Password, nil },
		"profilePicture": func(_ context.Context, u *usermodel.User, _ executor.Args) (any, error) { return u.ProfilePicture, nil },
		"phone":          func(_ context.Context, u *usermodel.User, _ executor.Args) (any, error) { return u.Phone, nil },
	}
}
