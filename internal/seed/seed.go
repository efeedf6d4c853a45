// Package seed loads demo authors, books and users through the domain services,
// so the same rules apply as for GraphQL mutations.
package seed

import (
	"context"
	"fmt"
	"time"

	authormodel "bookshelf-graphql/internal/domains/author/model"
	authorservice "bookshelf-graphql/internal/domains/author/service"
	bookmodel "bookshelf-graphql/internal/domains/book/model"
	bookservice "bookshelf-graphql/internal/domains/book/service"
	usermodel "bookshelf-graphql/internal/domains/user/model"
	userservice "bookshelf-graphql/internal/domains/user/service"

	"github.com/rs/zerolog/log"
)

type demoBook struct {
	Title string
	Pages int
	Year  int
}

type demoAuthor struct {
	Author authormodel.CreateAuthorInput
	Books  []demoBook
}

var demoAuthors = []demoAuthor{
	{
		Author: authormodel.CreateAuthorInput{FirstName: "Frank", LastName: "Herbert", Email: "frank.herbert@example.com", Age: 65},
		Books: []demoBook{
			{Title: "Dune", Pages: 412, Year: 1965},
			{Title: "Dune Messiah", Pages: 256, Year: 1969},
		},
	},
	{
		Author: authormodel.CreateAuthorInput{FirstName: "Ursula", LastName: "Le Guin", Email: "ursula.leguin@example.com", Age: 88},
		Books: []demoBook{
			{Title: "A Wizard of Earthsea", Pages: 183, Year: 1968},
			{Title: "The Left Hand of Darkness", Pages: 286, Year: 1969},
			{Title: "The Dispossessed", Pages: 387, Year: 1974},
		},
	},
	{
		Author: authormodel.CreateAuthorInput{FirstName: "Octavia", LastName: "Butler", Email: "octavia.butler@example.com", Age: 58},
		Books: []demoBook{
			{Title: "Kindred", Pages: 264, Year: 1979},
		},
	},
}

var demoUsers = []usermodel.CreateUserInput{
	{FirstName: "Ada", LastName: "Reader", Email: "ada.reader@example.com", Phone: "+1-555-0100"},
	{FirstName: "Grace", LastName: "Shelf", Email: "grace.shelf@example.com", Phone: "+1-555-0101"},
}

// Result counts the records created by one Run.
type Result struct {
	Authors int
	Books   int
	Users   int
	Skipped bool
}

type Seeder struct {
	authors authorservice.ServiceInterface
	books   bookservice.ServiceInterface
	users   userservice.ServiceInterface
}

func New(
	authors authorservice.ServiceInterface,
	books bookservice.ServiceInterface,
	users userservice.ServiceInterface,
) *Seeder {
	return &Seeder{authors: authors, books: books, users: users}
}

// Run creates the demo data unless active authors already exist and force is false.
func (s *Seeder) Run(ctx context.Context, force bool) (Result, error) {
	var res Result

	if !force {
		existing, err := s.authors.ListActive(ctx)
		if err != nil {
			return res, fmt.Errorf("check existing authors: %w", err)
		}
		if len(existing) > 0 {
			log.Ctx(ctx).Info().Int("authors", len(existing)).Msg("store already has authors, skipping demo data")
			res.Skipped = true
			return res, nil
		}
	}

	for _, da := range demoAuthors {
		a, err := s.authors.Create(ctx, da.Author)
		if err != nil {
			return res, fmt.Errorf("seed author %s %s: %w", da.Author.FirstName, da.Author.LastName, err)
		}
		res.Authors++

		for _, db := range da.Books {
			year := time.Date(db.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
			_, err := s.books.Create(ctx, bookmodel.CreateBookInput{
				Title:             db.Title,
				Pages:             db.Pages,
				AuthorID:          a.ID,
				YearOfPublication: &year,
			})
			if err != nil {
				return res, fmt.Errorf("seed book %q: %w", db.Title, err)
			}
			res.Books++
		}
	}

	for _, du := range demoUsers {
		if _, err := s.users.Create(ctx, du); err != nil {
			return res, fmt.Errorf("seed user %s: %w", du.Email, err)
		}
		res.Users++
	}

	log.Ctx(ctx).Info().
		Int("authors", res.Authors).
		Int("books", res.Books).
		Int("users", res.Users).
		Msg("demo data seeded")
	return res, nil
}
