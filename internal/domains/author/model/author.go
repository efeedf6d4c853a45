package model

import (
	"slices"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Author is the stored author record.
// Books is a denormalized back-reference list; the authoritative relation is Book.AuthorID.
type Author struct {
	ID        uuid.UUID   `json:"id" db:"id"`
	FirstName string      `json:"first_name" db:"first_name"`
	LastName  string      `json:"last_name" db:"last_name"`
	Email     string      `json:"email" db:"email"`
	Age       int         `json:"age" db:"age"`
	Books     []uuid.UUID `json:"books" db:"books"`
	IsDeleted bool        `json:"is_deleted" db:"is_deleted"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}

// Clone returns a deep copy of a.
func (a Author) Clone() Author {
	a.Books = slices.Clone(a.Books)
	return a
}

// WithBookLinked returns the back-reference list after linking bookID.
// An empty list gets the id appended, a non-empty one gets it prepended.
func (a Author) WithBookLinked(bookID uuid.UUID) []uuid.UUID {
	if len(a.Books) < 1 {
		return append(slices.Clone(a.Books), bookID)
	}
	return append([]uuid.UUID{bookID}, a.Books...)
}

// AuthorFilter selects authors for Find. Nil fields do not filter.
type AuthorFilter struct {
	IsDeleted *bool
}

func (f AuthorFilter) Match(a Author) bool {
	return f.IsDeleted == nil || a.IsDeleted == *f.IsDeleted
}

// AuthorPatch is a partial update; only non-nil fields are written.
type AuthorPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Age       *int
	Books     *[]uuid.UUID
	IsDeleted *bool
}

func (p AuthorPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil &&
		p.Age == nil && p.Books == nil && p.IsDeleted == nil
}

// Apply writes the patch onto a and returns the result.
func (p AuthorPatch) Apply(a Author) Author {
	if p.FirstName != nil {
		a.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		a.LastName = *p.LastName
	}
	if p.Email != nil {
		a.Email = *p.Email
	}
	if p.Age != nil {
		a.Age = *p.Age
	}
	if p.Books != nil {
		a.Books = slices.Clone(*p.Books)
	}
	if p.IsDeleted != nil {
		a.IsDeleted = *p.IsDeleted
	}
	return a
}

// CreateAuthorInput carries the createAuthor mutation arguments.
type CreateAuthorInput struct {
	FirstName string
	LastName  string
	Email     string
	Age       int
}

func (in CreateAuthorInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.FirstName, validation.By(notBlank("firstName"))),
		validation.Field(&in.LastName, validation.By(notBlank("lastName"))),
		validation.Field(&in.Email, validation.By(notBlank("email"))),
	)
}

// ToEntity builds a new Author with an empty back-reference list.
func (in CreateAuthorInput) ToEntity() *Author {
	return &Author{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Age:       in.Age,
		Books:     []uuid.UUID{},
	}
}

// UpdateAuthorInput carries the updateAuthor mutation arguments.
type UpdateAuthorInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Age       *int
}

func (in UpdateAuthorInput) ToPatch() AuthorPatch {
	return AuthorPatch{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Age:       in.Age,
	}
}

func notBlank(field string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return validation.NewError("validation_required", field+" is required")
		}
		return nil
	}
}
