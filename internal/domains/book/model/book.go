package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Book is the stored book record. AuthorID is the canonical Book→Author relation.
type Book struct {
	ID                uuid.UUID  `json:"id" db:"id"`
	Title             string     `json:"title" db:"title"`
	Pages             int        `json:"pages" db:"pages"`
	AuthorID          uuid.UUID  `json:"author_id" db:"author_id"`
	YearOfPublication *time.Time `json:"year_of_publication,omitempty" db:"year_of_publication"`
	IsDeleted         bool       `json:"is_deleted" db:"is_deleted"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at" db:"updated_at"`
}

func (b Book) Clone() Book {
	if b.YearOfPublication != nil {
		t := *b.YearOfPublication
		b.YearOfPublication = &t
	}
	return b
}

// BookFilter selects books for Find. Nil fields do not filter.
type BookFilter struct {
	AuthorID  *uuid.UUID
	IsDeleted *bool
}

func (f BookFilter) Match(b Book) bool {
	if f.AuthorID != nil && b.AuthorID != *f.AuthorID {
		return false
	}
	if f.IsDeleted != nil && b.IsDeleted != *f.IsDeleted {
		return false
	}
	return true
}

// BookPatch is a partial update; only non-nil fields are written.
type BookPatch struct {
	Title     *string
	Pages     *int
	AuthorID  *uuid.UUID
	IsDeleted *bool
}

func (p BookPatch) IsEmpty() bool {
	return p.Title == nil && p.Pages == nil && p.AuthorID == nil && p.IsDeleted == nil
}

func (p BookPatch) Apply(b Book) Book {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Pages != nil {
		b.Pages = *p.Pages
	}
	if p.AuthorID != nil {
		b.AuthorID = *p.AuthorID
	}
	if p.IsDeleted != nil {
		b.IsDeleted = *p.IsDeleted
	}
	return b
}

// CreateBookInput carries the createBook mutation arguments.
// A nil YearOfPublication is allowed: the Date codec maps unsupported literals to null.
type CreateBookInput struct {
	Title             string
	Pages             int
	AuthorID          uuid.UUID
	YearOfPublication *time.Time
}

func (in CreateBookInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required.Error("title is required")),
		validation.Field(&in.AuthorID, validation.By(func(value interface{}) error {
			if id, _ := value.(uuid.UUID); id == uuid.Nil {
				return validation.NewError("validation_required", "author is required")
			}
			return nil
		})),
	)
}

func (in CreateBookInput) ToEntity() *Book {
	return &Book{
		Title:             in.Title,
		Pages:             in.Pages,
		AuthorID:          in.AuthorID,
		YearOfPublication: in.YearOfPublication,
	}
}

// UpdateBookInput carries the updateBook mutation arguments.
type UpdateBookInput struct {
	Title    *string
	Pages    *int
	AuthorID *uuid.UUID
}

func (in UpdateBookInput) ToPatch() BookPatch {
	return BookPatch{
		Title:    in.Title,
		Pages:    in.Pages,
		AuthorID: in.AuthorID,
	}
}
