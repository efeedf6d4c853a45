package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// User is the stored user record. The exposed shape has only optional strings;
// users are created by the seeder since registration is not implemented.
type User struct {
	ID             uuid.UUID `json:"id" db:"id"`
	FirstName      string    `json:"first_name" db:"first_name"`
	LastName       string    `json:"last_name" db:"last_name"`
	Email          string    `json:"email" db:"email"`
	Password       string    `json:"password" db:"password"`
	ProfilePicture string    `json:"profile_picture" db:"profile_picture"`
	Phone          string    `json:"phone" db:"phone"`
	IsDeleted      bool      `json:"is_deleted" db:"is_deleted"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// UserFilter selects users for Find. Nil fields do not filter.
type UserFilter struct {
	IsDeleted *bool
}

func (f UserFilter) Match(u User) bool {
	if f.IsDeleted != nil && u.IsDeleted != *f.IsDeleted {
		return false
	}
	return true
}

// CreateUserInput is used by the demo data seeder.
type CreateUserInput struct {
	FirstName      string
	LastName       string
	Email          string
	Password       string
	ProfilePicture string
	Phone          string
}

func (in CreateUserInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Email, validation.Required, is.EmailFormat),
		validation.Field(&in.FirstName, validation.Length(0, 100)),
		validation.Field(&in.LastName, validation.Length(0, 100)),
	)
}

func (in CreateUserInput) ToEntity() *User {
	return &User{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		Password:       in.Password,
		ProfilePicture: in.ProfilePicture,
		Phone:          in.Phone,
	}
}
