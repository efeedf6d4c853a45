package service

import (
	"context"
	"testing"

	"bookshelf-graphql/internal/domains/user/model"
	"bookshelf-graphql/internal/domains/user/repository"
	"bookshelf-graphql/internal/shared/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserByID(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(repository.NewMemoryRepository())

	created, err := svc.Create(ctx, model.CreateUserInput{FirstName: "Ada", Email: "ada@x.com", Phone: "555"})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.FirstName)
	assert.Equal(t, "555", got.Phone)

	_, err = svc.GetByID(ctx, uuid.New())
	require.Error(t, err)
	assert.Equal(t, "could not find user by the provided id", err.Error())
	assert.Equal(t, apperror.CodeNotFound, apperror.CodeOf(err))
}

func TestListActiveUsers(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(repository.NewMemoryRepository())

	users, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	for _, email := range []string{"a@x.com", "b@x.com"} {
		_, err := svc.Create(ctx, model.CreateUserInput{Email: email})
		require.NoError(t, err)
	}

	users, err = svc.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a@x.com", users[0].Email)
}

func TestCreateUserValidatesEmail(t *testing.T) {
	svc := NewUserService(repository.NewMemoryRepository())

	_, err := svc.Create(context.Background(), model.CreateUserInput{Email: "not-an-email"})
	require.Error(t, err)
	assert.Equal(t, apperror.CodeValidationFailure, apperror.CodeOf(err))
}

func TestRegisterIsUnimplemented(t *testing.T) {
	svc := NewUserService(repository.NewMemoryRepository())

	u, err := svc.Register(context.Background())
	assert.Nil(t, u)
	assert.ErrorIs(t, err, apperror.ErrUnimplemented)
}
