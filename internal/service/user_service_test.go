package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"socialpod/internal/models"
	"socialpod/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts with default role and badge", func(t *testing.T) {
		repo := noopUserRepo()
		var stored *models.User
		repo.createFn = func(_ context.Context, u *models.User) (models.InsertResult, error) {
			stored = u
			return models.InsertResult{Acknowledged: true, InsertedID: "x"}, nil
		}
		svc := NewUserService(repo)

		res, err := svc.CreateUser(ctx, CreateUserInput{Email: " ada@example.com ", Name: "Ada"})
		require.NoError(t, err)
		assert.True(t, res.Acknowledged)
		require.NotNil(t, stored)
		assert.Equal(t, "ada@example.com", stored.Email)
		assert.Equal(t, models.RoleUser, stored.Role)
		assert.Equal(t, models.BadgeNone, stored.Badge)
	})

	t.Run("existing email", func(t *testing.T) {
		repo := noopUserRepo()
		repo.getByEmailFn = func(context.Context, string) (*models.User, error) {
			return &models.User{Email: "ada@example.com"}, nil
		}
		repo.createFn = func(context.Context, *models.User) (models.InsertResult, error) {
			t.Fatal("create must not be called")
			return models.InsertResult{}, nil
		}
		_, err := NewUserService(repo).CreateUser(ctx, CreateUserInput{Email: "ada@example.com", Name: "Ada"})
		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("insert race resolves to exists", func(t *testing.T) {
		repo := noopUserRepo()
		repo.createFn = func(context.Context, *models.User) (models.InsertResult, error) {
			return models.InsertResult{}, repository.ErrDuplicateKey
		}
		_, err := NewUserService(repo).CreateUser(ctx, CreateUserInput{Email: "ada@example.com", Name: "Ada"})
		assert.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := NewUserService(noopUserRepo()).CreateUser(ctx, CreateUserInput{Email: "nope", Name: "Ada"})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, models.HTTPStatus(err))
	})

	t.Run("store failure is internal", func(t *testing.T) {
		repo := noopUserRepo()
		repo.getByEmailFn = func(context.Context, string) (*models.User, error) {
			return nil, errors.New("connection reset")
		}
		_, err := NewUserService(repo).CreateUser(ctx, CreateUserInput{Email: "ada@example.com", Name: "Ada"})
		assert.Equal(t, http.StatusInternalServerError, models.HTTPStatus(err))
	})
}

func TestUserService_IsAdmin(t *testing.T) {
	ctx := context.Background()
	repo := noopUserRepo()
	repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
		if email == "root@example.com" {
			return &models.User{Email: email, Role: models.RoleAdmin}, nil
		}
		return nil, repository.ErrNotFound
	}
	svc := NewUserService(repo)

	ok, err := svc.IsAdmin(ctx, "root@example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsAdmin(ctx, "ghost@example.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUserService_SetAdmin(t *testing.T) {
	ctx := context.Background()
	repo := noopUserRepo()
	var gotRole string
	repo.setRoleFn = func(_ context.Context, _ string, role string) (models.UpdateResult, error) {
		gotRole = role
		return updated(1), nil
	}
	svc := NewUserService(repo)

	_, err := svc.SetAdmin(ctx, "not-an-id")
	assert.Equal(t, http.StatusBadRequest, models.HTTPStatus(err))
	assert.Empty(t, gotRole)

	res, err := svc.SetAdmin(ctx, models.NewID())
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.ModifiedCount)
	assert.Equal(t, models.RoleAdmin, gotRole)
}

func TestUserService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("creates admin", func(t *testing.T) {
		repo := noopUserRepo()
		var role string
		repo.createFn = func(_ context.Context, u *models.User) (models.InsertResult, error) {
			role = u.Role
			return models.InsertResult{Acknowledged: true}, nil
		}
		require.NoError(t, NewUserService(repo).EnsureAdmin(ctx, "root@example.com", "Root"))
		assert.Equal(t, models.RoleAdmin, role)
	})

	t.Run("promotes existing user", func(t *testing.T) {
		repo := noopUserRepo()
		repo.createFn = func(context.Context, *models.User) (models.InsertResult, error) {
			return models.InsertResult{}, repository.ErrDuplicateKey
		}
		promoted := ""
		repo.setRoleByEmailFn = func(_ context.Context, email, _ string) (models.UpdateResult, error) {
			promoted = email
			return updated(1), nil
		}
		require.NoError(t, NewUserService(repo).EnsureAdmin(ctx, "root@example.com", "Root"))
		assert.Equal(t, "root@example.com", promoted)
	})
}

func TestUserService_PromoteByEmail_Unknown(t *testing.T) {
	repo := noopUserRepo()
	repo.setRoleByEmailFn = func(context.Context, string, string) (models.UpdateResult, error) {
		return models.UpdateResult{Acknowledged: true}, nil
	}
	_, err := NewUserService(repo).PromoteByEmail(context.Background(), "ghost@example.com")
	assert.Equal(t, http.StatusNotFound, models.HTTPStatus(err))
}

func TestUserService_Badge(t *testing.T) {
	ctx := context.Background()
	repo := noopUserRepo()
	svc := NewUserService(repo)

	badge, err := svc.Badge(ctx, "ghost@example.com")
	require.NoError(t, err)
	assert.Nil(t, badge)

	repo.getByEmailFn = func(_ context.Context, email string) (*models.User, error) {
		return &models.User{Email: email, Badge: models.BadgeGold}, nil
	}
	badge, err = svc.Badge(ctx, "ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, badge)
	assert.Equal(t, models.BadgeGold, badge.Badge)
}
