package repository

import (
	"context"
	"testing"

	"socialpod/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateDuplicate(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	res, err := store.Users.Create(ctx, &models.User{Email: "a@x.io", Name: "Ada", Role: models.RoleUser, Badge: models.BadgeNone})
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)

	_, err = store.Users.Create(ctx, &models.User{Email: "a@x.io", Name: "Again"})
	assert.ErrorIs(t, err, ErrDuplicateKey)

	n, err := store.Users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.Users.GetByEmail(ctx, "nobody@x.io")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Users.Create(ctx, &models.User{Email: "a@x.io", Name: "Ada"})
	require.NoError(t, err)

	u, err := store.Users.GetByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.Name)
	assert.Equal(t, models.RoleUser, u.Role)
	assert.Equal(t, models.BadgeNone, u.Badge)
}

func TestUserRepository_ListSearch(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Ada Lovelace", "Grace Hopper", "ada_bot", "100% Ada"} {
		_, err := store.Users.Create(ctx, &models.User{Email: name + "@x.io", Name: name})
		require.NoError(t, err)
	}

	all, err := store.Users.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	ada, err := store.Users.List(ctx, "ADA")
	require.NoError(t, err)
	assert.Len(t, ada, 3)

	literal, err := store.Users.List(ctx, "a_b")
	require.NoError(t, err)
	require.Len(t, literal, 1)
	assert.Equal(t, "ada_bot", literal[0].Name)

	percent, err := store.Users.List(ctx, "0% a")
	require.NoError(t, err)
	require.Len(t, percent, 1)
	assert.Equal(t, "100% Ada", percent[0].Name)
}

func TestUserRepository_RoleAndBadge(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	res, err := store.Users.Create(ctx, &models.User{Email: "a@x.io", Name: "Ada"})
	require.NoError(t, err)

	upd, err := store.Users.SetRole(ctx, res.InsertedID, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), upd.MatchedCount)

	admins, err := store.Users.ListByRole(ctx, models.RoleAdmin)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "a@x.io", admins[0].Email)

	upd, err = store.Users.SetBadge(ctx, "a@x.io", models.BadgeGold)
	require.NoError(t, err)
	assert.Equal(t, int64(1), upd.MatchedCount)

	u, err := store.Users.GetByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.True(t, u.IsAdmin())
	assert.Equal(t, models.BadgeGold, u.Badge)

	upd, err = store.Users.SetBadge(ctx, "ghost@x.io", models.BadgeGold)
	require.NoError(t, err)
	assert.Zero(t, upd.MatchedCount)

	upd, err = store.Users.SetRoleByEmail(ctx, "a@x.io", models.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, int64(1), upd.MatchedCount)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\_b\%c\\d`, EscapeLike(`a_b%c\d`))
	assert.Equal(t, "plain", EscapeLike("plain"))
}
