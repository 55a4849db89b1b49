package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swapbook/internal/domain/entity"
)

func TestLocalProfileRoundTrip(t *testing.T) {
	store := newTestStore(t)

	repo, err := NewLocalProfileRepository(store)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, &entity.Profile{
		UID:    "u1",
		Name:   "Ana",
		City:   "X",
		Rating: entity.DefaultRating,
	}))

	reopened, err := NewLocalProfileRepository(store)
	require.NoError(t, err)

	profile, err := reopened.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", profile.Name)
	assert.Equal(t, "X", profile.City)
	assert.False(t, profile.CreatedAt.IsZero())
}

func TestLocalProfileUpdateCity(t *testing.T) {
	store := newTestStore(t)

	repo, err := NewLocalProfileRepository(store)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, repo.Set(ctx, &entity.Profile{UID: "u1", Name: "Ana", City: "X"}))
	require.NoError(t, repo.UpdateCity(ctx, "u1", "Y"))

	profile, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Y", profile.City)

	assert.Error(t, repo.UpdateCity(ctx, "nobody", "Z"))
}

func TestLocalProfileGetMissing(t *testing.T) {
	store := newTestStore(t)

	repo, err := NewLocalProfileRepository(store)
	require.NoError(t, err)

	_, err = repo.Get(context.Background(), "ghost")
	assert.Error(t, err)
}
