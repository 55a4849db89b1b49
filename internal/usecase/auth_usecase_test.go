package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swapbook/internal/domain/entity"
)

func TestEnsureSessionCreatesProfileWithDefaults(t *testing.T) {
	profiles := newFakeProfileRepo()
	uc := NewAuthUseCase(profiles)

	profile, err := uc.EnsureSession(context.Background(), &Identity{
		UID:   "u1",
		Name:  "Ana",
		Photo: "https://example.com/ana.png",
		Email: "ana@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "u1", profile.UID)
	assert.Equal(t, "Ana", profile.Name)
	assert.EqualValues(t, entity.DefaultRating, profile.Rating)
	assert.Equal(t, entity.DefaultRatingsCount, profile.RatingsCount)
	assert.False(t, profile.CreatedAt.IsZero())
}

func TestEnsureSessionReturnsExistingProfile(t *testing.T) {
	profiles := newFakeProfileRepo()
	require.NoError(t, profiles.Set(context.Background(), &entity.Profile{
		UID:    "u1",
		Name:   "Ana",
		City:   "X",
		Rating: 4.2,
	}))

	uc := NewAuthUseCase(profiles)

	// Identity claims do not overwrite the stored profile.
	profile, err := uc.EnsureSession(context.Background(), &Identity{UID: "u1", Name: "Renamed"})
	require.NoError(t, err)

	assert.Equal(t, "Ana", profile.Name)
	assert.Equal(t, "X", profile.City)
	assert.Equal(t, 4.2, profile.Rating)
}

func TestChangeCity(t *testing.T) {
	profiles := newFakeProfileRepo()
	require.NoError(t, profiles.Set(context.Background(), &entity.Profile{UID: "u1", Name: "Ana", City: "X"}))

	uc := NewAuthUseCase(profiles)

	profile, err := uc.ChangeCity(context.Background(), "u1", "Y")
	require.NoError(t, err)
	assert.Equal(t, "Y", profile.City)
}

func TestChangeCityRejectsEmpty(t *testing.T) {
	profiles := newFakeProfileRepo()
	require.NoError(t, profiles.Set(context.Background(), &entity.Profile{UID: "u1", Name: "Ana", City: "X"}))

	uc := NewAuthUseCase(profiles)

	_, err := uc.ChangeCity(context.Background(), "u1", "   ")
	assert.Error(t, err)

	// Nothing was written.
	profile, err := uc.Profile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "X", profile.City)
}
