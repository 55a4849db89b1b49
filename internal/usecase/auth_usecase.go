package usecase

import (
	"context"
	"strings"
	"time"

	"swapbook/internal/domain/entity"
	"swapbook/internal/domain/repository"
	"swapbook/pkg/errors"
	"swapbook/pkg/logger"
)

type AuthUseCase struct {
	profileRepo repository.ProfileRepository
}

func NewAuthUseCase(profileRepo repository.ProfileRepository) *AuthUseCase {
	return &AuthUseCase{
		profileRepo: profileRepo,
	}
}

// EnsureSession loads the profile for a verified identity, creating
// it with default ratings on first sign-in.
func (uc *AuthUseCase) EnsureSession(ctx context.Context, identity *Identity) (*entity.Profile, error) {
	profile, err := uc.profileRepo.Get(ctx, identity.UID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	profile = &entity.Profile{
		UID:          identity.UID,
		Name:         identity.Name,
		Photo:        identity.Photo,
		Email:        identity.Email,
		Rating:       entity.DefaultRating,
		RatingsCount: entity.DefaultRatingsCount,
		CreatedAt:    time.Now(),
	}

	if err := uc.profileRepo.Set(ctx, profile); err != nil {
		return nil, err
	}

	logger.Info("Created profile for %s", identity.UID)
	return profile, nil
}

func (uc *AuthUseCase) Profile(ctx context.Context, uid string) (*entity.Profile, error) {
	return uc.profileRepo.Get(ctx, uid)
}

// ChangeCity updates the session city. An empty city is rejected
// before anything is written.
func (uc *AuthUseCase) ChangeCity(ctx context.Context, uid, city string) (*entity.Profile, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, errors.BadRequest("City must not be empty", nil)
	}

	if err := uc.profileRepo.UpdateCity(ctx, uid, city); err != nil {
		return nil, err
	}

	return uc.profileRepo.Get(ctx, uid)
}
