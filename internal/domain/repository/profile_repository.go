package repository

import (
	"context"

	"swapbook/internal/domain/entity"
)

type ProfileRepository interface {
	Get(ctx context.Context, uid string) (*entity.Profile, error)
	Set(ctx context.Context, profile *entity.Profile) error
	UpdateCity(ctx context.Context, uid, city string) error
}
