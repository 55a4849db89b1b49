package repository

import (
	"context"

	"swapbook/internal/domain/entity"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	// List returns the full listing set ordered by creation time
	// descending.
	List(ctx context.Context) ([]*entity.Listing, error)
	// Watch invokes fn with the full ordered listing set on every
	// change until the returned unsubscribe func is called.
	Watch(ctx context.Context, fn func([]*entity.Listing)) (func(), error)
}
