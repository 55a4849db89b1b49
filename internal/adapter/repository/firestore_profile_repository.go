package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"swapbook/internal/domain/entity"
	"swapbook/internal/domain/repository"
	"swapbook/pkg/errors"
)

type firestoreProfileRepository struct {
	client *firestore.Client
}

func NewFirestoreProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &firestoreProfileRepository{
		client: client,
	}
}

func (r *firestoreProfileRepository) Get(ctx context.Context, uid string) (*entity.Profile, error) {
	doc, err := r.client.Collection("users").Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Profile", err)
		}
		return nil, errors.Internal("Failed to get profile", err)
	}

	var profile entity.Profile
	if err := doc.DataTo(&profile); err != nil {
		return nil, errors.Internal("Failed to parse profile data", err)
	}

	return &profile, nil
}

func (r *firestoreProfileRepository) Set(ctx context.Context, profile *entity.Profile) error {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("users").Doc(profile.UID).Set(ctx, profile)
	if err != nil {
		return errors.Internal("Failed to save profile", err)
	}

	return nil
}

func (r *firestoreProfileRepository) UpdateCity(ctx context.Context, uid, city string) error {
	_, err := r.client.Collection("users").Doc(uid).Set(ctx, map[string]interface{}{
		"city": city,
	}, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to update city", err)
	}

	return nil
}
