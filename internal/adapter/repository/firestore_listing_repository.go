package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"swapbook/internal/domain/entity"
	"swapbook/internal/domain/repository"
	"swapbook/pkg/errors"
	"swapbook/pkg/logger"
)

type firestoreListingRepository struct {
	client *firestore.Client
}

func NewFirestoreListingRepository(client *firestore.Client) repository.ListingRepository {
	return &firestoreListingRepository{
		client: client,
	}
}

func (r *firestoreListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	if listing.ID == "" {
		doc := r.client.Collection("objects").NewDoc()
		listing.ID = doc.ID
	}

	// Timestamp is attached at write time, never taken from input.
	listing.CreatedAt = time.Now()

	_, err := r.client.Collection("objects").Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to create listing", err)
	}

	return nil
}

func (r *firestoreListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	doc, err := r.client.Collection("objects").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Listing", err)
		}
		return nil, errors.Internal("Failed to get listing", err)
	}

	var listing entity.Listing
	if err := doc.DataTo(&listing); err != nil {
		return nil, errors.Internal("Failed to parse listing data", err)
	}

	return &listing, nil
}

func (r *firestoreListingRepository) List(ctx context.Context) ([]*entity.Listing, error) {
	iter := r.listingQuery().Documents(ctx)

	var listings []*entity.Listing
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate listings", err)
		}

		var listing entity.Listing
		if err := doc.DataTo(&listing); err != nil {
			return nil, errors.Internal("Failed to parse listing data", err)
		}
		listings = append(listings, &listing)
	}

	return listings, nil
}

// Watch streams the full ordered listing set on every collection
// change. A failed stream is logged and the subscription ends; the
// caller's view simply goes stale until a new subscription is made.
func (r *firestoreListingRepository) Watch(ctx context.Context, fn func([]*entity.Listing)) (func(), error) {
	ctx, cancel := context.WithCancel(ctx)
	snapshots := r.listingQuery().Snapshots(ctx)

	go func() {
		defer snapshots.Stop()
		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					logger.Error("Listing watch failed: %v", err)
				}
				return
			}

			docs, err := snap.Documents.GetAll()
			if err != nil {
				logger.Error("Listing watch read failed: %v", err)
				continue
			}

			listings := make([]*entity.Listing, 0, len(docs))
			for _, doc := range docs {
				var listing entity.Listing
				if err := doc.DataTo(&listing); err != nil {
					logger.Warn("Skipping unparsable listing %s: %v", doc.Ref.ID, err)
					continue
				}
				listings = append(listings, &listing)
			}

			fn(listings)
		}
	}()

	return cancel, nil
}

func (r *firestoreListingRepository) listingQuery() firestore.Query {
	return r.client.Collection("objects").OrderBy("createdAt", firestore.Desc)
}
