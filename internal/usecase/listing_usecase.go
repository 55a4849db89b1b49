package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"swapbook/internal/domain/entity"
	"swapbook/internal/domain/repository"
	"swapbook/internal/domain/service"
	"swapbook/internal/infrastructure/ratelimit"
	ws "swapbook/internal/infrastructure/websocket"
	"swapbook/pkg/errors"
	"swapbook/pkg/logger"
)

type ListingUseCase struct {
	listingRepo repository.ListingRepository
	profileRepo repository.ProfileRepository
	wsManager   *ws.Manager
	rateLimiter *ratelimit.RateLimiter
}

func NewListingUseCase(
	listingRepo repository.ListingRepository,
	profileRepo repository.ProfileRepository,
	wsManager *ws.Manager,
) *ListingUseCase {
	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	return &ListingUseCase{
		listingRepo: listingRepo,
		profileRepo: profileRepo,
		wsManager:   wsManager,
		rateLimiter: rateLimiter,
	}
}

type PublishInput struct {
	Text              string
	Image             string
	Category          string
	Types             []string
	City              string
	RequestedFeatured bool
}

// listingEvent is the push notification fanned out to every
// subscribed session when the listing set changes.
type listingEvent struct {
	Event   string          `json:"event"`
	Listing *entity.Listing `json:"listing"`
}

// Publish validates a draft and appends it to the listing set. A
// rejected draft writes nothing. Featured is always false on a fresh
// listing no matter what the caller sent; RequestedFeatured only
// records intent for the manual PIX follow-up.
func (uc *ListingUseCase) Publish(ctx context.Context, ownerUID string, input PublishInput) (*entity.Listing, error) {
	allowed, _ := uc.rateLimiter.Allow(ownerUID, "publish_listing")
	if !allowed {
		return nil, errors.TooManyRequests("Too many listings published, slow down")
	}

	if err := validateDraft(input); err != nil {
		return nil, err
	}

	owner, err := uc.profileRepo.Get(ctx, ownerUID)
	if err != nil {
		return nil, errors.BadRequest("Invalid owner", err)
	}

	listing := &entity.Listing{
		Text:              strings.TrimSpace(input.Text),
		Image:             input.Image,
		Category:          input.Category,
		Types:             input.Types,
		City:              input.City,
		OwnerID:           owner.UID,
		OwnerName:         owner.Name,
		OwnerPhoto:        owner.Photo,
		Featured:          false,
		RequestedFeatured: input.RequestedFeatured,
	}

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		logger.Error("Failed to publish listing for %s: %v", ownerUID, err)
		return nil, err
	}

	uc.broadcast(listing)
	return listing, nil
}

func validateDraft(input PublishInput) error {
	if strings.TrimSpace(input.Text) == "" {
		return errors.BadRequest("Description is required", nil)
	}
	if input.Image == "" {
		return errors.BadRequest("Image is required", nil)
	}
	if strings.TrimSpace(input.City) == "" {
		return errors.BadRequest("City is required", nil)
	}
	if len(input.Types) == 0 {
		return errors.BadRequest("Select at least one offer type", nil)
	}
	for _, t := range input.Types {
		if !entity.ValidListingType(t) {
			return errors.BadRequest("Unknown offer type: "+t, nil)
		}
	}
	if !entity.ValidCategory(input.Category) {
		return errors.BadRequest("Unknown category: "+input.Category, nil)
	}
	return nil
}

func (uc *ListingUseCase) broadcast(listing *entity.Listing) {
	payload, err := json.Marshal(listingEvent{
		Event:   "listing.published",
		Listing: listing,
	})
	if err != nil {
		logger.Error("Failed to encode listing event: %v", err)
		return
	}
	uc.wsManager.Broadcast(payload)
}

// Listings returns the full set, newest first.
func (uc *ListingUseCase) Listings(ctx context.Context) ([]*entity.Listing, error) {
	return uc.listingRepo.List(ctx)
}

// Feed returns the filtered, featured-first view of the listing set.
func (uc *ListingUseCase) Feed(ctx context.Context, params service.FeedParams) ([]*entity.Listing, error) {
	listings, err := uc.listingRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return service.Feed(listings, params), nil
}

// Subscribe attaches a listing-set watcher, forwarding each update to
// the given session over the websocket. The returned func detaches
// the watcher and must be called on teardown.
func (uc *ListingUseCase) Subscribe(ctx context.Context, userID string) (func(), error) {
	return uc.listingRepo.Watch(ctx, func(listings []*entity.Listing) {
		payload, err := json.Marshal(map[string]interface{}{
			"event":    "listings.snapshot",
			"listings": listings,
		})
		if err != nil {
			logger.Error("Failed to encode listings snapshot: %v", err)
			return
		}
		uc.wsManager.SendToUser(userID, payload)
	})
}
