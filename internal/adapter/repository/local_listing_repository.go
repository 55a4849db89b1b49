package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"swapbook/internal/domain/entity"
	"swapbook/internal/domain/repository"
	"swapbook/internal/infrastructure/localcache"
	"swapbook/pkg/errors"
	"swapbook/pkg/logger"
)

// localListingRepository keeps the listing set in a file-backed cache
// under the swapbook_objects key, the standalone iteration of the app
// that runs without Firestore. The whole set is serialized back on
// every write, and records written by older cache versions are
// migrated once at load.
type localListingRepository struct {
	store *localcache.Store

	mutex       sync.RWMutex
	listings    []*entity.Listing
	subscribers map[int]func([]*entity.Listing)
	nextSubID   int
}

func NewLocalListingRepository(store *localcache.Store) (repository.ListingRepository, error) {
	r := &localListingRepository{
		store:       store,
		subscribers: make(map[int]func([]*entity.Listing)),
	}

	if _, err := store.Get(localcache.KeyObjects, &r.listings); err != nil {
		return nil, errors.Internal("Failed to load cached listings", err)
	}

	if err := r.migrate(); err != nil {
		return nil, err
	}

	return r, nil
}

// migrate upgrades cached records to the current schema exactly once,
// keyed on the stored schema version.
func (r *localListingRepository) migrate() error {
	var version int
	found, err := r.store.Get(localcache.KeySchemaVersion, &version)
	if err != nil {
		return errors.Internal("Failed to read cache schema version", err)
	}

	if found && version >= entity.ListingSchemaVersion {
		return nil
	}

	if entity.MigrateListings(r.listings) {
		logger.Info("Migrated cached listings to schema version %d", entity.ListingSchemaVersion)
		if err := r.store.Set(localcache.KeyObjects, r.listings); err != nil {
			return errors.Internal("Failed to persist migrated listings", err)
		}
	}

	if err := r.store.Set(localcache.KeySchemaVersion, entity.ListingSchemaVersion); err != nil {
		return errors.Internal("Failed to persist cache schema version", err)
	}

	return nil
}

func (r *localListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	if listing.ID == "" {
		listing.ID = uuid.New().String()
	}
	listing.CreatedAt = time.Now()

	r.mutex.Lock()
	// Newest first, matching the remote collection ordering.
	r.listings = append([]*entity.Listing{listing}, r.listings...)
	snapshot := r.snapshotLocked()
	err := r.store.Set(localcache.KeyObjects, r.listings)
	r.mutex.Unlock()

	if err != nil {
		return errors.Internal("Failed to persist listings", err)
	}

	r.notify(snapshot)
	return nil
}

func (r *localListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, l := range r.listings {
		if l.ID == id {
			copied := *l
			return &copied, nil
		}
	}

	return nil, errors.NotFound("Listing", nil)
}

func (r *localListingRepository) List(ctx context.Context) ([]*entity.Listing, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return r.snapshotLocked(), nil
}

func (r *localListingRepository) Watch(ctx context.Context, fn func([]*entity.Listing)) (func(), error) {
	r.mutex.Lock()
	id := r.nextSubID
	r.nextSubID++
	r.subscribers[id] = fn
	snapshot := r.snapshotLocked()
	r.mutex.Unlock()

	// Deliver the current set immediately, like a remote snapshot
	// listener does.
	fn(snapshot)

	unsubscribe := func() {
		r.mutex.Lock()
		delete(r.subscribers, id)
		r.mutex.Unlock()
	}

	return unsubscribe, nil
}

func (r *localListingRepository) snapshotLocked() []*entity.Listing {
	snapshot := make([]*entity.Listing, len(r.listings))
	copy(snapshot, r.listings)
	return snapshot
}

func (r *localListingRepository) notify(snapshot []*entity.Listing) {
	r.mutex.RLock()
	subs := make([]func([]*entity.Listing), 0, len(r.subscribers))
	for _, fn := range r.subscribers {
		subs = append(subs, fn)
	}
	r.mutex.RUnlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}
