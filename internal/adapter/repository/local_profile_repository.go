package repository

import (
	"context"
	"sync"
	"time"

	"swapbook/internal/domain/entity"
	"swapbook/internal/domain/repository"
	"swapbook/internal/infrastructure/localcache"
	"swapbook/pkg/errors"
)

// localProfileRepository persists profiles under the swapbook_user
// key. The original cache format stored a single profile-lite (name
// and city); this keeps one record per uid so the stub login can
// serve more than one identity from the same cache file.
type localProfileRepository struct {
	store *localcache.Store

	mutex    sync.RWMutex
	profiles map[string]*entity.Profile
}

func NewLocalProfileRepository(store *localcache.Store) (repository.ProfileRepository, error) {
	r := &localProfileRepository{
		store:    store,
		profiles: make(map[string]*entity.Profile),
	}

	if _, err := store.Get(localcache.KeyUser, &r.profiles); err != nil {
		return nil, errors.Internal("Failed to load cached profiles", err)
	}
	if r.profiles == nil {
		r.profiles = make(map[string]*entity.Profile)
	}

	return r, nil
}

func (r *localProfileRepository) Get(ctx context.Context, uid string) (*entity.Profile, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	profile, ok := r.profiles[uid]
	if !ok {
		return nil, errors.NotFound("Profile", nil)
	}

	copied := *profile
	return &copied, nil
}

func (r *localProfileRepository) Set(ctx context.Context, profile *entity.Profile) error {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now()
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	copied := *profile
	r.profiles[profile.UID] = &copied

	if err := r.store.Set(localcache.KeyUser, r.profiles); err != nil {
		return errors.Internal("Failed to persist profiles", err)
	}

	return nil
}

func (r *localProfileRepository) UpdateCity(ctx context.Context, uid, city string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	profile, ok := r.profiles[uid]
	if !ok {
		return errors.NotFound("Profile", nil)
	}

	profile.City = city

	if err := r.store.Set(localcache.KeyUser, r.profiles); err != nil {
		return errors.Internal("Failed to persist profiles", err)
	}

	return nil
}
