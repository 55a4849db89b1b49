package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"swapbook/internal/domain/entity"
	ws "swapbook/internal/infrastructure/websocket"
	"swapbook/pkg/errors"
)

// In-memory repository fakes so usecases are exercised without any
// network or storage dependency.

type fakeListingRepo struct {
	listings []*entity.Listing
	nextID   int
}

func (f *fakeListingRepo) Create(ctx context.Context, listing *entity.Listing) error {
	if listing.ID == "" {
		f.nextID++
		listing.ID = fmt.Sprintf("listing-%d", f.nextID)
	}
	listing.CreatedAt = time.Now()
	f.listings = append([]*entity.Listing{listing}, f.listings...)
	return nil
}

func (f *fakeListingRepo) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	for _, l := range f.listings {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, errors.NotFound("Listing", nil)
}

func (f *fakeListingRepo) List(ctx context.Context) ([]*entity.Listing, error) {
	return f.listings, nil
}

func (f *fakeListingRepo) Watch(ctx context.Context, fn func([]*entity.Listing)) (func(), error) {
	fn(f.listings)
	return func() {}, nil
}

type fakeProfileRepo struct {
	profiles map[string]*entity.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*entity.Profile)}
}

func (f *fakeProfileRepo) Get(ctx context.Context, uid string) (*entity.Profile, error) {
	profile, ok := f.profiles[uid]
	if !ok {
		return nil, errors.NotFound("Profile", nil)
	}
	copied := *profile
	return &copied, nil
}

func (f *fakeProfileRepo) Set(ctx context.Context, profile *entity.Profile) error {
	copied := *profile
	f.profiles[profile.UID] = &copied
	return nil
}

func (f *fakeProfileRepo) UpdateCity(ctx context.Context, uid, city string) error {
	profile, ok := f.profiles[uid]
	if !ok {
		return errors.NotFound("Profile", nil)
	}
	profile.City = city
	return nil
}

type fakeChatRepo struct {
	chats    map[string]*entity.Chat
	messages map[string][]*entity.Message
	nextID   int
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{
		chats:    make(map[string]*entity.Chat),
		messages: make(map[string][]*entity.Message),
	}
}

func (f *fakeChatRepo) Ensure(ctx context.Context, chat *entity.Chat) error {
	if existing, ok := f.chats[chat.ID]; ok {
		*chat = *existing
		return nil
	}
	chat.CreatedAt = time.Now()
	copied := *chat
	f.chats[chat.ID] = &copied
	return nil
}

func (f *fakeChatRepo) GetByID(ctx context.Context, id string) (*entity.Chat, error) {
	chat, ok := f.chats[id]
	if !ok {
		return nil, errors.NotFound("Chat", nil)
	}
	return chat, nil
}

func (f *fakeChatRepo) AppendMessage(ctx context.Context, chatID string, message *entity.Message) error {
	f.nextID++
	message.ID = fmt.Sprintf("message-%d", f.nextID)
	message.CreatedAt = time.Now()
	f.messages[chatID] = append(f.messages[chatID], message)
	return nil
}

func (f *fakeChatRepo) ListMessages(ctx context.Context, chatID string) ([]*entity.Message, error) {
	return f.messages[chatID], nil
}

func newTestManager(t *testing.T) *ws.Manager {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	m := ws.NewManager()
	m.Start(ctx)
	return m
}
