package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swapbook/internal/domain/entity"
)

func newChatFixture(t *testing.T) (*ChatUseCase, *fakeListingRepo, *fakeChatRepo) {
	t.Helper()

	listings := &fakeListingRepo{}
	profiles := newFakeProfileRepo()
	chats := newFakeChatRepo()

	ctx := context.Background()
	require.NoError(t, profiles.Set(ctx, &entity.Profile{UID: "seller", Name: "Ana", City: "X"}))
	require.NoError(t, profiles.Set(ctx, &entity.Profile{UID: "buyer", Name: "Bruno", City: "X"}))
	require.NoError(t, listings.Create(ctx, &entity.Listing{
		ID:       "obj-1",
		Text:     "Bike",
		City:     "X",
		Category: "Veículos",
		Types:    []string{entity.TypeSell},
		OwnerID:  "seller",
	}))

	return NewChatUseCase(chats, listings, profiles, newTestManager(t)), listings, chats
}

func TestOpenChatDerivesDeterministicID(t *testing.T) {
	uc, _, _ := newChatFixture(t)

	chat, err := uc.OpenChat(context.Background(), "buyer", "obj-1")
	require.NoError(t, err)

	assert.Equal(t, entity.ConversationID("buyer", "seller", "obj-1"), chat.ID)
	assert.Equal(t, "obj-1", chat.ListingID)
	assert.Equal(t, "Bike", chat.Listing.Text)
	assert.Empty(t, chat.Messages)
}

func TestOpenChatIsIdempotent(t *testing.T) {
	uc, _, chats := newChatFixture(t)

	ctx := context.Background()
	first, err := uc.OpenChat(ctx, "buyer", "obj-1")
	require.NoError(t, err)
	second, err := uc.OpenChat(ctx, "buyer", "obj-1")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, chats.chats, 1)
}

func TestOpenChatRejectsOwnListing(t *testing.T) {
	uc, _, _ := newChatFixture(t)

	_, err := uc.OpenChat(context.Background(), "seller", "obj-1")
	assert.Error(t, err)
}

func TestOpenChatUnknownListing(t *testing.T) {
	uc, _, _ := newChatFixture(t)

	_, err := uc.OpenChat(context.Background(), "buyer", "ghost")
	assert.Error(t, err)
}

func TestSendMessageCarriesSenderIdentity(t *testing.T) {
	uc, _, _ := newChatFixture(t)

	ctx := context.Background()
	chat, err := uc.OpenChat(ctx, "buyer", "obj-1")
	require.NoError(t, err)

	message, err := uc.SendMessage(ctx, "buyer", chat.ID, "Is it still available?")
	require.NoError(t, err)
	require.NotNil(t, message)

	assert.Equal(t, "buyer", message.From)
	assert.Equal(t, "Bruno", message.FromName)
	assert.False(t, message.CreatedAt.IsZero())

	messages, err := uc.Messages(ctx, chat.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "Is it still available?", messages[0].Text)
}

func TestSendMessageEmptyTextIsSilentNoOp(t *testing.T) {
	uc, _, chats := newChatFixture(t)

	ctx := context.Background()
	chat, err := uc.OpenChat(ctx, "buyer", "obj-1")
	require.NoError(t, err)

	message, err := uc.SendMessage(ctx, "buyer", chat.ID, "   ")
	require.NoError(t, err)
	assert.Nil(t, message)
	assert.Empty(t, chats.messages[chat.ID])
}

func TestSendMessageUnknownChat(t *testing.T) {
	uc, _, _ := newChatFixture(t)

	_, err := uc.SendMessage(context.Background(), "buyer", "ghost", "hello")
	assert.Error(t, err)
}

func TestMessagesOrderedOldestFirst(t *testing.T) {
	uc, _, _ := newChatFixture(t)

	ctx := context.Background()
	chat, err := uc.OpenChat(ctx, "buyer", "obj-1")
	require.NoError(t, err)

	_, err = uc.SendMessage(ctx, "buyer", chat.ID, "first")
	require.NoError(t, err)
	_, err = uc.SendMessage(ctx, "seller", chat.ID, "second")
	require.NoError(t, err)

	messages, err := uc.Messages(ctx, chat.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "first", messages[0].Text)
	assert.Equal(t, "second", messages[1].Text)
}
