package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"swapbook/internal/domain/entity"
	"swapbook/internal/domain/repository"
	"swapbook/internal/infrastructure/ratelimit"
	ws "swapbook/internal/infrastructure/websocket"
	"swapbook/pkg/errors"
	"swapbook/pkg/logger"
)

type ChatUseCase struct {
	chatRepo    repository.ChatRepository
	listingRepo repository.ListingRepository
	profileRepo repository.ProfileRepository
	wsManager   *ws.Manager
	rateLimiter *ratelimit.RateLimiter
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	listingRepo repository.ListingRepository,
	profileRepo repository.ProfileRepository,
	wsManager *ws.Manager,
) *ChatUseCase {
	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	return &ChatUseCase{
		chatRepo:    chatRepo,
		listingRepo: listingRepo,
		profileRepo: profileRepo,
		wsManager:   wsManager,
		rateLimiter: rateLimiter,
	}
}

type ChatResponse struct {
	*entity.Chat
	Listing  *entity.Listing   `json:"listing,omitempty"`
	Messages []*entity.Message `json:"messages"`
}

// OpenChat derives the conversation for (caller, listing owner,
// listing) and returns it with its message history. Both sides derive
// the same id independently, so opening is idempotent and needs no
// negotiation.
func (uc *ChatUseCase) OpenChat(ctx context.Context, userID, listingID string) (*ChatResponse, error) {
	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if listing.OwnerID == userID {
		return nil, errors.BadRequest("You cannot open a chat about your own listing", nil)
	}

	chat := &entity.Chat{
		ID:           entity.ConversationID(userID, listing.OwnerID, listing.ID),
		ListingID:    listing.ID,
		Participants: []string{userID, listing.OwnerID},
	}

	if err := uc.chatRepo.Ensure(ctx, chat); err != nil {
		return nil, err
	}

	messages, err := uc.chatRepo.ListMessages(ctx, chat.ID)
	if err != nil {
		return nil, err
	}

	return &ChatResponse{
		Chat:     chat,
		Listing:  listing,
		Messages: messages,
	}, nil
}

// Messages returns a conversation's history, oldest first.
func (uc *ChatUseCase) Messages(ctx context.Context, chatID string) ([]*entity.Message, error) {
	if _, err := uc.chatRepo.GetByID(ctx, chatID); err != nil {
		return nil, err
	}
	return uc.chatRepo.ListMessages(ctx, chatID)
}

// SendMessage appends a message under the sender's identity. Empty
// text is a silent no-op, matching the client behavior.
func (uc *ChatUseCase) SendMessage(ctx context.Context, userID, chatID, text string) (*entity.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	allowed, _ := uc.rateLimiter.Allow(userID, "send_message")
	if !allowed {
		return nil, errors.TooManyRequests("Too many messages, slow down")
	}

	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	sender, err := uc.profileRepo.Get(ctx, userID)
	if err != nil {
		return nil, errors.BadRequest("Invalid sender", err)
	}

	message := &entity.Message{
		Text:     text,
		From:     sender.UID,
		FromName: sender.Name,
	}

	if err := uc.chatRepo.AppendMessage(ctx, chat.ID, message); err != nil {
		logger.Error("Failed to send message in chat %s: %v", chat.ID, err)
		return nil, err
	}

	uc.deliver(chat, message)
	return message, nil
}

// deliver pushes the new message to every participant's live session.
func (uc *ChatUseCase) deliver(chat *entity.Chat, message *entity.Message) {
	payload, err := json.Marshal(map[string]interface{}{
		"event":   "chat.message",
		"chat_id": chat.ID,
		"message": message,
	})
	if err != nil {
		logger.Error("Failed to encode chat message event: %v", err)
		return
	}

	for _, uid := range chat.Participants {
		uc.wsManager.SendToUser(uid, payload)
	}
}
