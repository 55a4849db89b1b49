package repository

import (
	"context"

	"swapbook/internal/domain/entity"
)

type ChatRepository interface {
	// Ensure creates the chat document if it does not exist yet;
	// opening an existing conversation is not an error.
	Ensure(ctx context.Context, chat *entity.Chat) error
	GetByID(ctx context.Context, id string) (*entity.Chat, error)
	AppendMessage(ctx context.Context, chatID string, message *entity.Message) error
	// ListMessages returns messages ordered by creation time
	// ascending.
	ListMessages(ctx context.Context, chatID string) ([]*entity.Message, error)
}
