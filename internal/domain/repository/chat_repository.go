package repository

import (
	"context"

	"bookshare/internal/domain/entity"
)

type ChatRepository interface {
	Create(ctx context.Context, chat *entity.Chat) error
	GetByID(ctx context.Context, id string) (*entity.Chat, error)
	GetByParticipants(ctx context.Context, userA, userB, listingID string) (*entity.Chat, error)
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Chat, int64, error)
	Update(ctx context.Context, chat *entity.Chat) error

	AddMessage(ctx context.Context, chatID string, message *entity.Message) error
	GetMessage(ctx context.Context, chatID, messageID string) (*entity.Message, error)
	ListMessages(ctx context.Context, chatID string, limit, offset int) ([]*entity.Message, int64, error)
	UpdateMessage(ctx context.Context, chatID string, message *entity.Message) error
	MarkMessagesRead(ctx context.Context, chatID, userID string) error
}
