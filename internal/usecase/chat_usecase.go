package usecase

import (
	"context"
	"encoding/json"
	"time"

	"bookshare/internal/domain/entity"
	"bookshare/internal/domain/repository"
	"bookshare/internal/infrastructure/websocket"
	"bookshare/pkg/errors"
	"bookshare/pkg/logger"
)

type ChatUseCase struct {
	chatRepo    repository.ChatRepository
	listingRepo repository.ListingRepository
	wsManager   *websocket.Manager
}

func NewChatUseCase(chatRepo repository.ChatRepository, listingRepo repository.ListingRepository, wsManager *websocket.Manager) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:    chatRepo,
		listingRepo: listingRepo,
		wsManager:   wsManager,
	}
}

// CreateChat opens a conversation between a buyer and a seller, usually
// about a listing. An existing conversation is reused.
func (uc *ChatUseCase) CreateChat(ctx context.Context, userID, recipientID, listingID string) (*entity.Chat, error) {
	if userID == recipientID {
		return nil, errors.BadRequest("Cannot start a chat with yourself", nil)
	}

	if listingID != "" {
		if _, err := uc.listingRepo.GetByID(ctx, listingID); err != nil {
			return nil, err
		}
	}

	existing, err := uc.chatRepo.GetByParticipants(ctx, userID, recipientID, listingID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	chat := &entity.Chat{
		Participants: []string{userID, recipientID},
		ListingID:    listingID,
		UnreadCount:  map[string]int{userID: 0, recipientID: 0},
		IsActive:     true,
	}

	if err := uc.chatRepo.Create(ctx, chat); err != nil {
		return nil, err
	}

	return chat, nil
}

func (uc *ChatUseCase) GetChat(ctx context.Context, userID, chatID string) (*entity.Chat, error) {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if !chat.HasParticipant(userID) {
		return nil, errors.Forbidden("You are not part of this chat", nil)
	}

	return chat, nil
}

func (uc *ChatUseCase) ListChats(ctx context.Context, userID string, limit, offset int) ([]*entity.Chat, int64, error) {
	return uc.chatRepo.ListByUserID(ctx, userID, limit, offset)
}

type SendMessageInput struct {
	Content       string
	Type          string
	AttachmentURL string
	OfferAmount   float64
}

// SendMessage stores a message and pushes it to connected participants.
func (uc *ChatUseCase) SendMessage(ctx context.Context, userID, chatID string, input SendMessageInput) (*entity.Message, error) {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if !chat.HasParticipant(userID) {
		return nil, errors.Forbidden("You are not part of this chat", nil)
	}
	if !chat.IsActive {
		return nil, errors.Conflict("Chat is closed")
	}

	msgType := input.Type
	if msgType == "" {
		msgType = entity.MessageTypeText
	}

	message := &entity.Message{
		SenderID:      userID,
		Content:       input.Content,
		Type:          msgType,
		AttachmentURL: input.AttachmentURL,
		ReadBy:        []string{userID},
	}

	if msgType == entity.MessageTypeOffer {
		if input.OfferAmount <= 0 {
			return nil, errors.BadRequest("Offer amount must be positive", nil)
		}
		message.Offer = &entity.Offer{
			Amount:    input.OfferAmount,
			ListingID: chat.ListingID,
			Status:    entity.OfferPending,
		}
	}

	if err := uc.chatRepo.AddMessage(ctx, chatID, message); err != nil {
		return nil, err
	}

	now := time.Now()
	chat.LastMessage = &entity.LastMessage{
		Content:  input.Content,
		SenderID: userID,
		SentAt:   now,
	}
	if chat.UnreadCount == nil {
		chat.UnreadCount = map[string]int{}
	}
	for _, p := range chat.Participants {
		if p != userID {
			chat.UnreadCount[p]++
		}
	}
	if err := uc.chatRepo.Update(ctx, chat); err != nil {
		return nil, err
	}

	uc.pushToParticipants(chat, userID, "message", message)

	return message, nil
}

func (uc *ChatUseCase) ListMessages(ctx context.Context, userID, chatID string, limit, offset int) ([]*entity.Message, int64, error) {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, 0, err
	}

	if !chat.HasParticipant(userID) {
		return nil, 0, errors.Forbidden("You are not part of this chat", nil)
	}

	return uc.chatRepo.ListMessages(ctx, chatID, limit, offset)
}

func (uc *ChatUseCase) MarkRead(ctx context.Context, userID, chatID string) error {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return err
	}

	if !chat.HasParticipant(userID) {
		return errors.Forbidden("You are not part of this chat", nil)
	}

	return uc.chatRepo.MarkMessagesRead(ctx, chatID, userID)
}

// RespondToOffer lets the recipient accept or reject a pending offer. The
// sender cannot respond to their own offer.
func (uc *ChatUseCase) RespondToOffer(ctx context.Context, userID, chatID, messageID string, accept bool) (*entity.Message, error) {
	chat, err := uc.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if !chat.HasParticipant(userID) {
		return nil, errors.Forbidden("You are not part of this chat", nil)
	}

	message, err := uc.chatRepo.GetMessage(ctx, chatID, messageID)
	if err != nil {
		return nil, err
	}

	if message.Type != entity.MessageTypeOffer || message.Offer == nil {
		return nil, errors.BadRequest("Message is not an offer", nil)
	}
	if message.SenderID == userID {
		return nil, errors.Forbidden("You cannot respond to your own offer", nil)
	}
	if message.Offer.Status != entity.OfferPending {
		return nil, errors.Conflict("Offer has already been answered")
	}

	if accept {
		message.Offer.Status = entity.OfferAccepted
	} else {
		message.Offer.Status = entity.OfferRejected
	}

	if err := uc.chatRepo.UpdateMessage(ctx, chatID, message); err != nil {
		return nil, err
	}

	uc.pushToParticipants(chat, "", "offer_update", message)

	return message, nil
}

func (uc *ChatUseCase) pushToParticipants(chat *entity.Chat, skipUserID, event string, payload interface{}) {
	if uc.wsManager == nil {
		return
	}

	data, err := json.Marshal(map[string]interface{}{
		"event":   event,
		"chat_id": chat.ID,
		"data":    payload,
	})
	if err != nil {
		logger.Error("Failed to marshal chat event: %v", err)
		return
	}

	for _, p := range chat.Participants {
		if p == skipUserID {
			continue
		}
		uc.wsManager.SendToUser(p, data)
	}
}
