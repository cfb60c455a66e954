package handler

import (
	"github.com/labstack/echo/v4"

	"bookshare/internal/usecase"
	"bookshare/pkg/errors"
	"bookshare/pkg/response"
	"bookshare/pkg/utils"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type createChatRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
	ListingID   string `json:"listing_id"`
}

func (h *ChatHandler) Create(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req createChatRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	chat, err := h.chatUseCase.CreateChat(c.Request().Context(), uid, req.RecipientID, req.ListingID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, chat)
}

func (h *ChatHandler) Get(c echo.Context) error {
	uid := c.Get("uid").(string)

	chat, err := h.chatUseCase.GetChat(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, chat)
}

func (h *ChatHandler) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	p := utils.GetPaginationParams(c)

	chats, total, err := h.chatUseCase.ListChats(c.Request().Context(), uid, p.PageSize, p.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, chats, total, p.Page, p.PageSize)
}

type sendMessageRequest struct {
	Content       string  `json:"content" validate:"required_unless=Type offer"`
	Type          string  `json:"type" validate:"omitempty,oneof=text image file offer"`
	AttachmentURL string  `json:"attachment_url" validate:"omitempty,url"`
	OfferAmount   float64 `json:"offer_amount" validate:"omitempty,gt=0"`
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), uid, c.Param("id"), usecase.SendMessageInput{
		Content:       req.Content,
		Type:          req.Type,
		AttachmentURL: req.AttachmentURL,
		OfferAmount:   req.OfferAmount,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *ChatHandler) ListMessages(c echo.Context) error {
	uid := c.Get("uid").(string)
	p := utils.GetPaginationParams(c)

	messages, total, err := h.chatUseCase.ListMessages(c.Request().Context(), uid, c.Param("id"), p.PageSize, p.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, messages, total, p.Page, p.PageSize)
}

func (h *ChatHandler) MarkRead(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.chatUseCase.MarkRead(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Messages marked read"})
}

func (h *ChatHandler) RespondToOffer(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req struct {
		Action string `json:"action" validate:"required,oneof=accept reject"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.RespondToOffer(c.Request().Context(), uid, c.Param("id"), c.Param("messageId"), req.Action == "accept")
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, message)
}
