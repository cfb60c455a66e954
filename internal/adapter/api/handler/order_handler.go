package handler

import (
	"github.com/labstack/echo/v4"

	"bookshare/internal/domain/entity"
	"bookshare/internal/usecase"
	"bookshare/pkg/errors"
	"bookshare/pkg/response"
	"bookshare/pkg/utils"
)

type OrderHandler struct {
	orderUseCase  *usecase.OrderUseCase
	escrowUseCase *usecase.EscrowUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase, escrowUseCase *usecase.EscrowUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase:  orderUseCase,
		escrowUseCase: escrowUseCase,
	}
}

type createOrderRequest struct {
	ListingID       string                 `json:"listing_id" validate:"required"`
	Quantity        int                    `json:"quantity" validate:"omitempty,gt=0"`
	PaymentMethod   string                 `json:"payment_method" validate:"required,oneof=upi card netbanking wallet cod"`
	DeliveryAddress entity.DeliveryAddress `json:"delivery_address" validate:"required"`
	Notes           string                 `json:"notes"`
}

func (h *OrderHandler) Create(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.Create(c.Request().Context(), uid, usecase.CreateOrderInput{
		ListingID:       req.ListingID,
		Quantity:        req.Quantity,
		PaymentMethod:   req.PaymentMethod,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, order)
}

func (h *OrderHandler) Get(c echo.Context) error {
	uid := c.Get("uid").(string)

	order, err := h.orderUseCase.GetByID(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	uid := c.Get("uid").(string)
	p := utils.GetPaginationParams(c)

	orders, total, err := h.orderUseCase.ListMyOrders(c.Request().Context(), uid, p.PageSize, p.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, p.Page, p.PageSize)
}

func (h *OrderHandler) ListMySales(c echo.Context) error {
	uid := c.Get("uid").(string)
	p := utils.GetPaginationParams(c)

	orders, total, err := h.orderUseCase.ListMySales(c.Request().Context(), uid, p.PageSize, p.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, p.Page, p.PageSize)
}

type updateOrderStatusRequest struct {
	Status       string               `json:"status" validate:"required,oneof=confirmed shipped delivered cancelled disputed"`
	TrackingInfo *entity.TrackingInfo `json:"tracking_info"`
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.UpdateStatus(c.Request().Context(), uid, c.Param("id"), usecase.UpdateOrderStatusInput{
		Status:       req.Status,
		TrackingInfo: req.TrackingInfo,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

// ConfirmDelivery is the buyer acknowledging receipt, releasing escrow.
func (h *OrderHandler) ConfirmDelivery(c echo.Context) error {
	uid := c.Get("uid").(string)

	order, err := h.escrowUseCase.ConfirmDelivery(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}
