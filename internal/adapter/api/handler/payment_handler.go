package handler

import (
	"github.com/labstack/echo/v4"

	"bookshare/internal/usecase"
	"bookshare/pkg/errors"
	"bookshare/pkg/response"
)

type PaymentHandler struct {
	paymentUseCase *usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

func (h *PaymentHandler) CreateGatewayOrder(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req struct {
		OrderID string `json:"order_id" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	gatewayOrder, err := h.paymentUseCase.CreateGatewayOrder(c.Request().Context(), uid, req.OrderID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, gatewayOrder)
}

type verifyPaymentRequest struct {
	GatewayOrderID   string `json:"razorpay_order_id" validate:"required"`
	GatewayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature        string `json:"razorpay_signature" validate:"required"`
}

func (h *PaymentHandler) VerifyPayment(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req verifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.paymentUseCase.VerifyPayment(c.Request().Context(), uid, usecase.VerifyPaymentInput{
		GatewayOrderID:   req.GatewayOrderID,
		GatewayPaymentID: req.GatewayPaymentID,
		Signature:        req.Signature,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}
