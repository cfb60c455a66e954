package usecase

import (
	"context"

	"bookshare/internal/domain/entity"
	"bookshare/internal/domain/repository"
	"bookshare/internal/domain/service"
	"bookshare/pkg/errors"
)

type PaymentUseCase struct {
	orderRepo   repository.OrderRepository
	listingRepo repository.ListingRepository
	gateway     service.PaymentGatewayService
}

func NewPaymentUseCase(orderRepo repository.OrderRepository, listingRepo repository.ListingRepository, gateway service.PaymentGatewayService) *PaymentUseCase {
	return &PaymentUseCase{
		orderRepo:   orderRepo,
		listingRepo: listingRepo,
		gateway:     gateway,
	}
}

// CreateGatewayOrder opens a payment at the gateway for an existing order.
// The charged amount always comes from the stored order, not the request.
func (uc *PaymentUseCase) CreateGatewayOrder(ctx context.Context, userID, orderID string) (*service.GatewayOrder, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.BuyerID != userID {
		return nil, errors.Forbidden("Only the buyer can pay for this order", nil)
	}
	if order.PaymentStatus == entity.PaymentStatusPaid {
		return nil, errors.Conflict("Order is already paid")
	}
	if entity.IsTerminalOrderStatus(order.OrderStatus) && order.OrderStatus != entity.OrderStatusDelivered {
		return nil, errors.Conflict("Order is no longer payable")
	}

	listing, err := uc.listingRepo.GetByID(ctx, order.ListingID)
	if err != nil {
		return nil, err
	}

	gatewayOrder, err := uc.gateway.CreateOrder(ctx, service.CreateGatewayOrderRequest{
		Amount:    order.TotalAmount,
		BookTitle: listing.Title,
		UserID:    userID,
	})
	if err != nil {
		return nil, err
	}

	order.GatewayOrderID = gatewayOrder.ID
	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return gatewayOrder, nil
}

type VerifyPaymentInput struct {
	GatewayOrderID   string
	GatewayPaymentID string
	Signature        string
}

// VerifyPayment checks the gateway signature and marks the order paid. An
// invalid signature marks the payment failed and is reported as an error.
func (uc *PaymentUseCase) VerifyPayment(ctx context.Context, userID string, input VerifyPaymentInput) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByGatewayOrderID(ctx, input.GatewayOrderID)
	if err != nil {
		return nil, err
	}

	if order.BuyerID != userID {
		return nil, errors.Forbidden("Only the buyer can verify this payment", nil)
	}
	if order.PaymentStatus == entity.PaymentStatusPaid {
		return order, nil
	}

	if !uc.gateway.VerifySignature(input.GatewayOrderID, input.GatewayPaymentID, input.Signature) {
		order.PaymentStatus = entity.PaymentStatusFailed
		if updateErr := uc.orderRepo.Update(ctx, order); updateErr != nil {
			return nil, updateErr
		}
		return nil, errors.BadRequest("Payment signature verification failed", nil)
	}

	order.PaymentStatus = entity.PaymentStatusPaid
	order.GatewayPaymentID = input.GatewayPaymentID

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}
