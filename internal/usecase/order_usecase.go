package usecase

import (
	"context"
	"time"

	"bookshare/internal/domain/entity"
	"bookshare/internal/domain/repository"
	"bookshare/pkg/errors"
)

type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	listingRepo repository.ListingRepository
}

func NewOrderUseCase(orderRepo repository.OrderRepository, listingRepo repository.ListingRepository) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		listingRepo: listingRepo,
	}
}

type CreateOrderInput struct {
	ListingID       string
	Quantity        int
	PaymentMethod   string
	DeliveryAddress entity.DeliveryAddress
	Notes           string
}

// Create places an order. The seller and amount come from the listing, never
// from the request, and stock is decremented atomically with the order write.
func (uc *OrderUseCase) Create(ctx context.Context, buyerID string, input CreateOrderInput) (*entity.Order, error) {
	listing, err := uc.listingRepo.GetByID(ctx, input.ListingID)
	if err != nil {
		return nil, err
	}

	if listing.SellerID == buyerID {
		return nil, errors.BadRequest("You cannot buy your own listing", nil)
	}
	if listing.Status != entity.ListingStatusActive {
		return nil, errors.Conflict("Listing is not available for purchase")
	}

	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	order := &entity.Order{
		BuyerID:         buyerID,
		SellerID:        listing.SellerID,
		ListingID:       listing.ID,
		Quantity:        quantity,
		TotalAmount:     listing.Price * float64(quantity),
		PaymentMethod:   input.PaymentMethod,
		PaymentStatus:   entity.PaymentStatusPending,
		OrderStatus:     entity.OrderStatusPlaced,
		DeliveryAddress: input.DeliveryAddress,
		Notes:           input.Notes,
	}

	if err := uc.orderRepo.CreateWithStockDecrement(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (uc *OrderUseCase) GetByID(ctx context.Context, userID, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.BuyerID != userID && order.SellerID != userID {
		return nil, errors.Forbidden("You are not part of this order", nil)
	}

	return order, nil
}

func (uc *OrderUseCase) ListMyOrders(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Order, int64, error) {
	return uc.orderRepo.ListByBuyerID(ctx, buyerID, limit, offset)
}

func (uc *OrderUseCase) ListMySales(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Order, int64, error) {
	return uc.orderRepo.ListBySellerID(ctx, sellerID, limit, offset)
}

type UpdateOrderStatusInput struct {
	Status       string
	TrackingInfo *entity.TrackingInfo
}

// UpdateStatus moves an order along its lifecycle. Sellers drive the forward
// path; buyers may cancel before shipment or raise a dispute.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, userID, orderID string, input UpdateOrderStatusInput) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	switch input.Status {
	case entity.OrderStatusConfirmed, entity.OrderStatusShipped, entity.OrderStatusDelivered:
		if order.SellerID != userID {
			return nil, errors.Forbidden("Only the seller can update order progress", nil)
		}
	case entity.OrderStatusCancelled:
		if order.BuyerID != userID && order.SellerID != userID {
			return nil, errors.Forbidden("You are not part of this order", nil)
		}
		if order.BuyerID == userID && order.OrderStatus == entity.OrderStatusShipped {
			return nil, errors.Conflict("Shipped orders cannot be cancelled by the buyer")
		}
	case entity.OrderStatusDisputed:
		if order.BuyerID != userID && order.SellerID != userID {
			return nil, errors.Forbidden("You are not part of this order", nil)
		}
	default:
		return nil, errors.BadRequest("Unknown order status", nil)
	}

	if !entity.CanTransitionOrderStatus(order.OrderStatus, input.Status) {
		return nil, errors.Conflict("Order cannot move from " + order.OrderStatus + " to " + input.Status)
	}

	if input.Status == entity.OrderStatusDelivered &&
		order.PaymentStatus != entity.PaymentStatusPaid &&
		order.PaymentMethod != "cod" {
		return nil, errors.Conflict("Order cannot be delivered before payment")
	}

	now := time.Now()
	order.OrderStatus = input.Status

	switch input.Status {
	case entity.OrderStatusShipped:
		if input.TrackingInfo != nil {
			order.TrackingInfo = *input.TrackingInfo
		}
	case entity.OrderStatusDelivered:
		order.DeliveredAt = &now
	case entity.OrderStatusCancelled:
		order.CancelledAt = &now
		if order.PaymentStatus == entity.PaymentStatusPaid {
			order.PaymentStatus = entity.PaymentStatusRefunded
		}
	}

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	if input.Status == entity.OrderStatusCancelled {
		uc.restockListing(ctx, order)
	}

	return order, nil
}

// restockListing returns cancelled quantity to the listing. Best effort; a
// failure here should not fail the cancellation.
func (uc *OrderUseCase) restockListing(ctx context.Context, order *entity.Order) {
	listing, err := uc.listingRepo.GetByID(ctx, order.ListingID)
	if err != nil {
		return
	}

	listing.Stock += order.Quantity
	if listing.Status == entity.ListingStatusSold {
		listing.Status = entity.ListingStatusActive
	}
	_ = uc.listingRepo.Update(ctx, listing)
}
