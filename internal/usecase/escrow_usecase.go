package usecase

import (
	"context"
	"time"

	"bookshare/internal/domain/entity"
	"bookshare/internal/domain/repository"
	"bookshare/pkg/errors"
	"bookshare/pkg/logger"
)

// EscrowUseCase holds buyer funds after payment and releases them to the
// seller when the buyer confirms receipt, or automatically once the hold
// window passes after delivery.
type EscrowUseCase struct {
	orderRepo   repository.OrderRepository
	holdPeriod  time.Duration
	tickPeriod  time.Duration
	releaseSize int
}

func NewEscrowUseCase(orderRepo repository.OrderRepository, holdPeriod time.Duration) *EscrowUseCase {
	return &EscrowUseCase{
		orderRepo:   orderRepo,
		holdPeriod:  holdPeriod,
		tickPeriod:  time.Hour,
		releaseSize: 50,
	}
}

// ConfirmDelivery is the buyer acknowledging receipt, which releases escrow
// immediately.
func (uc *EscrowUseCase) ConfirmDelivery(ctx context.Context, buyerID, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.BuyerID != buyerID {
		return nil, errors.Forbidden("Only the buyer can confirm delivery", nil)
	}
	if order.OrderStatus != entity.OrderStatusDelivered {
		return nil, errors.Conflict("Order has not been delivered yet")
	}
	if order.EscrowReleased {
		return order, nil
	}
	if order.PaymentStatus != entity.PaymentStatusPaid {
		return nil, errors.Conflict("Escrow only applies to paid orders")
	}

	uc.release(order)
	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (uc *EscrowUseCase) release(order *entity.Order) {
	now := time.Now()
	order.EscrowReleased = true
	order.EscrowReleaseDate = &now
}

// StartAutoReleaseJob periodically releases escrow on delivered orders the
// buyer never confirmed. Runs until the context is cancelled.
func (uc *EscrowUseCase) StartAutoReleaseJob(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(uc.tickPeriod)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				uc.autoRelease(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (uc *EscrowUseCase) autoRelease(ctx context.Context) {
	cutoff := time.Now().Add(-uc.holdPeriod)

	orders, err := uc.orderRepo.ListDeliveredUnreleased(ctx, cutoff, uc.releaseSize)
	if err != nil {
		logger.Error("Escrow auto-release scan failed: %v", err)
		return
	}

	for _, order := range orders {
		if order.PaymentStatus != entity.PaymentStatusPaid {
			continue
		}

		uc.release(order)
		if err := uc.orderRepo.Update(ctx, order); err != nil {
			logger.Error("Failed to auto-release escrow for order %s: %v", order.ID, err)
			continue
		}
		logger.Info("Escrow auto-released for order %s", order.ID)
	}
}
