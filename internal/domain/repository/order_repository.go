package repository

import (
	"context"
	"time"

	"bookshare/internal/domain/entity"
)

type OrderRepository interface {
	// CreateWithStockDecrement creates the order and decrements the listing
	// stock in a single transaction. The listing flips to sold when stock
	// reaches zero.
	CreateWithStockDecrement(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*entity.Order, error)
	ListByBuyerID(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Order, int64, error)
	ListBySellerID(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Order, int64, error)
	Update(ctx context.Context, order *entity.Order) error
	// ListDeliveredUnreleased returns delivered orders whose escrow has not
	// been released and that were delivered before the cutoff.
	ListDeliveredUnreleased(ctx context.Context, deliveredBefore time.Time, limit int) ([]*entity.Order, error)
}
