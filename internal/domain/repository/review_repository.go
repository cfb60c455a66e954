package repository

import (
	"context"

	"bookshare/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByOrderID(ctx context.Context, orderID string) (*entity.Review, error)
	ListBySellerID(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Review, int64, error)
	ListByListingID(ctx context.Context, listingID string, limit, offset int) ([]*entity.Review, int64, error)
}
