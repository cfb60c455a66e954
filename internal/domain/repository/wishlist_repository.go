package repository

import (
	"context"

	"bookshare/internal/domain/entity"
)

type WishlistRepository interface {
	GetByUserID(ctx context.Context, userID string) (*entity.Wishlist, error)
	// AddItem appends an item to the user's single wishlist document,
	// creating the document when missing. Duplicate listings are rejected.
	AddItem(ctx context.Context, userID string, item entity.WishlistItem) error
	RemoveItem(ctx context.Context, userID, listingID string) error
	Contains(ctx context.Context, userID, listingID string) (bool, error)
}
