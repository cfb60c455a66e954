package usecase

import (
	"context"
	"time"

	"bookshare/internal/domain/entity"
	"bookshare/internal/domain/repository"
)

type WishlistUseCase struct {
	wishlistRepo repository.WishlistRepository
	listingRepo  repository.ListingRepository
}

func NewWishlistUseCase(wishlistRepo repository.WishlistRepository, listingRepo repository.ListingRepository) *WishlistUseCase {
	return &WishlistUseCase{
		wishlistRepo: wishlistRepo,
		listingRepo:  listingRepo,
	}
}

// Get returns the wishlist with current listing details attached. Listings
// deleted since they were saved are skipped.
func (uc *WishlistUseCase) Get(ctx context.Context, userID string) ([]entity.WishlistItemWithListing, error) {
	wishlist, err := uc.wishlistRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]entity.WishlistItemWithListing, 0, len(wishlist.Items))
	for _, item := range wishlist.Items {
		listing, err := uc.listingRepo.GetByID(ctx, item.ListingID)
		if err != nil {
			continue
		}
		items = append(items, entity.WishlistItemWithListing{
			ListingID:  item.ListingID,
			AddedAt:    item.AddedAt,
			PriceAlert: item.PriceAlert,
			Listing:    listing,
		})
	}

	return items, nil
}

type AddWishlistItemInput struct {
	ListingID  string
	PriceAlert *entity.PriceAlert
}

func (uc *WishlistUseCase) Add(ctx context.Context, userID string, input AddWishlistItemInput) error {
	if _, err := uc.listingRepo.GetByID(ctx, input.ListingID); err != nil {
		return err
	}

	item := entity.WishlistItem{
		ListingID: input.ListingID,
		AddedAt:   time.Now(),
	}
	if input.PriceAlert != nil {
		item.PriceAlert = *input.PriceAlert
	}

	return uc.wishlistRepo.AddItem(ctx, userID, item)
}

func (uc *WishlistUseCase) Remove(ctx context.Context, userID, listingID string) error {
	return uc.wishlistRepo.RemoveItem(ctx, userID, listingID)
}

func (uc *WishlistUseCase) Contains(ctx context.Context, userID, listingID string) (bool, error) {
	return uc.wishlistRepo.Contains(ctx, userID, listingID)
}
