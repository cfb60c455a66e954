package entity

import (
	"time"
)

type PriceAlert struct {
	Enabled     bool    `json:"enabled" firestore:"enabled"`
	TargetPrice float64 `json:"target_price,omitempty" firestore:"targetPrice,omitempty"`
}

type WishlistItem struct {
	ListingID  string     `json:"listing_id" firestore:"listingId"`
	AddedAt    time.Time  `json:"added_at" firestore:"addedAt"`
	PriceAlert PriceAlert `json:"price_alert" firestore:"priceAlert"`
}

// Wishlist is stored one document per user; the document ID is the user ID,
// which enforces uniqueness at the storage layer.
type Wishlist struct {
	UserID    string         `json:"user_id" firestore:"userId"`
	Items     []WishlistItem `json:"items" firestore:"items"`
	CreatedAt time.Time      `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time      `json:"updated_at" firestore:"updatedAt"`
}

func (w *Wishlist) Contains(listingID string) bool {
	for _, item := range w.Items {
		if item.ListingID == listingID {
			return true
		}
	}
	return false
}

type WishlistItemWithListing struct {
	ListingID  string     `json:"listing_id"`
	AddedAt    time.Time  `json:"added_at"`
	PriceAlert PriceAlert `json:"price_alert"`
	Listing    *Listing   `json:"listing"`
}
