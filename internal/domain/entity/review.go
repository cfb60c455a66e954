package entity

import "time"

// Review is a buyer's rating of a delivered order. It feeds both the
// listing's rating aggregate and the seller's user rating aggregate.
type Review struct {
	ID         string    `json:"id" firestore:"id"`
	OrderID    string    `json:"order_id" firestore:"orderId"`
	ListingID  string    `json:"listing_id" firestore:"listingId"`
	ReviewerID string    `json:"reviewer_id" firestore:"reviewerId"`
	SellerID   string    `json:"seller_id" firestore:"sellerId"`
	Rating     int       `json:"rating" firestore:"rating"`
	Comment    string    `json:"comment,omitempty" firestore:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
}
