package entity

import (
	"time"
)

const (
	ListingStatusPending  = "pending"
	ListingStatusActive   = "active"
	ListingStatusSold     = "sold"
	ListingStatusInactive = "inactive"
)

const (
	SaleTypeFixed      = "fixed"
	SaleTypeNegotiable = "negotiable"
	SaleTypeAuction    = "auction"
)

var ListingCategories = []string{
	"upsc", "gate", "neet", "jee", "engineering", "medical", "law", "mba",
	"school", "notes", "mathematics", "science", "literature", "history", "commerce",
}

type ListingImage struct {
	ID      string `json:"id" firestore:"id"`
	URL     string `json:"url" firestore:"url"`
	Caption string `json:"caption,omitempty" firestore:"caption,omitempty"`
}

type DigitalFile struct {
	URL    string `json:"url" firestore:"url"`
	Format string `json:"format,omitempty" firestore:"format,omitempty"`
	Size   int64  `json:"size,omitempty" firestore:"size,omitempty"`
}

type Bid struct {
	UserID    string    `json:"user_id" firestore:"userId"`
	Amount    float64   `json:"amount" firestore:"amount"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
}

type GeoPoint struct {
	Lat float64 `json:"lat,omitempty" firestore:"lat,omitempty"`
	Lng float64 `json:"lng,omitempty" firestore:"lng,omitempty"`
}

type ListingLocation struct {
	City        string   `json:"city,omitempty" firestore:"city,omitempty"`
	State       string   `json:"state,omitempty" firestore:"state,omitempty"`
	Coordinates GeoPoint `json:"coordinates,omitempty" firestore:"coordinates,omitempty"`
}

type Listing struct {
	ID            string  `json:"id" firestore:"id"`
	SellerID      string  `json:"seller_id" firestore:"sellerId"`
	Title         string  `json:"title" firestore:"title"`
	Author        string  `json:"author" firestore:"author"`
	ISBN          string  `json:"isbn,omitempty" firestore:"isbn,omitempty"`
	Edition       string  `json:"edition,omitempty" firestore:"edition,omitempty"`
	Description   string  `json:"description" firestore:"description"`
	Price         float64 `json:"price" firestore:"price"`
	OriginalPrice float64 `json:"original_price,omitempty" firestore:"originalPrice,omitempty"`
	Condition     string  `json:"condition" firestore:"condition"` // new, like-new, good, fair
	Category      string  `json:"category" firestore:"category"`
	Subject       string  `json:"subject,omitempty" firestore:"subject,omitempty"`
	Course        string  `json:"course,omitempty" firestore:"course,omitempty"`
	ExamType      string  `json:"exam_type,omitempty" firestore:"examType,omitempty"`

	ListingType string       `json:"listing_type" firestore:"listingType"` // physical, digital
	DigitalFile *DigitalFile `json:"digital_file,omitempty" firestore:"digitalFile,omitempty"`

	SaleType       string     `json:"sale_type" firestore:"saleType"`
	AuctionEndDate *time.Time `json:"auction_end_date,omitempty" firestore:"auctionEndDate,omitempty"`
	CurrentBid     float64    `json:"current_bid,omitempty" firestore:"currentBid,omitempty"`
	Bidders        []Bid      `json:"bidders,omitempty" firestore:"bidders,omitempty"`

	Images []ListingImage `json:"images,omitempty" firestore:"images,omitempty"`

	Stock  int    `json:"stock" firestore:"stock"`
	Status string `json:"status" firestore:"status"`
	Views  int    `json:"views" firestore:"views"`

	Location        ListingLocation `json:"location,omitempty" firestore:"location,omitempty"`
	DeliveryOptions []string        `json:"delivery_options,omitempty" firestore:"deliveryOptions,omitempty"` // pickup, delivery, cod

	Rating Rating `json:"rating" firestore:"rating"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// listingTransitions enumerates the legal status moves. sold is terminal.
var listingTransitions = map[string][]string{
	ListingStatusPending:  {ListingStatusActive, ListingStatusInactive},
	ListingStatusActive:   {ListingStatusSold, ListingStatusInactive},
	ListingStatusInactive: {ListingStatusActive},
	ListingStatusSold:     {},
}

// CanTransitionListingStatus reports whether a listing may move from one
// status to another. Any status not in the table is rejected.
func CanTransitionListingStatus(from, to string) bool {
	allowed, ok := listingTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

func ValidListingCategory(category string) bool {
	for _, c := range ListingCategories {
		if c == category {
			return true
		}
	}
	return false
}
