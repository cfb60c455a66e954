package entity

import "time"

const (
	MessageTypeText  = "text"
	MessageTypeImage = "image"
	MessageTypeFile  = "file"
	MessageTypeOffer = "offer"
)

const (
	OfferPending  = "pending"
	OfferAccepted = "accepted"
	OfferRejected = "rejected"
)

type Offer struct {
	Amount    float64 `json:"amount" firestore:"amount"`
	ListingID string  `json:"listing_id,omitempty" firestore:"listingId,omitempty"`
	Status    string  `json:"status" firestore:"status"`
}

type Message struct {
	ID       string `json:"id" firestore:"id"`
	ChatID   string `json:"chat_id" firestore:"chatId"`
	SenderID string `json:"sender_id" firestore:"senderId"`
	Content  string `json:"content" firestore:"content"`
	Type     string `json:"type" firestore:"type"`

	Offer *Offer `json:"offer,omitempty" firestore:"offer,omitempty"`

	AttachmentURL string `json:"attachment_url,omitempty" firestore:"attachmentUrl,omitempty"`

	ReadBy    []string  `json:"read_by" firestore:"readBy"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
