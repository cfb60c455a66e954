package entity

import "time"

type LastMessage struct {
	Content  string    `json:"content" firestore:"content"`
	SenderID string    `json:"sender_id" firestore:"senderId"`
	SentAt   time.Time `json:"sent_at" firestore:"sentAt"`
}

type Chat struct {
	ID           string         `json:"id" firestore:"id"`
	Participants []string       `json:"participants" firestore:"participants"`
	ListingID    string         `json:"listing_id,omitempty" firestore:"listingId,omitempty"`
	LastMessage  *LastMessage   `json:"last_message,omitempty" firestore:"lastMessage,omitempty"`
	UnreadCount  map[string]int `json:"unread_count" firestore:"unreadCount"`
	IsActive     bool           `json:"is_active" firestore:"isActive"`
	CreatedAt    time.Time      `json:"created_at" firestore:"createdAt"`
	UpdatedAt    time.Time      `json:"updated_at" firestore:"updatedAt"`
}

func (c *Chat) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}
