package entity

import (
	"time"
)

// Note is digital study material sold as a standalone upload.
type Note struct {
	ID          string  `json:"id" firestore:"id"`
	Title       string  `json:"title" firestore:"title"`
	Subject     string  `json:"subject" firestore:"subject"`
	Class       string  `json:"class" firestore:"class"`
	Board       string  `json:"board" firestore:"board"`
	Description string  `json:"description,omitempty" firestore:"description,omitempty"`
	Price       float64 `json:"price" firestore:"price"`
	Pages       int     `json:"pages" firestore:"pages"`
	FileURL     string  `json:"file_url,omitempty" firestore:"fileUrl,omitempty"`
	AuthorID    string  `json:"author_id" firestore:"authorId"`

	// Storage object backing FileURL, resolved from the author's upload at
	// creation. Never taken from a request.
	ObjectName string `json:"-" firestore:"objectName,omitempty"`

	Downloads int    `json:"downloads" firestore:"downloads"`
	Rating    Rating `json:"rating" firestore:"rating"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
