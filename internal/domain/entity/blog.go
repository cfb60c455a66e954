package entity

import (
	"time"
)

type BlogReply struct {
	ID        string    `json:"id" firestore:"id"`
	AuthorID  string    `json:"author_id" firestore:"authorId"`
	Content   string    `json:"content" firestore:"content"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

type Blog struct {
	ID       string   `json:"id" firestore:"id"`
	AuthorID string   `json:"author_id" firestore:"authorId"`
	Title    string   `json:"title" firestore:"title"`
	Content  string   `json:"content" firestore:"content"`
	Category string   `json:"category,omitempty" firestore:"category,omitempty"`
	Tags     []string `json:"tags,omitempty" firestore:"tags,omitempty"`

	Views   int `json:"views" firestore:"views"`
	Likes   int `json:"likes" firestore:"likes"`
	Replies int `json:"replies" firestore:"replies"`

	// User IDs that liked the post, so a like counts once per user.
	LikedBy []string `json:"-" firestore:"likedBy,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
