package repository

import (
	"context"

	"bookshare/internal/domain/entity"
)

type BlogRepository interface {
	Create(ctx context.Context, blog *entity.Blog) error
	GetByID(ctx context.Context, id string) (*entity.Blog, error)
	List(ctx context.Context, category string, limit, offset int) ([]*entity.Blog, int64, error)
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
	// AddLike records a like once per user; returns false when the user
	// already liked the post.
	AddLike(ctx context.Context, id, userID string) (bool, error)
	AddReply(ctx context.Context, id string, reply entity.BlogReply) error
	ListReplies(ctx context.Context, id string, limit, offset int) ([]entity.BlogReply, int64, error)
}
