package repository

import (
	"context"

	"bookshare/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	UpdateKYCStatus(ctx context.Context, id, status string) error
	UpdateRating(ctx context.Context, id string, rating entity.Rating) error
}
