package repository

import (
	"context"

	"bookshare/internal/domain/entity"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	GetByID(ctx context.Context, id string) (*entity.Note, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Note, int64, error)
	Delete(ctx context.Context, id string) error
	IncrementDownloads(ctx context.Context, id string) error
}
