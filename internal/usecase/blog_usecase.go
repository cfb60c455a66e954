package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bookshare/internal/domain/entity"
	"bookshare/internal/domain/repository"
	"bookshare/pkg/errors"
	"bookshare/pkg/logger"
)

type BlogUseCase struct {
	blogRepo repository.BlogRepository
}

func NewBlogUseCase(blogRepo repository.BlogRepository) *BlogUseCase {
	return &BlogUseCase{
		blogRepo: blogRepo,
	}
}

type CreateBlogInput struct {
	Title    string
	Content  string
	Category string
	Tags     []string
}

func (uc *BlogUseCase) Create(ctx context.Context, authorID string, input CreateBlogInput) (*entity.Blog, error) {
	blog := &entity.Blog{
		Title:    input.Title,
		Content:  input.Content,
		Category: input.Category,
		Tags:     input.Tags,
		AuthorID: authorID,
	}

	if err := uc.blogRepo.Create(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

// GetByID fetches a post and bumps its view counter off the request path.
func (uc *BlogUseCase) GetByID(ctx context.Context, id string) (*entity.Blog, error) {
	blog, err := uc.blogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.blogRepo.IncrementViews(bgCtx, id); err != nil {
			logger.Error("Failed to increment views for blog %s: %v", id, err)
		}
	}()

	return blog, nil
}

func (uc *BlogUseCase) List(ctx context.Context, category string, limit, offset int) ([]*entity.Blog, int64, error) {
	return uc.blogRepo.List(ctx, category, limit, offset)
}

func (uc *BlogUseCase) Delete(ctx context.Context, userID, blogID string) error {
	blog, err := uc.blogRepo.GetByID(ctx, blogID)
	if err != nil {
		return err
	}

	if blog.AuthorID != userID {
		return errors.Forbidden("Only the author can delete this post", nil)
	}

	return uc.blogRepo.Delete(ctx, blogID)
}

// Like counts each user at most once. The second like is a no-op, not an
// error.
func (uc *BlogUseCase) Like(ctx context.Context, userID, blogID string) (bool, error) {
	return uc.blogRepo.AddLike(ctx, blogID, userID)
}

func (uc *BlogUseCase) Reply(ctx context.Context, userID, blogID, content string) (*entity.BlogReply, error) {
	if content == "" {
		return nil, errors.BadRequest("Reply content cannot be empty", nil)
	}

	if _, err := uc.blogRepo.GetByID(ctx, blogID); err != nil {
		return nil, err
	}

	reply := entity.BlogReply{
		ID:        uuid.New().String(),
		AuthorID:  userID,
		Content:   content,
		CreatedAt: time.Now(),
	}

	if err := uc.blogRepo.AddReply(ctx, blogID, reply); err != nil {
		return nil, err
	}

	return &reply, nil
}

func (uc *BlogUseCase) ListReplies(ctx context.Context, blogID string, limit, offset int) ([]entity.BlogReply, int64, error) {
	return uc.blogRepo.ListReplies(ctx, blogID, limit, offset)
}
