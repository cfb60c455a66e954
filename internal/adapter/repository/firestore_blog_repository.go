package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"bookshare/internal/domain/entity"
	"bookshare/internal/domain/repository"
	"bookshare/pkg/errors"
)

type firestoreBlogRepository struct {
	client *firestore.Client
}

func NewFirestoreBlogRepository(client *firestore.Client) repository.BlogRepository {
	return &firestoreBlogRepository{
		client: client,
	}
}

func (r *firestoreBlogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	if blog.ID == "" {
		doc := r.client.Collection("blogs").NewDoc()
		blog.ID = doc.ID
	}

	now := time.Now()
	if blog.CreatedAt.IsZero() {
		blog.CreatedAt = now
	}
	blog.UpdatedAt = now

	_, err := r.client.Collection("blogs").Doc(blog.ID).Set(ctx, blog)
	if err != nil {
		return errors.Internal("Failed to create blog post", err)
	}

	return nil
}

func (r *firestoreBlogRepository) GetByID(ctx context.Context, id string) (*entity.Blog, error) {
	doc, err := r.client.Collection("blogs").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Blog post", err)
		}
		return nil, errors.Internal("Failed to get blog post", err)
	}

	var blog entity.Blog
	if err := doc.DataTo(&blog); err != nil {
		return nil, errors.Internal("Failed to parse blog data", err)
	}

	return &blog, nil
}

func (r *firestoreBlogRepository) List(ctx context.Context, category string, limit, offset int) ([]*entity.Blog, int64, error) {
	query := r.client.Collection("blogs").Query

	if category != "" {
		query = query.Where("category", "==", category)
	}

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count blog posts", err)
	}
	total := int64(len(allDocs))

	query = query.OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var blogs []*entity.Blog

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate blog posts", err)
		}

		var blog entity.Blog
		if err := doc.DataTo(&blog); err != nil {
			return nil, 0, errors.Internal("Failed to parse blog data", err)
		}
		blogs = append(blogs, &blog)
	}

	return blogs, total, nil
}

func (r *firestoreBlogRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("blogs").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete blog post", err)
	}

	return nil
}

func (r *firestoreBlogRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.client.Collection("blogs").Doc(id).Update(ctx, []firestore.Update{
		{Path: "views", Value: firestore.Increment(1)},
	})
	if err != nil {
		return errors.Internal("Failed to increment blog views", err)
	}

	return nil
}

// AddLike records the like inside a transaction so each user counts once.
func (r *firestoreBlogRepository) AddLike(ctx context.Context, id, userID string) (bool, error) {
	blogRef := r.client.Collection("blogs").Doc(id)
	liked := false

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(blogRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Blog post", err)
			}
			return err
		}

		var blog entity.Blog
		if err := doc.DataTo(&blog); err != nil {
			return err
		}

		for _, uid := range blog.LikedBy {
			if uid == userID {
				return nil
			}
		}

		liked = true
		return tx.Update(blogRef, []firestore.Update{
			{Path: "likes", Value: firestore.Increment(1)},
			{Path: "likedBy", Value: firestore.ArrayUnion(userID)},
			{Path: "updatedAt", Value: time.Now()},
		})
	})

	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return false, err
		}
		return false, errors.Internal("Failed to like blog post", err)
	}

	return liked, nil
}

func (r *firestoreBlogRepository) AddReply(ctx context.Context, id string, reply entity.BlogReply) error {
	blogRef := r.client.Collection("blogs").Doc(id)

	_, err := blogRef.Collection("replies").Doc(reply.ID).Set(ctx, reply)
	if err != nil {
		return errors.Internal("Failed to add reply", err)
	}

	_, err = blogRef.Update(ctx, []firestore.Update{
		{Path: "replies", Value: firestore.Increment(1)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to update reply counter", err)
	}

	return nil
}

func (r *firestoreBlogRepository) ListReplies(ctx context.Context, id string, limit, offset int) ([]entity.BlogReply, int64, error) {
	query := r.client.Collection("blogs").Doc(id).Collection("replies").Query

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count replies", err)
	}
	total := int64(len(allDocs))

	query = query.OrderBy("createdAt", firestore.Asc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var replies []entity.BlogReply

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate replies", err)
		}

		var reply entity.BlogReply
		if err := doc.DataTo(&reply); err != nil {
			return nil, 0, errors.Internal("Failed to parse reply data", err)
		}
		replies = append(replies, reply)
	}

	return replies, total, nil
}
