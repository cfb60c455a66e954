package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"bookshare/internal/domain/entity"
	"bookshare/internal/domain/repository"
	"bookshare/pkg/errors"
)

// The wishlist collection holds exactly one document per user, keyed by the
// user ID, so lookups never need a query.
type firestoreWishlistRepository struct {
	client *firestore.Client
}

func NewFirestoreWishlistRepository(client *firestore.Client) repository.WishlistRepository {
	return &firestoreWishlistRepository{
		client: client,
	}
}

func (r *firestoreWishlistRepository) GetByUserID(ctx context.Context, userID string) (*entity.Wishlist, error) {
	doc, err := r.client.Collection("wishlists").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return &entity.Wishlist{
				UserID: userID,
				Items:  []entity.WishlistItem{},
			}, nil
		}
		return nil, errors.Internal("Failed to get wishlist", err)
	}

	var wishlist entity.Wishlist
	if err := doc.DataTo(&wishlist); err != nil {
		return nil, errors.Internal("Failed to parse wishlist data", err)
	}

	return &wishlist, nil
}

func (r *firestoreWishlistRepository) AddItem(ctx context.Context, userID string, item entity.WishlistItem) error {
	ref := r.client.Collection("wishlists").Doc(userID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return tx.Set(ref, &entity.Wishlist{
					UserID:    userID,
					Items:     []entity.WishlistItem{item},
					CreatedAt: time.Now(),
					UpdatedAt: time.Now(),
				})
			}
			return err
		}

		var wishlist entity.Wishlist
		if err := doc.DataTo(&wishlist); err != nil {
			return err
		}

		if wishlist.Contains(item.ListingID) {
			return errors.Conflict("Listing is already on the wishlist")
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "items", Value: append(wishlist.Items, item)},
			{Path: "updatedAt", Value: time.Now()},
		})
	})

	if err != nil {
		if errors.Is(err, "CONFLICT") {
			return err
		}
		return errors.Internal("Failed to add wishlist item", err)
	}

	return nil
}

func (r *firestoreWishlistRepository) RemoveItem(ctx context.Context, userID, listingID string) error {
	ref := r.client.Collection("wishlists").Doc(userID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Wishlist item", err)
			}
			return err
		}

		var wishlist entity.Wishlist
		if err := doc.DataTo(&wishlist); err != nil {
			return err
		}

		found := false
		items := make([]entity.WishlistItem, 0, len(wishlist.Items))
		for _, it := range wishlist.Items {
			if it.ListingID == listingID {
				found = true
				continue
			}
			items = append(items, it)
		}

		if !found {
			return errors.NotFound("Wishlist item", nil)
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "items", Value: items},
			{Path: "updatedAt", Value: time.Now()},
		})
	})

	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return err
		}
		return errors.Internal("Failed to remove wishlist item", err)
	}

	return nil
}

func (r *firestoreWishlistRepository) Contains(ctx context.Context, userID, listingID string) (bool, error) {
	wishlist, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return false, err
	}

	return wishlist.Contains(listingID), nil
}
