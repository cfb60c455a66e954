package usecase

import (
	"context"

	"bookshare/internal/domain/entity"
	"bookshare/internal/domain/repository"
	"bookshare/pkg/errors"
	"bookshare/pkg/logger"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	orderRepo   repository.OrderRepository
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	orderRepo repository.OrderRepository,
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		orderRepo:   orderRepo,
		listingRepo: listingRepo,
		userRepo:    userRepo,
	}
}

type CreateReviewInput struct {
	OrderID string
	Rating  int
	Comment string
}

// Create records one review per delivered order and folds the score into
// the listing and seller rating aggregates.
func (uc *ReviewUseCase) Create(ctx context.Context, reviewerID string, input CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	order, err := uc.orderRepo.GetByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	if order.BuyerID != reviewerID {
		return nil, errors.Forbidden("Only the buyer can review this order", nil)
	}
	if order.OrderStatus != entity.OrderStatusDelivered {
		return nil, errors.Conflict("Only delivered orders can be reviewed")
	}
	if order.Reviewed {
		return nil, errors.Conflict("Order has already been reviewed")
	}

	review := &entity.Review{
		OrderID:    order.ID,
		ListingID:  order.ListingID,
		ReviewerID: reviewerID,
		SellerID:   order.SellerID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	order.Reviewed = true
	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	uc.updateAggregates(ctx, order, input.Rating)

	return review, nil
}

// updateAggregates is best effort; a failed counter update does not undo
// the review.
func (uc *ReviewUseCase) updateAggregates(ctx context.Context, order *entity.Order, rating int) {
	if listing, err := uc.listingRepo.GetByID(ctx, order.ListingID); err == nil {
		listing.Rating.AddRating(rating)
		if err := uc.listingRepo.UpdateRating(ctx, listing.ID, listing.Rating); err != nil {
			logger.Error("Failed to update listing rating for %s: %v", listing.ID, err)
		}
	}

	if seller, err := uc.userRepo.GetByID(ctx, order.SellerID); err == nil {
		seller.Rating.AddRating(rating)
		if err := uc.userRepo.UpdateRating(ctx, seller.ID, seller.Rating); err != nil {
			logger.Error("Failed to update seller rating for %s: %v", seller.ID, err)
		}
	}
}

func (uc *ReviewUseCase) ListBySeller(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Review, int64, error) {
	return uc.reviewRepo.ListBySellerID(ctx, sellerID, limit, offset)
}

func (uc *ReviewUseCase) ListByListing(ctx context.Context, listingID string, limit, offset int) ([]*entity.Review, int64, error) {
	return uc.reviewRepo.ListByListingID(ctx, listingID, limit, offset)
}
