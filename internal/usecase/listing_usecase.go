package usecase

import (
	"context"
	"time"

	"bookshare/internal/domain/entity"
	"bookshare/internal/domain/repository"
	"bookshare/pkg/errors"
	"bookshare/pkg/logger"
)

type ListingUseCase struct {
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
}

func NewListingUseCase(listingRepo repository.ListingRepository, userRepo repository.UserRepository) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		userRepo:    userRepo,
	}
}

type CreateListingInput struct {
	Title         string
	Author        string
	ISBN          string
	Edition       string
	Description   string
	Price         float64
	OriginalPrice float64
	Condition     string
	Category      string
	Subject       string
	Course        string
	ExamType      string

	ListingType string
	DigitalFile *entity.DigitalFile

	SaleType       string
	AuctionEndDate *time.Time

	Images          []entity.ListingImage
	Stock           int
	Location        entity.ListingLocation
	DeliveryOptions []string
}

// UpdateListingInput lists the mutable listing fields. Seller, status, views,
// bids and rating are managed elsewhere and cannot be set here.
type UpdateListingInput struct {
	Title           *string
	Author          *string
	ISBN            *string
	Edition         *string
	Description     *string
	Price           *float64
	OriginalPrice   *float64
	Condition       *string
	Subject         *string
	Course          *string
	ExamType        *string
	Images          *[]entity.ListingImage
	Stock           *int
	Location        *entity.ListingLocation
	DeliveryOptions *[]string
}

func (uc *ListingUseCase) Create(ctx context.Context, sellerID string, input CreateListingInput) (*entity.Listing, error) {
	seller, err := uc.userRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if !seller.CanSell() {
		return nil, errors.Forbidden("Account is not allowed to sell; library accounts must complete KYC first", nil)
	}

	if !entity.ValidListingCategory(input.Category) {
		return nil, errors.BadRequest("Unknown category", nil)
	}
	if input.SaleType == entity.SaleTypeAuction && input.AuctionEndDate == nil {
		return nil, errors.BadRequest("Auction listings need an end date", nil)
	}
	if input.ListingType == "digital" && input.DigitalFile == nil {
		return nil, errors.BadRequest("Digital listings need an uploaded file", nil)
	}

	stock := input.Stock
	if stock <= 0 {
		stock = 1
	}

	listing := &entity.Listing{
		SellerID:        sellerID,
		Title:           input.Title,
		Author:          input.Author,
		ISBN:            input.ISBN,
		Edition:         input.Edition,
		Description:     input.Description,
		Price:           input.Price,
		OriginalPrice:   input.OriginalPrice,
		Condition:       input.Condition,
		Category:        input.Category,
		Subject:         input.Subject,
		Course:          input.Course,
		ExamType:        input.ExamType,
		ListingType:     input.ListingType,
		DigitalFile:     input.DigitalFile,
		SaleType:        input.SaleType,
		AuctionEndDate:  input.AuctionEndDate,
		Images:          input.Images,
		Stock:           stock,
		Status:          entity.ListingStatusActive,
		Location:        input.Location,
		DeliveryOptions: input.DeliveryOptions,
	}

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

// GetByID fetches a listing and bumps its view counter off the request path.
func (uc *ListingUseCase) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.listingRepo.IncrementViews(bgCtx, id); err != nil {
			logger.Error("Failed to increment views for listing %s: %v", id, err)
		}
	}()

	return listing, nil
}

// List returns listings matching the filter. Browsing only sees active
// listings unless the caller asks for a specific status.
func (uc *ListingUseCase) List(ctx context.Context, filter map[string]interface{}, sort string, limit, offset int) ([]*entity.Listing, int64, error) {
	if filter == nil {
		filter = map[string]interface{}{}
	}
	if _, ok := filter["status"]; !ok {
		filter["status"] = entity.ListingStatusActive
	}

	return uc.listingRepo.List(ctx, filter, sort, limit, offset)
}

func (uc *ListingUseCase) ListBySeller(ctx context.Context, sellerID, listingStatus string, limit, offset int) ([]*entity.Listing, int64, error) {
	return uc.listingRepo.ListBySellerID(ctx, sellerID, listingStatus, limit, offset)
}

func (uc *ListingUseCase) Update(ctx context.Context, userID, listingID string, input UpdateListingInput) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if listing.SellerID != userID {
		return nil, errors.Forbidden("Only the seller can edit this listing", nil)
	}
	if listing.Status == entity.ListingStatusSold {
		return nil, errors.Conflict("Sold listings cannot be edited")
	}

	if input.Title != nil {
		listing.Title = *input.Title
	}
	if input.Author != nil {
		listing.Author = *input.Author
	}
	if input.ISBN != nil {
		listing.ISBN = *input.ISBN
	}
	if input.Edition != nil {
		listing.Edition = *input.Edition
	}
	if input.Description != nil {
		listing.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, errors.BadRequest("Price must be positive", nil)
		}
		listing.Price = *input.Price
	}
	if input.OriginalPrice != nil {
		listing.OriginalPrice = *input.OriginalPrice
	}
	if input.Condition != nil {
		listing.Condition = *input.Condition
	}
	if input.Subject != nil {
		listing.Subject = *input.Subject
	}
	if input.Course != nil {
		listing.Course = *input.Course
	}
	if input.ExamType != nil {
		listing.ExamType = *input.ExamType
	}
	if input.Images != nil {
		listing.Images = *input.Images
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, errors.BadRequest("Stock cannot be negative", nil)
		}
		listing.Stock = *input.Stock
	}
	if input.Location != nil {
		listing.Location = *input.Location
	}
	if input.DeliveryOptions != nil {
		listing.DeliveryOptions = *input.DeliveryOptions
	}

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

func (uc *ListingUseCase) UpdateStatus(ctx context.Context, userID, listingID, newStatus string) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if listing.SellerID != userID {
		return nil, errors.Forbidden("Only the seller can change this listing", nil)
	}
	if !entity.CanTransitionListingStatus(listing.Status, newStatus) {
		return nil, errors.Conflict("Listing cannot move from " + listing.Status + " to " + newStatus)
	}

	listing.Status = newStatus
	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

func (uc *ListingUseCase) Delete(ctx context.Context, userID, listingID string) error {
	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return err
	}

	if listing.SellerID != userID {
		return errors.Forbidden("Only the seller can delete this listing", nil)
	}

	return uc.listingRepo.Delete(ctx, listingID)
}

// PlaceBid records a bid on an auction listing. Bids must beat both the
// asking price and the current high bid.
func (uc *ListingUseCase) PlaceBid(ctx context.Context, userID, listingID string, amount float64) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if listing.SaleType != entity.SaleTypeAuction {
		return nil, errors.BadRequest("Listing is not an auction", nil)
	}
	if listing.Status != entity.ListingStatusActive {
		return nil, errors.Conflict("Auction is not active")
	}
	if listing.SellerID == userID {
		return nil, errors.BadRequest("Sellers cannot bid on their own listing", nil)
	}
	if listing.AuctionEndDate != nil && time.Now().After(*listing.AuctionEndDate) {
		return nil, errors.Conflict("Auction has ended")
	}
	if amount <= listing.Price || amount <= listing.CurrentBid {
		return nil, errors.BadRequest("Bid must exceed the asking price and the current bid", nil)
	}

	listing.CurrentBid = amount
	listing.Bidders = append(listing.Bidders, entity.Bid{
		UserID:    userID,
		Amount:    amount,
		Timestamp: time.Now(),
	})

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}
