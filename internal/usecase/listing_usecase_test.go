package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshare/internal/domain/entity"
	"bookshare/pkg/errors"
)

func seedUser(t *testing.T, repo *fakeUserRepo, user *entity.User) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), user))
}

func TestListingCreateSetsSeller(t *testing.T) {
	listingRepo := newFakeListingRepo()
	userRepo := newFakeUserRepo()
	uc := NewListingUseCase(listingRepo, userRepo)

	seedUser(t, userRepo, &entity.User{ID: "student-1", Role: entity.RoleStudent, IsActive: true})

	listing, err := uc.Create(context.Background(), "student-1", CreateListingInput{
		Title:    "Concepts of Physics",
		Price:    249,
		Category: "engineering",
		SaleType: entity.SaleTypeFixed,
	})
	require.NoError(t, err)

	assert.Equal(t, "student-1", listing.SellerID)
	assert.Equal(t, entity.ListingStatusActive, listing.Status)
	assert.Equal(t, 1, listing.Stock)
	assert.NotEmpty(t, listing.ID)
}

func TestListingCreateBlocksUnverifiedLibrary(t *testing.T) {
	listingRepo := newFakeListingRepo()
	userRepo := newFakeUserRepo()
	uc := NewListingUseCase(listingRepo, userRepo)

	seedUser(t, userRepo, &entity.User{
		ID: "lib-1", Role: entity.RoleLibrary, IsActive: true, KYCStatus: entity.KYCPending,
	})

	_, err := uc.Create(context.Background(), "lib-1", CreateListingInput{
		Title: "NCERT Bundle", Price: 500, Category: "school", SaleType: entity.SaleTypeFixed,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	require.NoError(t, userRepo.UpdateKYCStatus(context.Background(), "lib-1", entity.KYCVerified))

	_, err = uc.Create(context.Background(), "lib-1", CreateListingInput{
		Title: "NCERT Bundle", Price: 500, Category: "school", SaleType: entity.SaleTypeFixed,
	})
	assert.NoError(t, err)
}

func TestListingCreateValidation(t *testing.T) {
	listingRepo := newFakeListingRepo()
	userRepo := newFakeUserRepo()
	uc := NewListingUseCase(listingRepo, userRepo)

	seedUser(t, userRepo, &entity.User{ID: "s1", Role: entity.RoleStudent, IsActive: true})

	_, err := uc.Create(context.Background(), "s1", CreateListingInput{
		Title: "x", Price: 10, Category: "cooking", SaleType: entity.SaleTypeFixed,
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"), "unknown category")

	_, err = uc.Create(context.Background(), "s1", CreateListingInput{
		Title: "x", Price: 10, Category: "upsc", SaleType: entity.SaleTypeAuction,
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"), "auction without end date")

	_, err = uc.Create(context.Background(), "s1", CreateListingInput{
		Title: "x", Price: 10, Category: "upsc", SaleType: entity.SaleTypeFixed, ListingType: "digital",
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"), "digital without file")
}

func TestListingUpdateOwnership(t *testing.T) {
	listingRepo := newFakeListingRepo()
	userRepo := newFakeUserRepo()
	uc := NewListingUseCase(listingRepo, userRepo)

	listing := &entity.Listing{SellerID: "s1", Title: "old", Price: 100, Status: entity.ListingStatusActive}
	require.NoError(t, listingRepo.Create(context.Background(), listing))

	newTitle := "new"
	_, err := uc.Update(context.Background(), "someone-else", listing.ID, UpdateListingInput{Title: &newTitle})
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	updated, err := uc.Update(context.Background(), "s1", listing.ID, UpdateListingInput{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Title)
	assert.Equal(t, 100.0, updated.Price)
}

func TestListingUpdateSoldRejected(t *testing.T) {
	listingRepo := newFakeListingRepo()
	uc := NewListingUseCase(listingRepo, newFakeUserRepo())

	listing := &entity.Listing{SellerID: "s1", Status: entity.ListingStatusSold}
	require.NoError(t, listingRepo.Create(context.Background(), listing))

	price := 50.0
	_, err := uc.Update(context.Background(), "s1", listing.ID, UpdateListingInput{Price: &price})
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestListingUpdateStatusTransitions(t *testing.T) {
	listingRepo := newFakeListingRepo()
	uc := NewListingUseCase(listingRepo, newFakeUserRepo())

	listing := &entity.Listing{SellerID: "s1", Status: entity.ListingStatusActive}
	require.NoError(t, listingRepo.Create(context.Background(), listing))

	updated, err := uc.UpdateStatus(context.Background(), "s1", listing.ID, entity.ListingStatusInactive)
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusInactive, updated.Status)

	// Inactive listings cannot jump straight to sold.
	_, err = uc.UpdateStatus(context.Background(), "s1", listing.ID, entity.ListingStatusSold)
	assert.True(t, errors.Is(err, "CONFLICT"))

	_, err = uc.UpdateStatus(context.Background(), "intruder", listing.ID, entity.ListingStatusActive)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestPlaceBid(t *testing.T) {
	listingRepo := newFakeListingRepo()
	uc := NewListingUseCase(listingRepo, newFakeUserRepo())

	end := time.Now().Add(24 * time.Hour)
	auction := &entity.Listing{
		SellerID:       "seller",
		Price:          100,
		SaleType:       entity.SaleTypeAuction,
		AuctionEndDate: &end,
		Status:         entity.ListingStatusActive,
	}
	require.NoError(t, listingRepo.Create(context.Background(), auction))

	_, err := uc.PlaceBid(context.Background(), "seller", auction.ID, 150)
	assert.True(t, errors.Is(err, "BAD_REQUEST"), "own listing")

	_, err = uc.PlaceBid(context.Background(), "bidder", auction.ID, 100)
	assert.True(t, errors.Is(err, "BAD_REQUEST"), "bid must exceed asking price")

	updated, err := uc.PlaceBid(context.Background(), "bidder", auction.ID, 150)
	require.NoError(t, err)
	assert.Equal(t, 150.0, updated.CurrentBid)
	require.Len(t, updated.Bidders, 1)
	assert.Equal(t, "bidder", updated.Bidders[0].UserID)

	_, err = uc.PlaceBid(context.Background(), "bidder2", auction.ID, 150)
	assert.True(t, errors.Is(err, "BAD_REQUEST"), "bid must exceed current bid")

	_, err = uc.PlaceBid(context.Background(), "bidder2", auction.ID, 200)
	assert.NoError(t, err)
}

func TestPlaceBidClosedAuction(t *testing.T) {
	listingRepo := newFakeListingRepo()
	uc := NewListingUseCase(listingRepo, newFakeUserRepo())

	past := time.Now().Add(-time.Hour)
	ended := &entity.Listing{
		SellerID: "seller", Price: 100,
		SaleType: entity.SaleTypeAuction, AuctionEndDate: &past,
		Status: entity.ListingStatusActive,
	}
	require.NoError(t, listingRepo.Create(context.Background(), ended))

	_, err := uc.PlaceBid(context.Background(), "bidder", ended.ID, 150)
	assert.True(t, errors.Is(err, "CONFLICT"))

	fixed := &entity.Listing{SellerID: "seller", Price: 100, SaleType: entity.SaleTypeFixed, Status: entity.ListingStatusActive}
	require.NoError(t, listingRepo.Create(context.Background(), fixed))

	_, err = uc.PlaceBid(context.Background(), "bidder", fixed.ID, 150)
	assert.True(t, errors.Is(err, "BAD_REQUEST"), "not an auction")
}

func TestListDefaultsToActive(t *testing.T) {
	listingRepo := newFakeListingRepo()
	uc := NewListingUseCase(listingRepo, newFakeUserRepo())

	require.NoError(t, listingRepo.Create(context.Background(), &entity.Listing{SellerID: "s", Status: entity.ListingStatusActive}))
	require.NoError(t, listingRepo.Create(context.Background(), &entity.Listing{SellerID: "s", Status: entity.ListingStatusSold}))

	listings, total, err := uc.List(context.Background(), nil, "", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, listings, 1)
	assert.Equal(t, entity.ListingStatusActive, listings[0].Status)
}
