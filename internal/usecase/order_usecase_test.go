package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshare/internal/domain/entity"
	"bookshare/pkg/errors"
)

func newOrderFixture(t *testing.T) (*OrderUseCase, *fakeOrderRepo, *fakeListingRepo) {
	t.Helper()
	listingRepo := newFakeListingRepo()
	orderRepo := newFakeOrderRepo(listingRepo)
	return NewOrderUseCase(orderRepo, listingRepo), orderRepo, listingRepo
}

func TestOrderCreateDerivesSellerAndAmount(t *testing.T) {
	uc, _, listingRepo := newOrderFixture(t)

	listing := &entity.Listing{SellerID: "seller", Price: 300, Stock: 5, Status: entity.ListingStatusActive}
	require.NoError(t, listingRepo.Create(context.Background(), listing))

	order, err := uc.Create(context.Background(), "buyer", CreateOrderInput{
		ListingID:     listing.ID,
		Quantity:      2,
		PaymentMethod: "upi",
	})
	require.NoError(t, err)

	assert.Equal(t, "seller", order.SellerID)
	assert.Equal(t, 600.0, order.TotalAmount)
	assert.Equal(t, entity.OrderStatusPlaced, order.OrderStatus)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)

	stored, err := listingRepo.GetByID(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Stock)
}

func TestOrderCreateRejectsSelfPurchase(t *testing.T) {
	uc, _, listingRepo := newOrderFixture(t)

	listing := &entity.Listing{SellerID: "seller", Price: 100, Stock: 1, Status: entity.ListingStatusActive}
	require.NoError(t, listingRepo.Create(context.Background(), listing))

	_, err := uc.Create(context.Background(), "seller", CreateOrderInput{ListingID: listing.ID})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestOrderCreateSoldOutFlipsListing(t *testing.T) {
	uc, _, listingRepo := newOrderFixture(t)

	listing := &entity.Listing{SellerID: "seller", Price: 100, Stock: 1, Status: entity.ListingStatusActive}
	require.NoError(t, listingRepo.Create(context.Background(), listing))

	_, err := uc.Create(context.Background(), "buyer", CreateOrderInput{ListingID: listing.ID})
	require.NoError(t, err)

	stored, err := listingRepo.GetByID(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Stock)
	assert.Equal(t, entity.ListingStatusSold, stored.Status)

	// The listing is now sold; a second buyer is turned away.
	_, err = uc.Create(context.Background(), "buyer2", CreateOrderInput{ListingID: listing.ID})
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestOrderCreateInsufficientStock(t *testing.T) {
	uc, _, listingRepo := newOrderFixture(t)

	listing := &entity.Listing{SellerID: "seller", Price: 100, Stock: 2, Status: entity.ListingStatusActive}
	require.NoError(t, listingRepo.Create(context.Background(), listing))

	_, err := uc.Create(context.Background(), "buyer", CreateOrderInput{ListingID: listing.ID, Quantity: 3})
	assert.True(t, errors.Is(err, "CONFLICT"))

	stored, err := listingRepo.GetByID(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Stock)
}

func TestOrderGetByIDParticipantsOnly(t *testing.T) {
	uc, orderRepo, listingRepo := newOrderFixture(t)

	listing := &entity.Listing{SellerID: "seller", Price: 100, Stock: 1, Status: entity.ListingStatusActive}
	require.NoError(t, listingRepo.Create(context.Background(), listing))

	order := &entity.Order{BuyerID: "buyer", SellerID: "seller", ListingID: listing.ID, Quantity: 1, OrderStatus: entity.OrderStatusPlaced}
	require.NoError(t, orderRepo.CreateWithStockDecrement(context.Background(), order))

	_, err := uc.GetByID(context.Background(), "buyer", order.ID)
	assert.NoError(t, err)
	_, err = uc.GetByID(context.Background(), "seller", order.ID)
	assert.NoError(t, err)
	_, err = uc.GetByID(context.Background(), "stranger", order.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestOrderStatusSellerDrivesForwardPath(t *testing.T) {
	uc, orderRepo, listingRepo := newOrderFixture(t)

	listing := &entity.Listing{SellerID: "seller", Price: 100, Stock: 2, Status: entity.ListingStatusActive}
	require.NoError(t, listingRepo.Create(context.Background(), listing))

	order := &entity.Order{
		BuyerID: "buyer", SellerID: "seller", ListingID: listing.ID, Quantity: 1,
		OrderStatus: entity.OrderStatusPlaced, PaymentStatus: entity.PaymentStatusPaid, PaymentMethod: "upi",
	}
	require.NoError(t, orderRepo.CreateWithStockDecrement(context.Background(), order))

	_, err := uc.UpdateStatus(context.Background(), "buyer", order.ID, UpdateOrderStatusInput{Status: entity.OrderStatusConfirmed})
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	_, err = uc.UpdateStatus(context.Background(), "seller", order.ID, UpdateOrderStatusInput{Status: entity.OrderStatusShipped})
	assert.True(t, errors.Is(err, "CONFLICT"), "cannot skip confirmed")

	updated, err := uc.UpdateStatus(context.Background(), "seller", order.ID, UpdateOrderStatusInput{Status: entity.OrderStatusConfirmed})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, updated.OrderStatus)

	tracking := &entity.TrackingInfo{Courier: "delhivery", TrackingNumber: "DL123"}
	updated, err = uc.UpdateStatus(context.Background(), "seller", order.ID, UpdateOrderStatusInput{Status: entity.OrderStatusShipped, TrackingInfo: tracking})
	require.NoError(t, err)
	assert.Equal(t, "DL123", updated.TrackingInfo.TrackingNumber)

	updated, err = uc.UpdateStatus(context.Background(), "seller", order.ID, UpdateOrderStatusInput{Status: entity.OrderStatusDelivered})
	require.NoError(t, err)
	require.NotNil(t, updated.DeliveredAt)
}

func TestOrderDeliveredRequiresPaymentUnlessCOD(t *testing.T) {
	uc, orderRepo, listingRepo := newOrderFixture(t)

	listing := &entity.Listing{SellerID: "seller", Price: 100, Stock: 5, Status: entity.ListingStatusActive}
	require.NoError(t, listingRepo.Create(context.Background(), listing))

	unpaid := &entity.Order{
		BuyerID: "buyer", SellerID: "seller", ListingID: listing.ID, Quantity: 1,
		OrderStatus: entity.OrderStatusShipped, PaymentStatus: entity.PaymentStatusPending, PaymentMethod: "upi",
	}
	require.NoError(t, orderRepo.CreateWithStockDecrement(context.Background(), unpaid))

	_, err := uc.UpdateStatus(context.Background(), "seller", unpaid.ID, UpdateOrderStatusInput{Status: entity.OrderStatusDelivered})
	assert.True(t, errors.Is(err, "CONFLICT"))

	cod := &entity.Order{
		BuyerID: "buyer", SellerID: "seller", ListingID: listing.ID, Quantity: 1,
		OrderStatus: entity.OrderStatusShipped, PaymentStatus: entity.PaymentStatusPending, PaymentMethod: "cod",
	}
	require.NoError(t, orderRepo.CreateWithStockDecrement(context.Background(), cod))

	_, err = uc.UpdateStatus(context.Background(), "seller", cod.ID, UpdateOrderStatusInput{Status: entity.OrderStatusDelivered})
	assert.NoError(t, err)
}

func TestOrderCancelRestocksAndRefunds(t *testing.T) {
	uc, _, listingRepo := newOrderFixture(t)

	listing := &entity.Listing{SellerID: "seller", Price: 100, Stock: 1, Status: entity.ListingStatusActive}
	require.NoError(t, listingRepo.Create(context.Background(), listing))

	order, err := uc.Create(context.Background(), "buyer", CreateOrderInput{ListingID: listing.ID, PaymentMethod: "upi"})
	require.NoError(t, err)

	// Simulate a completed payment before cancellation.
	order.PaymentStatus = entity.PaymentStatusPaid
	require.NoError(t, uc.orderRepo.Update(context.Background(), order))

	cancelled, err := uc.UpdateStatus(context.Background(), "buyer", order.ID, UpdateOrderStatusInput{Status: entity.OrderStatusCancelled})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusRefunded, cancelled.PaymentStatus)
	require.NotNil(t, cancelled.CancelledAt)

	stored, err := listingRepo.GetByID(context.Background(), listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Stock)
	assert.Equal(t, entity.ListingStatusActive, stored.Status)
}

func TestOrderBuyerCannotCancelAfterShipment(t *testing.T) {
	uc, orderRepo, listingRepo := newOrderFixture(t)

	listing := &entity.Listing{SellerID: "seller", Price: 100, Stock: 2, Status: entity.ListingStatusActive}
	require.NoError(t, listingRepo.Create(context.Background(), listing))

	order := &entity.Order{
		BuyerID: "buyer", SellerID: "seller", ListingID: listing.ID, Quantity: 1,
		OrderStatus: entity.OrderStatusShipped, PaymentStatus: entity.PaymentStatusPaid, PaymentMethod: "upi",
	}
	require.NoError(t, orderRepo.CreateWithStockDecrement(context.Background(), order))

	_, err := uc.UpdateStatus(context.Background(), "buyer", order.ID, UpdateOrderStatusInput{Status: entity.OrderStatusCancelled})
	assert.True(t, errors.Is(err, "CONFLICT"))

	// The seller still can.
	_, err = uc.UpdateStatus(context.Background(), "seller", order.ID, UpdateOrderStatusInput{Status: entity.OrderStatusCancelled})
	assert.NoError(t, err)
}

func TestOrderDisputeByEitherParty(t *testing.T) {
	uc, orderRepo, listingRepo := newOrderFixture(t)

	listing := &entity.Listing{SellerID: "seller", Price: 100, Stock: 2, Status: entity.ListingStatusActive}
	require.NoError(t, listingRepo.Create(context.Background(), listing))

	order := &entity.Order{
		BuyerID: "buyer", SellerID: "seller", ListingID: listing.ID, Quantity: 1,
		OrderStatus: entity.OrderStatusConfirmed, PaymentMethod: "upi",
	}
	require.NoError(t, orderRepo.CreateWithStockDecrement(context.Background(), order))

	_, err := uc.UpdateStatus(context.Background(), "stranger", order.ID, UpdateOrderStatusInput{Status: entity.OrderStatusDisputed})
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	disputed, err := uc.UpdateStatus(context.Background(), "buyer", order.ID, UpdateOrderStatusInput{Status: entity.OrderStatusDisputed})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDisputed, disputed.OrderStatus)

	_, err = uc.UpdateStatus(context.Background(), "seller", order.ID, UpdateOrderStatusInput{Status: entity.OrderStatusCancelled})
	assert.True(t, errors.Is(err, "CONFLICT"), "disputed orders are frozen")
}
