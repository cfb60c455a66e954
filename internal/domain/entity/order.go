package entity

import (
	"time"
)

const (
	OrderStatusPlaced    = "placed"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
	OrderStatusDisputed  = "disputed"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

type DeliveryAddress struct {
	Name    string `json:"name" firestore:"name"`
	Phone   string `json:"phone" firestore:"phone"`
	Address string `json:"address" firestore:"address"`
	City    string `json:"city" firestore:"city"`
	State   string `json:"state,omitempty" firestore:"state,omitempty"`
	Pincode string `json:"pincode,omitempty" firestore:"pincode,omitempty"`
}

type TrackingInfo struct {
	Courier           string     `json:"courier,omitempty" firestore:"courier,omitempty"`
	TrackingNumber    string     `json:"tracking_number,omitempty" firestore:"trackingNumber,omitempty"`
	EstimatedDelivery *time.Time `json:"estimated_delivery,omitempty" firestore:"estimatedDelivery,omitempty"`
}

type Order struct {
	ID        string `json:"id" firestore:"id"`
	BuyerID   string `json:"buyer_id" firestore:"buyerId"`
	SellerID  string `json:"seller_id" firestore:"sellerId"`
	ListingID string `json:"listing_id" firestore:"listingId"`

	Quantity    int     `json:"quantity" firestore:"quantity"`
	TotalAmount float64 `json:"total_amount" firestore:"totalAmount"`

	PaymentMethod string `json:"payment_method" firestore:"paymentMethod"` // upi, card, netbanking, wallet, cod
	PaymentStatus string `json:"payment_status" firestore:"paymentStatus"`
	OrderStatus   string `json:"order_status" firestore:"orderStatus"`

	DeliveryAddress DeliveryAddress `json:"delivery_address" firestore:"deliveryAddress"`
	TrackingInfo    TrackingInfo    `json:"tracking_info,omitempty" firestore:"trackingInfo,omitempty"`

	// Payment gateway linkage.
	GatewayOrderID   string `json:"gateway_order_id,omitempty" firestore:"gatewayOrderId,omitempty"`
	GatewayPaymentID string `json:"gateway_payment_id,omitempty" firestore:"gatewayPaymentId,omitempty"`

	EscrowReleased    bool       `json:"escrow_released" firestore:"escrowReleased"`
	EscrowReleaseDate *time.Time `json:"escrow_release_date,omitempty" firestore:"escrowReleaseDate,omitempty"`

	Reviewed bool   `json:"reviewed" firestore:"reviewed"`
	Notes    string `json:"notes,omitempty" firestore:"notes,omitempty"`

	CreatedAt   time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time  `json:"updated_at" firestore:"updatedAt"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty" firestore:"deliveredAt,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty" firestore:"cancelledAt,omitempty"`
}

// orderTransitions enumerates the forward path. cancelled and disputed are
// handled separately because they are reachable from any non-terminal state.
var orderTransitions = map[string][]string{
	OrderStatusPlaced:    {OrderStatusConfirmed},
	OrderStatusConfirmed: {OrderStatusShipped},
	OrderStatusShipped:   {OrderStatusDelivered},
	OrderStatusDisputed:  {},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

func IsTerminalOrderStatus(status string) bool {
	return status == OrderStatusDelivered || status == OrderStatusCancelled
}

// CanTransitionOrderStatus validates a requested order status move.
func CanTransitionOrderStatus(from, to string) bool {
	if to == OrderStatusCancelled || to == OrderStatusDisputed {
		return !IsTerminalOrderStatus(from) && from != to && from != OrderStatusDisputed
	}
	allowed, ok := orderTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}
