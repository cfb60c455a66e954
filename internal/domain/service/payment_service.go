package service

import "context"

// GatewayOrder is the remote order record created at the payment gateway
// before the client starts the checkout flow.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // smallest currency unit (paise)
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type CreateGatewayOrderRequest struct {
	Amount    float64 // rupees; converted to paise by the gateway service
	BookTitle string
	UserID    string
}

type PaymentGatewayService interface {
	CreateOrder(ctx context.Context, req CreateGatewayOrderRequest) (*GatewayOrder, error)
	// VerifySignature recomputes the gateway signature over
	// orderID|paymentID and compares it in constant time.
	VerifySignature(orderID, paymentID, signature string) bool
}
