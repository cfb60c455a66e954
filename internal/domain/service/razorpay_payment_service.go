package service

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"bookshare/pkg/errors"
	"bookshare/pkg/logger"
)

const razorpayBaseURL = "https://api.razorpay.com/v1"

type RazorpayPaymentService struct {
	keyID     string
	keySecret string
	baseURL   string
	client    *http.Client
}

func NewRazorpayPaymentService(keyID, keySecret string) *RazorpayPaymentService {
	return &RazorpayPaymentService{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   razorpayBaseURL,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

type razorpayOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

func (s *RazorpayPaymentService) CreateOrder(ctx context.Context, req CreateGatewayOrderRequest) (*GatewayOrder, error) {
	logger.Info("Creating gateway order, amount: %.2f, title: %s", req.Amount, req.BookTitle)

	// Razorpay takes amounts in paise.
	orderReq := razorpayOrderRequest{
		Amount:   int64(req.Amount * 100),
		Currency: "INR",
		Receipt:  fmt.Sprintf("receipt_%s", uuid.New().String()),
		Notes: map[string]string{
			"bookTitle": req.BookTitle,
			"userId":    req.UserID,
		},
	}

	jsonData, err := json.Marshal(orderReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/orders", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	authHeader := base64.StdEncoding.EncodeToString([]byte(s.keyID + ":" + s.keySecret))
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Basic "+authHeader)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, errors.Upstream("Payment gateway is unreachable", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Upstream("Failed to read payment gateway response", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		logger.Error("Razorpay API error: status=%d", resp.StatusCode)
		return nil, errors.Upstream(fmt.Sprintf("Payment gateway rejected the order (status %d)", resp.StatusCode), nil)
	}

	var order GatewayOrder
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, errors.Upstream("Unexpected payment gateway response", err)
	}

	logger.Info("Gateway order created: %s", order.ID)
	return &order, nil
}

// VerifySignature checks the HMAC-SHA256 of orderID|paymentID against the
// client-supplied signature. hmac.Equal keeps the comparison constant-time.
func (s *RazorpayPaymentService) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
