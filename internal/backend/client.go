package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/bazarlabs/paygate/internal/config"
)

// Client is the storefront backend that proxies every provider call.
// The backend owns provider credentials server-side and enforces
// idempotency keyed on the order reference; this client only carries
// requests to it.
type Client interface {
	CreatePayment(ctx context.Context, input CreatePaymentInput) (*CreatePaymentResult, error)
	ExecutePayment(ctx context.Context, paymentID, method string) (*ExecutePaymentResult, error)
	VerifyNagadPayment(ctx context.Context, paymentRefID string) (*VerifyPaymentResult, error)
	InitiateCardPayment(ctx context.Context, input CardPaymentInput) (*CardPaymentResult, error)
	ValidateCardPayment(ctx context.Context, referenceID string) (bool, error)
}

type CreatePaymentInput struct {
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Reference string  `json:"reference"`
}

type CreatePaymentResult struct {
	RedirectURL string `json:"redirectURL"`
	PaymentID   string `json:"paymentID"`
}

type ExecutePaymentResult struct {
	Success bool   `json:"success"`
	TrxID   string `json:"trxID"`
	Message string `json:"message"`
}

type VerifyPaymentResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId"`
}

type CardPaymentInput struct {
	Amount          float64 `json:"amount"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerAddress string  `json:"customerAddress,omitempty"`
	Reference       string  `json:"reference"`
}

type CardPaymentResult struct {
	Success       bool   `json:"success"`
	PaymentURL    string `json:"paymentUrl"`
	TransactionID string `json:"transactionId"`
}

type httpClient struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	log     *zap.Logger
}

// NewClient builds the HTTP implementation of Client. Every call carries
// a bounded deadline and runs through a circuit breaker so a dead
// backend fails fast instead of holding checkout open.
func NewClient(cfg config.Config, log *zap.Logger) Client {
	timeout := cfg.Backend.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "storefront-backend",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &httpClient{
		baseURL: cfg.Backend.BaseURL,
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
		breaker: breaker,
		log:     log.Named("backend.client"),
	}
}

func (c *httpClient) CreatePayment(ctx context.Context, input CreatePaymentInput) (*CreatePaymentResult, error) {
	var out CreatePaymentResult
	if err := c.call(ctx, "createPayment", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) ExecutePayment(ctx context.Context, paymentID, method string) (*ExecutePaymentResult, error) {
	body := map[string]string{"paymentID": paymentID, "method": method}
	var out ExecutePaymentResult
	if err := c.call(ctx, "executePayment", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) VerifyNagadPayment(ctx context.Context, paymentRefID string) (*VerifyPaymentResult, error) {
	body := map[string]string{"paymentRefId": paymentRefID}
	var out VerifyPaymentResult
	if err := c.call(ctx, "verifyNagadPayment", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) InitiateCardPayment(ctx context.Context, input CardPaymentInput) (*CardPaymentResult, error) {
	var out CardPaymentResult
	if err := c.call(ctx, "initiateCardPayment", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *httpClient) ValidateCardPayment(ctx context.Context, referenceID string) (bool, error) {
	body := map[string]string{"referenceId": referenceID}
	var out struct {
		Success bool `json:"success"`
	}
	if err := c.call(ctx, "validateCardPayment", body, &out); err != nil {
		return false, err
	}
	return out.Success, nil
}

func (c *httpClient) call(ctx context.Context, op string, body any, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", op, err)
	}

	url := c.baseURL + "/rpc/" + op
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("build %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	result, err := c.breaker.Execute(func() (any, error) {
		resp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("backend rpc %s: status %d", op, resp.StatusCode)
		}
		return raw, nil
	})
	if err != nil {
		c.log.Error("backend rpc failed", zap.String("op", op), zap.Error(err))
		return err
	}

	if err := json.Unmarshal(result.([]byte), out); err != nil {
		c.log.Error("backend rpc returned malformed body", zap.String("op", op), zap.Error(err))
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}
