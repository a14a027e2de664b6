package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/tunedeck/checkout-service/internal/domain"
	"github.com/tunedeck/checkout-service/internal/infrastructure/metrics"
)

// Client talks to the hosted-checkout provider. All calls are
// server-to-server; the retrieval call is the only trusted source of a
// payment's outcome.
type Client struct {
	BaseURL   string
	APIKey    string
	SecretKey string

	httpClient *http.Client
	metrics    *metrics.CheckoutMetrics
	newNonce   func() string
}

func NewClient(baseURL, apiKey, secretKey string, m *metrics.CheckoutMetrics) *Client {
	nonce, err := nanoid.Standard(21)
	if err != nil {
		// Standard(21) only fails on an invalid length.
		panic(err)
	}
	return &Client{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		SecretKey:  secretKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		metrics:    m,
		newNonce:   nonce,
	}
}

func (c *Client) configured() bool {
	return c.BaseURL != "" && c.APIKey != "" && c.SecretKey != ""
}

func (c *Client) CreateCheckoutSession(ctx context.Context, input *domain.CreateSessionInput) (*domain.CheckoutSession, error) {
	if !c.configured() {
		return nil, domain.ErrGatewayNotConfigured
	}

	items := make([]basketItemPayload, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, basketItemPayload{
			ID:       fmt.Sprintf("%d", item.ID),
			Name:     item.Name,
			Category: item.Category,
			Price:    item.Price.StringFixed(2),
		})
	}

	reqBody := initializeRequest{
		ConversationID: input.ConversationID,
		Price:          input.Price.StringFixed(2),
		PaidPrice:      input.Price.StringFixed(2),
		Currency:       input.Currency,
		BasketID:       input.BasketID,
		CallbackURL:    input.CallbackURL,
		Buyer: buyerPayload{
			ID:    input.BuyerID,
			Email: input.BuyerEmail,
			Name:  input.BuyerName,
		},
		BasketItems: items,
	}

	var resp initializeResponse
	if err := c.post(ctx, "/checkoutform/initialize", "initialize", reqBody, &resp); err != nil {
		return nil, err
	}
	if resp.Status != statusSuccess {
		return nil, fmt.Errorf("gateway rejected session: %s", resp.ErrorMessage)
	}

	return &domain.CheckoutSession{
		Token:       resp.Token,
		FormContent: resp.CheckoutFormContent,
	}, nil
}

func (c *Client) RetrieveCheckoutSession(ctx context.Context, token string) (*domain.CheckoutResult, error) {
	if !c.configured() {
		return nil, domain.ErrGatewayNotConfigured
	}

	var resp retrieveResponse
	if err := c.post(ctx, "/checkoutform/retrieve", "retrieve", retrieveRequest{Token: token}, &resp); err != nil {
		return nil, err
	}
	if resp.Status != statusSuccess {
		return nil, fmt.Errorf("gateway retrieval failed: %s", resp.ErrorMessage)
	}

	return &domain.CheckoutResult{
		PaymentStatus: resp.PaymentStatus,
		Succeeded:     resp.PaymentStatus == paymentStatusSuccess,
		BasketID:      resp.BasketID,
	}, nil
}

// post sends a signed JSON request with bounded retry. Transient
// failures (network errors, 5xx) are retried with jitter; a 4xx is a
// permanent rejection and is returned immediately.
func (c *Client) post(ctx context.Context, path, operation string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	start := time.Now()
	respBody, err := c.doWithRetry(ctx, c.BaseURL+path, payload)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	if c.metrics != nil {
		c.metrics.RecordGatewayCall(operation, outcome, time.Since(start).Seconds())
	}
	if err != nil {
		return err
	}

	return json.Unmarshal(respBody, out)
}

var errTransient = errors.New("transient gateway error")

func (c *Client) doWithRetry(ctx context.Context, url string, payload []byte) ([]byte, error) {
	const maxAttempts = 3

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		body, err := c.doOnce(ctx, url, payload)
		if err == nil {
			return body, nil
		}
		if !errors.Is(err, errTransient) {
			return nil, err
		}
		lastErr = err

		if attempt < maxAttempts {
			backoff := time.Duration(attempt) * 200 * time.Millisecond
			jitter := time.Duration(time.Now().UnixNano() % int64(100*time.Millisecond))
			select {
			case <-time.After(backoff + jitter):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

func (c *Client) doOnce(ctx context.Context, url string, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}

	nonce := c.newNonce()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("x-request-nonce", nonce)
	req.Header.Set("x-signature", c.sign(nonce, payload))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errTransient, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errTransient, err)
	}

	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("%w: gateway returned %d", errTransient, resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("gateway returned %d: %s", resp.StatusCode, respBody)
	}
	return respBody, nil
}

func (c *Client) sign(nonce string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(c.SecretKey))
	mac.Write([]byte(nonce))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
