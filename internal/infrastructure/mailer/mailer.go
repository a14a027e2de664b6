package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tunedeck/checkout-service/internal/domain"
)

// HTTPMailer posts messages to a hosted mail provider's JSON API.
// Missing configuration degrades it to a silent no-op.
type HTTPMailer struct {
	APIURL string
	APIKey string
	From   string

	httpClient *http.Client
}

func NewHTTPMailer(apiURL, apiKey, from string) *HTTPMailer {
	return &HTTPMailer{
		APIURL:     apiURL,
		APIKey:     apiKey,
		From:       from,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (m *HTTPMailer) Configured() bool {
	return m.APIURL != "" && m.APIKey != "" && m.From != ""
}

func (m *HTTPMailer) Send(ctx context.Context, email domain.Email) error {
	if !m.Configured() {
		return nil
	}

	body, err := json.Marshal(sendRequest{
		From:    m.From,
		To:      email.To,
		Subject: email.Subject,
		Text:    email.Body,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.APIURL, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.APIKey)

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	var errResp errorResponse
	if err := json.Unmarshal(respBody, &errResp); err != nil || errResp.Error == "" {
		return fmt.Errorf("mail provider returned %d", resp.StatusCode)
	}
	return errors.New(errResp.Error)
}
