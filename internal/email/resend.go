package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Email subjects. Fixed strings — the recipient-facing copy carries the
// personalization, not the subject line.
const (
	subjectConfirmation = "Coupon Purchase Confirmation"
	subjectWelcome      = "Welcome to Shepherd"
)

// resendClient is the concrete Sender backed by the Resend API.
type resendClient struct {
	apiKey     string
	fromAddr   string // e.g. "hello@shepherd.study"
	fromName   string // e.g. "Shepherd"
	baseURL    string // referral link base, e.g. "https://www.shepherd.study"
	httpClient *http.Client
}

// NewResendClient returns a Sender that delivers email via Resend.
// baseURL is the referral link base; empty falls back to the public site.
func NewResendClient(apiKey, fromAddr, fromName, baseURL string) Sender {
	if baseURL == "" {
		baseURL = "https://www.shepherd.study"
	}
	return &resendClient{
		apiKey:   apiKey,
		fromAddr: fromAddr,
		fromName: fromName,
		baseURL:  baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ─── RESEND API SHAPES ────────────────────────────────────────────────────────

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendResponse struct {
	ID    string `json:"id"`
	Error *struct {
		Name       string `json:"name"`
		Message    string `json:"message"`
		StatusCode int    `json:"statusCode"`
	} `json:"error"`
}

// ─── SENDER IMPLEMENTATION ────────────────────────────────────────────────────

// SendGiftConfirmation sends the purchaser confirmation email.
func (c *resendClient) SendGiftConfirmation(ctx context.Context, p ConfirmationParams) error {
	html := ConfirmationHTML(p.PurchaserName, p.RecipientNames, c.baseURL)
	return c.send(ctx, p.To, subjectConfirmation, html)
}

// SendRecipientWelcome sends one recipient their onboarding email.
func (c *resendClient) SendRecipientWelcome(ctx context.Context, p WelcomeParams) error {
	html := WelcomeHTML(p.RecipientName, p.PurchaserName, p.CouponCode, p.PersonalMessage)
	return c.send(ctx, p.To, subjectWelcome, html)
}

// ─── HTTP SEND ────────────────────────────────────────────────────────────────

func (c *resendClient) send(ctx context.Context, to, subject, html string) error {
	from := fmt.Sprintf("%s <%s>", c.fromName, c.fromAddr)

	reqBody := resendRequest{
		From:    from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("email: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		"https://api.resend.com/emails",
		bytes.NewReader(bodyBytes),
	)
	if err != nil {
		return fmt.Errorf("email: build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("email: http request: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return fmt.Errorf("email: read response: %w", err)
	}

	var parsed resendResponse
	if err := json.Unmarshal(respBytes, &parsed); err != nil {
		return fmt.Errorf("email: unmarshal response (status %d): %w", resp.StatusCode, err)
	}

	if parsed.Error != nil {
		return fmt.Errorf("email: Resend error %s: %s", parsed.Error.Name, parsed.Error.Message)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("email: unexpected status %d: %.200s", resp.StatusCode, string(respBytes))
	}

	return nil
}
