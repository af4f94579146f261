package mailjet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/mailbridge"
)

// Sender implements mailbridge.Sender using the Mailjet v3.1 send API.
// It is stateless per call and safe for concurrent use.
type Sender struct {
	client *http.Client
	log    *slog.Logger
	config Config
}

// Option configures a Sender.
type Option func(*Sender)

// WithHTTPClient sets the HTTP client used for API calls.
// Default: http.DefaultClient. Timeouts are the client's concern; the
// sender enforces none of its own.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Sender) {
		s.client = client
	}
}

// WithLogger sets the logger for send attempts and outcomes.
// Default: a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Sender) {
		s.log = log
	}
}

// New creates a new Mailjet sender.
func New(cfg Config, opts ...Option) *Sender {
	s := &Sender{
		client: http.DefaultClient,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		config: cfg,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Capabilities implements mailbridge.CapabilityReporter. Mailjet accepts
// attachments, so the host may pass attachment data through as-is.
func (s *Sender) Capabilities() mailbridge.Capabilities {
	return mailbridge.Capabilities{Attachments: true}
}

// Send implements mailbridge.Sender. Provider extensions are empty on
// this path; use Deliver with a Message to set them.
func (s *Sender) Send(ctx context.Context, email *mailbridge.Email) error {
	_, err := s.Deliver(ctx, NewMessage(*email))
	return err
}

// Deliver performs exactly one HTTP POST of the message to the Mailjet
// send endpoint and classifies the outcome. A status code of 299 or
// below returns the provider's response verbatim; anything else returns
// a *APIError. There are no retries.
func (s *Sender) Deliver(ctx context.Context, msg Message) (*Response, error) {
	if err := s.config.Validate(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(buildRequest(msg))
	if err != nil {
		return nil, fmt.Errorf("mailjet: failed to encode request body: %w", err)
	}

	url := s.config.baseURL() + "/send"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("mailjet: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(s.config.APIKey, s.config.PrivateKey)

	s.log.DebugContext(ctx, "sending message",
		slog.String("url", url),
		slog.Int("recipients", len(msg.To)+len(msg.CC)+len(msg.BCC)))

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.ErrorContext(ctx, "transport failure", slog.String("error", err.Error()))
		return nil, newTransportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to read response body", slog.String("error", err.Error()))
		return nil, newTransportError(err)
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       respBody,
	}

	if resp.StatusCode > 299 {
		s.log.ErrorContext(ctx, "message rejected",
			slog.Int("status", resp.StatusCode))
		return nil, newStatusError(body, result)
	}

	s.log.DebugContext(ctx, "message accepted", slog.Int("status", resp.StatusCode))
	return result, nil
}
