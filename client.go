package sendgrid

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/gsquire/sendgrid/internal/core"
)

// Type aliases to re-export core types for the public API.
// This allows users to access types like sendgrid.Message instead of
// core.Message, maintaining a clean public interface while keeping
// implementation details internal.
type (
	Payload                     = core.Payload
	Email                       = core.Email
	Content                     = core.Content
	Attachment                  = core.Attachment
	Disposition                 = core.Disposition
	Fields                      = core.Fields
	Message                     = core.Message
	Personalization             = core.Personalization
	TrackingSettings            = core.TrackingSettings
	ClickTrackingSetting        = core.ClickTrackingSetting
	OpenTrackingSetting         = core.OpenTrackingSetting
	SubscriptionTrackingSetting = core.SubscriptionTrackingSetting
	Setting                     = core.Setting
	Footer                      = core.Footer
	BypassFilters               = core.BypassFilters
	MailSettings                = core.MailSettings
	UnsubscribeGroups           = core.UnsubscribeGroups
	Mail                        = core.Mail
	Destination                 = core.Destination
)

// Disposition constants
const (
	DispositionInline     = core.DispositionInline
	DispositionAttachment = core.DispositionAttachment
)

// Constructor functions
var (
	NewEmail             = core.NewEmail
	NewContent           = core.NewContent
	NewAttachment        = core.NewAttachment
	NewInlineAttachment  = core.NewInlineAttachment
	NewMessage           = core.NewMessage
	NewPersonalization   = core.NewPersonalization
	NewMail              = core.NewMail
	NewSetting           = core.NewSetting
	NewFooter            = core.NewFooter
	NewMailSettings      = core.NewMailSettings
	NewUnsubscribeGroups = core.NewUnsubscribeGroups
)

var _ Sender = (*Client)(nil)

// Client dispatches encoded messages to the API in blocking mode: Send
// occupies the calling goroutine until the HTTP exchange completes or fails.
// The held credential and transport are immutable after construction, so a
// Client is safe for concurrent use without synchronization.
type Client struct {
	apiKey     string
	baseURL    string
	userAgent  string
	httpClient Doer
	tracer     trace.Tracer
}

// New creates a blocking client holding the given API key. The key is
// validated for header-legal bytes here rather than on first send.
func New(apiKey string, opts ...Option) (*Client, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	if !validHeaderValue("Bearer " + apiKey) {
		return nil, &InvalidHeaderError{Header: "Authorization"}
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimSuffix(config.BaseURL, "/"),
		userAgent:  config.UserAgent,
		httpClient: httpClient,
		tracer:     otel.Tracer("github.com/gsquire/sendgrid"),
	}, nil
}

// Send encodes the payload, posts it to the payload's endpoint and classifies
// the response. A status outside the 2xx range becomes a RequestError
// carrying the status code and the full body text. On success the raw
// response is returned with its body unconsumed; the caller closes it.
func (c *Client) Send(ctx context.Context, p Payload) (*http.Response, error) {
	ctx, span := c.tracer.Start(ctx, "sendgrid.Client.Send")
	defer span.End()

	span.SetAttributes(
		attribute.String("sendgrid.endpoint", p.Endpoint()),
		attribute.String("sendgrid.content_type", p.ContentType()),
	)

	body, err := p.Encode()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "encoding failed")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+p.Endpoint(), bytes.NewReader(body))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request construction failed")
		return nil, &TransportError{Cause: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", p.ContentType())
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		transportErr := &TransportError{Cause: err}
		span.RecordError(transportErr)
		span.SetStatus(codes.Error, "dispatch failed")
		return nil, transportErr
	}

	span.SetAttributes(attribute.Int("sendgrid.status_code", resp.StatusCode))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer resp.Body.Close()

		text, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			transportErr := &TransportError{Cause: readErr}
			span.RecordError(transportErr)
			span.SetStatus(codes.Error, "response read failed")
			return nil, transportErr
		}

		reqErr := &RequestError{StatusCode: resp.StatusCode, Body: string(text)}
		span.RecordError(reqErr)
		span.SetStatus(codes.Error, "request not successful")
		return nil, reqErr
	}

	span.SetStatus(codes.Ok, "message sent")
	return resp, nil
}

// SendResult carries the outcome of an asynchronous send. Exactly one of
// Response and Err is set.
type SendResult struct {
	// Response is the raw API response on success.
	Response *http.Response

	// Err is the typed failure, if any.
	Err error
}

// AsyncClient dispatches encoded messages in non-blocking mode: Send starts
// the HTTP exchange on its own goroutine and delivers the outcome on the
// returned channel. A client instance is built for one mode; the two modes
// are never mixed within one instance.
type AsyncClient struct {
	client *Client
}

// NewAsync creates a non-blocking client holding the given API key.
func NewAsync(apiKey string, opts ...Option) (*AsyncClient, error) {
	client, err := New(apiKey, opts...)
	if err != nil {
		return nil, err
	}
	return &AsyncClient{client: client}, nil
}

// Send starts the HTTP exchange and returns immediately. The result channel
// receives exactly one SendResult and is then closed. Cancellation is
// governed by the caller's context, as in blocking mode.
func (c *AsyncClient) Send(ctx context.Context, p Payload) <-chan SendResult {
	results := make(chan SendResult, 1)
	go func() {
		defer close(results)
		resp, err := c.client.Send(ctx, p)
		results <- SendResult{Response: resp, Err: err}
	}()
	return results
}

// validHeaderValue reports whether s can appear as an HTTP header value: no
// control bytes other than horizontal tab.
func validHeaderValue(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == 0x7f || (b < 0x20 && b != '\t') {
			return false
		}
	}
	return true
}
