package sendgrid

import (
	"context"
	"net/http"
)

// Public interfaces for the sendgrid library
type (
	// Sender is the blocking send capability. *Client implements it; the
	// asynchronous variant lives on AsyncClient, whose Send returns a result
	// channel instead.
	Sender interface {
		// Send dispatches one encoded message and classifies the response.
		// The message is never mutated or retained after the call returns.
		Send(ctx context.Context, p Payload) (*http.Response, error)
	}
)

// Bool returns a pointer to v. It is a convenience for the tri-state enable
// fields on tracking settings, where an explicit false must reach the wire.
func Bool(v bool) *bool {
	return &v
}
