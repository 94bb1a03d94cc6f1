package sendgrid

import (
	"fmt"

	"github.com/gsquire/sendgrid/internal/core"
)

// Re-exported error types produced while building a message.
type (
	// EncodeError wraps a failure to serialize a message for the wire.
	EncodeError = core.EncodeError

	// TooManyItemsError indicates a collection exceeding a provider limit,
	// such as more than 25 unsubscribe groups to display.
	TooManyItemsError = core.TooManyItemsError
)

// Re-exported sentinel errors.
var (
	// ErrInvalidFilename indicates an attachment path that is not valid UTF-8.
	ErrInvalidFilename = core.ErrInvalidFilename

	// ErrInvalidTemplateValue indicates dynamic template data whose top level
	// is not a JSON object.
	ErrInvalidTemplateValue = core.ErrInvalidTemplateValue

	// ErrMissingDestination indicates a legacy mail encoded without any to
	// addresses.
	ErrMissingDestination = core.ErrMissingDestination
)

// InvalidHeaderError indicates a credential or header value containing bytes
// that cannot appear in an HTTP header. The offending value is deliberately
// not carried, since it is usually the API key.
type InvalidHeaderError struct {
	// Header is the name of the header that could not be built.
	Header string
}

// Error implements the error interface.
func (e *InvalidHeaderError) Error() string {
	return fmt.Sprintf("invalid value for header %s", e.Header)
}

// TransportError wraps a network level failure during dispatch, including a
// failure to read the response body.
type TransportError struct {
	// Cause is the underlying HTTP client error.
	Cause error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Cause)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Cause
}

// RequestError indicates the API answered with a status code outside the 2xx
// range. It carries the status code and the full response body text.
type RequestError struct {
	// StatusCode is the HTTP status code returned by the API.
	StatusCode int

	// Body is the response body returned by the API.
	Body string
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Body)
}

// Is implements error matching for errors.Is.
func (e *RequestError) Is(target error) bool {
	re, ok := target.(*RequestError)
	if !ok {
		return false
	}
	return re.StatusCode == 0 || re.StatusCode == e.StatusCode
}
