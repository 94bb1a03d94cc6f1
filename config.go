package sendgrid

import (
	"net/http"
	"net/url"
	"time"
)

// defaultBaseURL is the production API host.
const defaultBaseURL = "https://api.sendgrid.com"

// Doer executes a single HTTP request. *http.Client satisfies it; tests
// substitute stubs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config holds the client configuration. The zero value is completed by
// DefaultConfig; callers usually adjust it through functional options.
type Config struct {
	// BaseURL is the API host requests are sent to.
	BaseURL string

	// UserAgent identifies the library in the User-Agent header.
	UserAgent string

	// Timeout bounds the whole HTTP exchange when the default HTTP client is
	// used. Zero means no timeout; the library adds none of its own.
	Timeout time.Duration

	// HTTPClient performs the HTTP exchanges. When nil, an http.Client with
	// the configured Timeout is used.
	HTTPClient Doer
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:   defaultBaseURL,
		UserAgent: UserAgent(),
	}
}

// Validate checks if the configuration is valid and complete.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return &InvalidConfigError{Field: "base_url", Message: "base URL is required"}
	}
	if _, err := url.Parse(c.BaseURL); err != nil {
		return &InvalidConfigError{Field: "base_url", Message: "base URL is not a valid URL: " + err.Error()}
	}
	if c.Timeout < 0 {
		return &InvalidConfigError{Field: "timeout", Message: "timeout must not be negative"}
	}
	return nil
}

// InvalidConfigError represents an invalid client configuration.
type InvalidConfigError struct {
	// Field is the configuration field that failed validation.
	Field string

	// Message is the validation error message.
	Message string
}

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	return "invalid configuration for " + e.Field + ": " + e.Message
}
