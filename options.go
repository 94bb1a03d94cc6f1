package sendgrid

import "time"

// Option is a functional option for configuring the client.
type Option func(*Config)

// WithBaseURL overrides the API host, for example to point at a regional
// endpoint or a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Config) {
		c.BaseURL = baseURL
	}
}

// WithHTTPClient substitutes the HTTP client used for dispatch.
func WithHTTPClient(client Doer) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithTimeout sets the timeout of the default HTTP client. It has no effect
// when WithHTTPClient is also given.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithUserAgent overrides the User-Agent header value.
func WithUserAgent(userAgent string) Option {
	return func(c *Config) {
		c.UserAgent = userAgent
	}
}
