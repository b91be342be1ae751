package httpclient

import (
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultTimeout   = 30 * time.Second
	HeaderAccept     = "Accept"
	HeaderUserAgent  = "User-Agent"
	HeaderXRequestID = "X-Request-ID"
	ContentTypeJSON  = "application/json"
)

type Option func(*Client)

type BasicAuth struct {
	Username string
	Password string
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if httpClient, ok := c.httpClient.(*http.Client); ok {
			httpClient.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying client. The caller owns its redirect
// and proxy policy.
func WithHTTPClient(httpClient Doer) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithProxy routes requests through proxyURL. It only applies to the default
// transport and has no effect after WithHTTPClient.
func WithProxy(proxyURL *url.URL) Option {
	return func(c *Client) {
		httpClient, ok := c.httpClient.(*http.Client)
		if !ok || proxyURL == nil {
			return
		}

		if transport, ok := httpClient.Transport.(*http.Transport); ok {
			transport.Proxy = http.ProxyURL(proxyURL)
		}
	}
}

func WithBasicAuth(username, password string) Option {
	return func(c *Client) {
		c.basicAuth = &BasicAuth{
			Username: username,
			Password: password,
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRequestIDKey reads the X-Request-ID value from the request context
// under key. A random UUID is sent when the context has none.
func WithRequestIDKey(key any) Option {
	return func(c *Client) {
		c.requestIDKey = key
	}
}

func WithDefaultHeaders(headers map[string]string) Option {
	return func(c *Client) {
		maps.Copy(c.defaultHeaders, headers)
	}
}

func WithMaxResponseSize(size int64) Option {
	return func(c *Client) {
		c.maxResponseSize = size
	}
}

// ParseProxyURL keeps only the scheme, host and port of raw. Credentials,
// path and query are dropped. A missing scheme defaults to http.
func ParseProxyURL(raw string) (*url.URL, error) {
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProxy, err)
	}

	if parsed.Hostname() == "" {
		return nil, fmt.Errorf("%w: missing host in %q", ErrInvalidProxy, raw)
	}

	return &url.URL{ //nolint:exhaustruct
		Scheme: parsed.Scheme,
		Host:   parsed.Host,
	}, nil
}
