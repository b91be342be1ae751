package censys

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/andyle182810/censys/httpclient"
)

const (
	// AtTimeLayout is the at_time wire format: microseconds and a literal Z.
	AtTimeLayout = "2006-01-02T15:04:05.000000Z"

	DefaultUserAgent = "censys-go"
)

// Document is a response body returned as decoded, without validation.
type Document map[string]any

// Client talks to the Censys Search v2 hosts API. It is safe for concurrent
// use; nothing changes after New returns.
type Client struct {
	http   *httpclient.Client
	logger zerolog.Logger
}

type Option func(*clientOptions)

type clientOptions struct {
	logger          zerolog.Logger
	doer            httpclient.Doer
	maxResponseSize int64
	userAgent       string
}

type requestIDKey struct{}

// ContextWithRequestID makes calls made with ctx send id as X-Request-ID
// instead of a generated one.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithHTTPClient replaces the transport. Config.Timeout and Config.ProxyURL
// are not applied to a custom client.
func WithHTTPClient(doer httpclient.Doer) Option {
	return func(o *clientOptions) {
		o.doer = doer
	}
}

func WithMaxResponseSize(size int64) Option {
	return func(o *clientOptions) {
		o.maxResponseSize = size
	}
}

func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &clientOptions{
		logger:          zerolog.Nop(),
		doer:            nil,
		maxResponseSize: 0,
		userAgent:       DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(options)
	}

	httpOpts := []httpclient.Option{
		httpclient.WithBasicAuth(cfg.Credentials.ID, cfg.Credentials.Secret),
		httpclient.WithTimeout(cfg.timeout()),
		httpclient.WithLogger(options.logger),
		httpclient.WithMaxResponseSize(options.maxResponseSize),
		httpclient.WithRequestIDKey(requestIDKey{}),
		httpclient.WithDefaultHeaders(map[string]string{
			httpclient.HeaderUserAgent: options.userAgent,
		}),
	}

	if cfg.ProxyURL != "" {
		proxyURL, err := httpclient.ParseProxyURL(cfg.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}

		httpOpts = append(httpOpts, httpclient.WithProxy(proxyURL))
	}

	if options.doer != nil {
		httpOpts = append(httpOpts, httpclient.WithHTTPClient(options.doer))
	}

	return &Client{
		http:   httpclient.New(cfg.baseURL(), httpOpts...),
		logger: options.logger,
	}, nil
}

func (c *Client) BaseURL() string {
	return c.http.BaseURL()
}

type ViewOption func(httpclient.Params)

// WithAtTime fetches the document as it was at t. A zero t is ignored.
func WithAtTime(t time.Time) ViewOption {
	return func(p httpclient.Params) {
		if t.IsZero() {
			return
		}

		p["at_time"] = FormatAtTime(t)
	}
}

func FormatAtTime(t time.Time) string {
	return t.UTC().Format(AtTimeLayout)
}

// View returns the current data for one host, GET /{documentID}.
func (c *Client) View(ctx context.Context, documentID string, opts ...ViewOption) (Document, error) {
	if documentID == "" {
		return nil, fmt.Errorf("%w: document id is required", ErrInvalidArgument)
	}

	params := httpclient.Params{}
	for _, opt := range opts {
		opt(params)
	}

	return c.get(ctx, "/"+url.PathEscape(documentID), params)
}

type SearchOption func(httpclient.Params)

func WithPerPage(perPage int) SearchOption {
	return func(p httpclient.Params) {
		p["per_page"] = perPage
	}
}

// WithCursor requests the page a previous response linked to. An empty
// cursor means the first page and is not sent.
func WithCursor(cursor string) SearchOption {
	return func(p httpclient.Params) {
		if cursor == "" {
			return
		}

		p["cursor"] = cursor
	}
}

// Search runs query against the hosts index, GET /search.
func (c *Client) Search(ctx context.Context, query string, opts ...SearchOption) (Document, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidArgument)
	}

	params := httpclient.Params{"q": query}
	for _, opt := range opts {
		opt(params)
	}

	return c.get(ctx, "/search", params)
}

type AggregateOption func(httpclient.Params)

// WithNumBuckets caps the number of buckets. The server default is 50.
func WithNumBuckets(numBuckets int) AggregateOption {
	return func(p httpclient.Params) {
		p["num_buckets"] = numBuckets
	}
}

// Aggregate reports the breakdown of field over the hosts matching query,
// GET /aggregate.
func (c *Client) Aggregate(
	ctx context.Context,
	query string,
	field string,
	opts ...AggregateOption,
) (Document, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidArgument)
	}

	if field == "" {
		return nil, fmt.Errorf("%w: field is required", ErrInvalidArgument)
	}

	params := httpclient.Params{"q": query, "field": field}
	for _, opt := range opts {
		opt(params)
	}

	return c.get(ctx, "/aggregate", params)
}

func (c *Client) get(ctx context.Context, path string, params httpclient.Params) (Document, error) {
	doc, err := httpclient.GetJSON[Document](ctx, c.http, path, params)
	if err != nil {
		err = fromTransportError(err)

		c.logger.Debug().Err(err).Str("path", path).Msg("censys request failed")

		return nil, err
	}

	return doc, nil
}
