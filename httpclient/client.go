package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ Doer = (*http.Client)(nil)

type Client struct {
	baseURL         string
	httpClient      Doer
	requestIDKey    any
	defaultHeaders  map[string]string
	basicAuth       *BasicAuth
	logger          zerolog.Logger
	maxResponseSize int64 // 0 means no limit
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		httpClient:   newDefaultHTTPClient(),
		requestIDKey: nil,
		defaultHeaders: map[string]string{
			HeaderAccept: ContentTypeJSON,
		},
		basicAuth:       nil,
		logger:          zerolog.Nop(),
		maxResponseSize: 0,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// newDefaultHTTPClient never follows redirects and ignores proxy environment
// variables. A proxy is used only when set through WithProxy.
func newDefaultHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone() //nolint:forcetypeassert
	transport.Proxy = nil

	return &http.Client{ //nolint:exhaustruct
		Timeout:   DefaultTimeout,
		Transport: transport,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func (c *Client) Get(ctx context.Context, path string, params Params, response any) error {
	return c.do(ctx, http.MethodGet, path, params, response)
}

func (c *Client) do(ctx context.Context, method string, path string, params Params, response any) error {
	requestID := c.extractRequestID(ctx)

	req, err := c.buildRequest(ctx, method, path, params, requestID)
	if err != nil {
		return err
	}

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().
			Err(err).
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Dur("elapsed", time.Since(start)).
			Msg("request failed")

		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status_code", resp.StatusCode).
		Str("request_id", requestID).
		Dur("elapsed", time.Since(start)).
		Msg("request completed")

	return c.handleResponse(resp, response, requestID)
}

func (c *Client) extractRequestID(ctx context.Context) string {
	if c.requestIDKey != nil {
		if id, ok := ctx.Value(c.requestIDKey).(string); ok && id != "" {
			return id
		}
	}

	return uuid.New().String()
}

func (c *Client) buildRequest(
	ctx context.Context,
	method string,
	path string,
	params Params,
	requestID string,
) (*http.Request, error) {
	url := c.BuildURL(path, params)

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateRequest, err)
	}

	for k, v := range c.defaultHeaders {
		req.Header.Set(k, v)
	}

	req.Header.Set(HeaderXRequestID, requestID)

	if c.basicAuth != nil {
		req.SetBasicAuth(c.basicAuth.Username, c.basicAuth.Password)
	}

	return req, nil
}

// handleResponse decodes the body as JSON for every status. Only 200 is a
// success; any other status becomes a *ServiceError carrying the body's
// "error" field.
func (c *Client) handleResponse(resp *http.Response, response any, requestID string) error {
	respRequestID := resp.Header.Get(HeaderXRequestID)
	if respRequestID == "" {
		respRequestID = requestID
	}

	bodyBytes, err := c.readBody(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return c.handleErrorResponse(resp.StatusCode, bodyBytes, respRequestID)
	}

	if response == nil {
		if len(bodyBytes) == 0 || json.Valid(bodyBytes) {
			return nil
		}

		return fmt.Errorf("%w: invalid JSON body", ErrDecodeResponse)
	}

	if err := json.Unmarshal(bodyBytes, response); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	return nil
}

func (c *Client) readBody(body io.Reader) ([]byte, error) {
	if c.maxResponseSize > 0 {
		body = io.LimitReader(body, c.maxResponseSize+1)
	}

	bodyBytes, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	if c.maxResponseSize > 0 && int64(len(bodyBytes)) > c.maxResponseSize {
		return nil, ErrResponseTooLarge
	}

	return bodyBytes, nil
}

// handleErrorResponse fails with ErrDecodeResponse only for a body that is
// not JSON. A JSON body of any shape keeps the status.
func (c *Client) handleErrorResponse(statusCode int, bodyBytes []byte, requestID string) error {
	if !json.Valid(bodyBytes) {
		return fmt.Errorf("%w: status %d: invalid JSON body", ErrDecodeResponse, statusCode)
	}

	// A body that is not an object carries no message.
	var errResp ErrorResponse
	_ = json.Unmarshal(bodyBytes, &errResp)

	return NewServiceError(statusCode, errResp.StatusCode(), errResp.Message(), requestID)
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) BuildURL(path string, params Params) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	fullURL := c.baseURL + path

	query := params.Encode()
	if query == "" {
		return fullURL
	}

	return fullURL + "?" + query
}
