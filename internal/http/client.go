// Package http wraps the retryable HTTP transport with the GridIron
// API's header, body, and error conventions.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/gridiron-io/gridapi-client/internal/auth"
	"github.com/gridiron-io/gridapi-client/internal/constants"
	"github.com/gridiron-io/gridapi-client/pkg/gridapi"
)

// Client executes HTTP requests against the API. It injects Basic auth
// from the configured credentials source, encodes bodies, and turns
// non-2xx responses into *gridapi.APIError.
type Client struct {
	httpClient  *retryablehttp.Client
	credentials auth.Source
	userAgent   string
	logger      gridapi.Logger
	debug       bool
}

// Request describes a single HTTP call. URL is absolute: the request
// builder owns URL derivation, the transport only executes.
type Request struct {
	Method  string
	URL     string
	Query   url.Values
	Headers map[string]string
	Body    any
}

// Response captures the raw result of a call.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the structured logger.
func WithLogger(logger gridapi.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout bounds a single round trip.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig enables transport retries. The API contract is one
// request per execution, so retries stay off unless a caller opts in.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// NewClient creates a transport client. credentials may be nil for
// unauthenticated calls.
func NewClient(credentials auth.Source, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil
	// Keep the final response when retries are exhausted so status and
	// body still reach the error path.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		httpClient:  retryClient,
		credentials: credentials,
		userAgent:   constants.UserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a single request and reads the full response body.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := req.URL

	if len(req.Query) > 0 {
		separator := "?"
		if strings.Contains(fullURL, "?") {
			separator = "&"
		}

		fullURL += separator + req.Query.Encode()
	}

	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if c.credentials != nil {
		creds := c.credentials.Credentials()
		if !creds.IsZero() {
			httpReq.Header.Set("Authorization", creds.BasicAuthorization())
		}
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": httpReq.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": resp.StatusCode,
			"bytes":  len(respBody),
		})
	}

	if resp.StatusCode < nethttp.StatusOK || resp.StatusCode >= nethttp.StatusMultipleChoices {
		return resp, gridapi.ParseAPIError(resp.StatusCode, respBody)
	}

	return resp, nil
}

// Get executes a GET request against an absolute URL.
func (c *Client) Get(ctx context.Context, rawURL string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, URL: rawURL, Query: query})
}

// Post executes a POST request against an absolute URL.
func (c *Client) Post(ctx context.Context, rawURL string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPost, URL: rawURL, Body: body})
}

// encodeBody prepares a request body: url.Values encode as a form, raw
// bytes pass through, anything else marshals to JSON.
func encodeBody(body any) (io.Reader, string, error) {
	switch payload := body.(type) {
	case nil:
		return nil, "", nil
	case url.Values:
		return strings.NewReader(payload.Encode()), "application/x-www-form-urlencoded", nil
	case []byte:
		return bytes.NewReader(payload), "application/json", nil
	default:
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, "", fmt.Errorf("encoding request body: %w", err)
		}

		return bytes.NewReader(data), "application/json", nil
	}
}
