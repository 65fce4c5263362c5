package gridclient

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gridiron-io/gridapi-client/internal/auth"
	"github.com/gridiron-io/gridapi-client/internal/constants"
	"github.com/gridiron-io/gridapi-client/internal/http"
	"github.com/gridiron-io/gridapi-client/pkg/gridapi"
)

// RequestBuilder accumulates request configuration through chainable
// setters, derives request URLs, and executes one HTTP call per Exec.
//
// A builder is a single logical thread of control: its mutable state
// (configuration, mask, last response) is touched only by the call chain
// that owns it. Sharing one builder across goroutines is not supported.
type RequestBuilder struct {
	endpoint string
	service  string
	function string
	mask     *gridapi.ObjectMask
	filter   any
	limit    int
	offset   int
	method   string
	body     any
	creds    auth.Credentials

	pageDelay time.Duration
	logger    gridapi.Logger

	httpClient *http.Client

	// Result state of the most recent execution, overwritten by every Exec.
	lastResponse *http.Response
	started      time.Time
	finished     time.Time
}

// Response is the raw result of the most recent execution.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Endpoint sets the base URL.
func (b *RequestBuilder) Endpoint(endpoint string) *RequestBuilder {
	b.endpoint = normalizeEndpoint(endpoint)

	return b
}

// Service sets the remote service name.
func (b *RequestBuilder) Service(name string) *RequestBuilder {
	b.service = name

	return b
}

// Function sets the remote function name.
func (b *RequestBuilder) Function(name string) *RequestBuilder {
	b.function = name

	return b
}

// Filter sets the server-side filter object. It is opaque to the SDK
// and travels as JSON in the objectFilter query parameter.
func (b *RequestBuilder) Filter(filter any) *RequestBuilder {
	b.filter = filter

	return b
}

// Search is an alias for Filter.
func (b *RequestBuilder) Search(filter any) *RequestBuilder {
	return b.Filter(filter)
}

// Limit sets the result window size.
func (b *RequestBuilder) Limit(limit int) *RequestBuilder {
	b.limit = limit

	return b
}

// Offset sets the result window start.
func (b *RequestBuilder) Offset(offset int) *RequestBuilder {
	b.offset = offset

	return b
}

// Page derives the offset from a 1-based page number and the current
// limit. Set the limit first.
func (b *RequestBuilder) Page(page int) *RequestBuilder {
	b.offset = (page - 1) * b.limit

	return b
}

// Method sets the HTTP verb, compared case-insensitively.
func (b *RequestBuilder) Method(verb string) *RequestBuilder {
	b.method = verb

	return b
}

// Body sets the request body sent with POST executions. url.Values
// encode as a form, anything else as JSON.
func (b *RequestBuilder) Body(body any) *RequestBuilder {
	b.body = body

	return b
}

// Username sets the Basic auth username.
func (b *RequestBuilder) Username(username string) *RequestBuilder {
	b.creds.Username = username

	return b
}

// Password sets the Basic auth password.
func (b *RequestBuilder) Password(password string) *RequestBuilder {
	b.creds.Password = password

	return b
}

// Mask replaces the builder's field-selection mask. The builder keeps a
// reference: assigning one mask to several builders shares its mutations.
func (b *RequestBuilder) Mask(mask *gridapi.ObjectMask) *RequestBuilder {
	if mask == nil {
		mask = gridapi.NewObjectMask()
	}

	b.mask = mask

	return b
}

// ObjectMask returns the builder's mask for in-place mutation.
func (b *RequestBuilder) ObjectMask() *gridapi.ObjectMask {
	return b.mask
}

// PageDelay sets the quiescent interval between sequential page fetches.
func (b *RequestBuilder) PageDelay(delay time.Duration) *RequestBuilder {
	b.pageDelay = delay

	return b
}

// URL derives the base request URL as <endpoint><service>/<function>.
func (b *RequestBuilder) URL() (string, error) {
	if b.service == "" {
		return "", fmt.Errorf("%w: service name", gridapi.ErrMissingConfiguration)
	}

	if b.function == "" {
		return "", fmt.Errorf("%w: function name", gridapi.ErrMissingConfiguration)
	}

	return b.endpoint + b.service + "/" + b.function, nil
}

// URLQuery derives the full request URL including the query string.
// objectMask is omitted when the mask is empty and objectFilter when the
// filter serializes to nothing; resultLimit is always present.
func (b *RequestBuilder) URLQuery() (string, error) {
	base, err := b.URL()
	if err != nil {
		return "", err
	}

	query := url.Values{}

	if b.mask != nil && !b.mask.Empty() {
		query.Set(constants.QueryObjectMask, b.mask.String())
	}

	filter, err := b.encodeFilter()
	if err != nil {
		return "", err
	}

	if filter != "" {
		query.Set(constants.QueryObjectFilter, filter)
	}

	query.Set(constants.QueryResultLimit, strconv.Itoa(b.offset)+","+strconv.Itoa(b.limit))

	return base + "?" + query.Encode(), nil
}

// Exec issues exactly one HTTP request and returns the decoded JSON
// body. It fails with gridapi.ErrAuthenticationUnavailable before any
// HTTP activity when the credential pair is incomplete. The builder's
// result state (duration, total items, last response) reflects only the
// most recent call.
func (b *RequestBuilder) Exec(ctx context.Context) (any, error) {
	var result any

	err := b.ExecInto(ctx, &result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ExecInto is Exec decoding into a caller-provided value. A nil out
// skips decoding; the raw body stays available through LastResponse.
func (b *RequestBuilder) ExecInto(ctx context.Context, out any) error {
	if b.creds.IsZero() {
		return gridapi.ErrAuthenticationUnavailable
	}

	req, err := b.buildRequest()
	if err != nil {
		return err
	}

	b.started = time.Now()
	resp, execErr := b.httpClient.Do(ctx, req)
	b.finished = time.Now()
	b.lastResponse = resp

	if execErr != nil {
		return execErr
	}

	if out == nil {
		return nil
	}

	err = json.Unmarshal(resp.Body, out)
	if err != nil {
		return fmt.Errorf("parsing response body: %w", err)
	}

	return nil
}

// TotalItems reads the total result count of the last response. ok is
// false until a request has executed; an executed response without a
// parsable count header reports (0, true).
func (b *RequestBuilder) TotalItems() (int, bool) {
	if b.lastResponse == nil {
		return 0, false
	}

	count, err := strconv.Atoi(b.lastResponse.Headers.Get(constants.TotalItemsHeader))
	if err != nil {
		return 0, true
	}

	return count, true
}

// Duration returns the wall-clock duration of the last execution, zero
// before any request has executed.
func (b *RequestBuilder) Duration() time.Duration {
	if b.started.IsZero() {
		return 0
	}

	return b.finished.Sub(b.started)
}

// LastResponse returns the raw result of the most recent execution, or
// nil before any request has executed.
func (b *RequestBuilder) LastResponse() *Response {
	if b.lastResponse == nil {
		return nil
	}

	return &Response{
		StatusCode: b.lastResponse.StatusCode,
		Headers:    b.lastResponse.Headers,
		Body:       b.lastResponse.Body,
	}
}

// buildRequest picks the wire shape: POST goes to the bare URL with the
// configured body, everything else to URLQuery with none.
func (b *RequestBuilder) buildRequest() (*http.Request, error) {
	if strings.EqualFold(b.method, nethttp.MethodPost) {
		rawURL, err := b.URL()
		if err != nil {
			return nil, err
		}

		return &http.Request{Method: nethttp.MethodPost, URL: rawURL, Body: b.body}, nil
	}

	rawURL, err := b.URLQuery()
	if err != nil {
		return nil, err
	}

	method := strings.ToUpper(b.method)
	if method == "" {
		method = nethttp.MethodGet
	}

	return &http.Request{Method: method, URL: rawURL}, nil
}

// encodeFilter serializes the filter, reporting "" when it would add
// nothing to the query string.
func (b *RequestBuilder) encodeFilter() (string, error) {
	if b.filter == nil {
		return "", nil
	}

	data, err := json.Marshal(b.filter)
	if err != nil {
		return "", fmt.Errorf("encoding filter: %w", err)
	}

	filter := string(data)
	if filter == "{}" || filter == "null" {
		return "", nil
	}

	return filter, nil
}
