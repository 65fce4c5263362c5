package gridclient

import (
	"strings"

	"github.com/gridiron-io/gridapi-client/internal/auth"
	"github.com/gridiron-io/gridapi-client/internal/constants"
	"github.com/gridiron-io/gridapi-client/internal/http"
	"github.com/gridiron-io/gridapi-client/pkg/gridapi"
)

// credentialsRef adapts a builder into the transport's credentials
// source, so a session pair adopted by EmployeeLogin reaches every
// subsequent call.
type credentialsRef struct {
	builder *RequestBuilder
}

func (r credentialsRef) Credentials() auth.Credentials {
	return r.builder.creds
}

// New creates a request builder. A nil config means all defaults: the
// public endpoint, the hardware object service, and the generic object
// getter, with an empty mask.
func New(config *gridapi.Config) *RequestBuilder {
	if config == nil {
		config = &gridapi.Config{}
	}

	builder := &RequestBuilder{
		endpoint:  normalizeEndpoint(config.Endpoint),
		service:   config.Service,
		function:  config.Function,
		mask:      config.Mask,
		filter:    config.Filter,
		limit:     config.Limit,
		offset:    config.Offset,
		pageDelay: config.PageDelay,
		logger:    config.Logger,
		creds: auth.Credentials{
			Username: config.Username,
			Password: config.Password,
		},
	}

	if builder.service == "" {
		builder.service = constants.DefaultService
	}

	if builder.function == "" {
		builder.function = constants.DefaultFunction
	}

	if builder.mask == nil {
		builder.mask = gridapi.NewObjectMask()
	}

	if builder.limit == 0 {
		builder.limit = constants.DefaultLimit
	}

	if builder.pageDelay == 0 {
		builder.pageDelay = constants.DefaultPageDelay
	}

	opts := []http.Option{}

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		opts = append(opts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	builder.httpClient = http.NewClient(credentialsRef{builder: builder}, opts...)

	return builder
}

// NewWithPassword creates a builder with just an endpoint and a Basic
// auth pair.
func NewWithPassword(endpoint, username, password string) *RequestBuilder {
	return New(&gridapi.Config{
		Endpoint: endpoint,
		Username: username,
		Password: password,
	})
}

// normalizeEndpoint adds a scheme when absent and ensures a trailing
// slash; request URLs concatenate service and function onto the endpoint.
func normalizeEndpoint(endpoint string) string {
	if endpoint == "" {
		return constants.DefaultEndpoint
	}

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}

	return endpoint
}
