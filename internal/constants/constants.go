package constants

import "time"

// API endpoint defaults.
const (
	// DefaultEndpoint is the public GridIron REST endpoint. The trailing
	// slash matters: request URLs are built as endpoint + service + "/" + function.
	DefaultEndpoint = "https://api.gridiron.cloud/rest/v3/"

	// DefaultService is the service addressed when none is configured.
	DefaultService = "Hardware_Server"

	// DefaultFunction is the function invoked when none is configured.
	DefaultFunction = "getObject"

	// SessionService is the service used by the session token exchange.
	SessionService = "User_Employee"

	// SessionFunction is the function used by the session token exchange.
	SessionFunction = "performTokenExchange"
)

// Wire parameter and header names.
const (
	// QueryObjectMask carries the serialized field-selection mask.
	QueryObjectMask = "objectMask"

	// QueryObjectFilter carries the JSON-serialized filter object.
	QueryObjectFilter = "objectFilter"

	// QueryResultLimit carries the pagination window as "<offset>,<limit>".
	QueryResultLimit = "resultLimit"

	// TotalItemsHeader is the response header carrying the total result count.
	TotalItemsHeader = "Gridiron-Total-Items"

	// TokenFormField is the form field carrying the one-time login token.
	TokenFormField = "remoteToken"
)

// Pagination defaults.
const (
	// DefaultLimit is the result window size when none is configured.
	DefaultLimit = 25

	// DefaultPageDelay is the quiescent interval between sequential page
	// fetches. A throttle toward the remote service, not error backoff.
	DefaultPageDelay = 300 * time.Millisecond
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retries are off unless a caller opts in; the remote
// contract is one request per execution.
const (
	// DefaultRetryWaitMin is the minimum wait between opt-in retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between opt-in retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// UserAgent identifies this client on the wire.
const UserAgent = "gridapi-client/1.0"
