package gridapi

import "time"

// Config represents builder configuration for gridclient.New.
//
// # Authentication
//
// The API authenticates every call with HTTP Basic credentials. Provide
// Username/Password directly, or leave them empty and obtain a session
// pair through the builder's EmployeeLogin exchange; either way the pair
// is sent as a Basic Authorization header on each execution.
//
// # Timeouts and retries
//
// Per-request cancellation should be controlled via the context passed to
// Exec and its helpers. HTTPTimeout bounds a single transport round trip.
// RetryMax defaults to 0: the API contract is one request per execution,
// so retries are strictly opt-in.
type Config struct {
	// Endpoint: base URL for the API. gridclient.New normalizes this value
	// by adding "https://" when no scheme is present and ensuring a
	// trailing slash (request URLs concatenate service and function onto it).
	Endpoint string

	// Service: remote service name addressed by the builder.
	// Defaults to the hardware object service.
	Service string
	// Function: remote function name invoked on the service.
	// Defaults to the generic object getter.
	Function string

	// Mask: initial field-selection mask. A nil mask starts empty.
	Mask *ObjectMask
	// Filter: arbitrary JSON-serializable filter object, opaque to the SDK.
	Filter any

	// Username: Basic auth username or session identifier.
	Username string
	// Password: Basic auth password or session hash.
	Password string

	// Limit: result window size, defaults to 25.
	Limit int
	// Offset: result window start, defaults to 0.
	Offset int

	// Optional configurations
	// HTTPTimeout: timeout for a single HTTP round trip.
	HTTPTimeout time.Duration
	// RetryMax: maximum transport retries. 0 (the default) disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// PageDelay: quiescent interval between sequential page fetches.
	// Defaults to 300ms.
	PageDelay time.Duration
	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer and pagination.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
}
