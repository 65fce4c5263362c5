// Package auth holds the credential types shared by the transport and
// the request builder: the Basic auth pair and the session-exchange
// payload handling.
package auth

import "encoding/base64"

// Credentials is a Basic auth pair: either an account username/password
// or a session identifier/hash obtained through the token exchange.
type Credentials struct {
	Username string
	Password string
}

// IsZero reports whether either half of the pair is missing. The API
// rejects anonymous calls, so a partial pair is as unusable as none.
func (c Credentials) IsZero() bool {
	return c.Username == "" || c.Password == ""
}

// BasicAuthorization returns the Authorization header value for the pair.
func (c Credentials) BasicAuthorization() string {
	encoded := base64.StdEncoding.EncodeToString([]byte(c.Username + ":" + c.Password))

	return "Basic " + encoded
}

// Source supplies the credentials attached to outgoing requests. The
// request builder implements it, so a session pair adopted mid-flight is
// picked up by every subsequent call without rebuilding the transport.
type Source interface {
	Credentials() Credentials
}
