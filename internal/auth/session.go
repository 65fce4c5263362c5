package auth

import (
	"encoding/json"
	"fmt"

	"github.com/gridiron-io/gridapi-client/pkg/gridapi"
)

// Session is the credential pair returned by a successful token
// exchange. UserID is numeric on the wire but is adopted as a username,
// so it is kept in string form.
type Session struct {
	UserID json.Number `json:"userId"`
	Hash   string      `json:"hash"`
}

// DecodeSession decodes a token-exchange response body. The exchange
// reports failures inside a 200 payload: a body carrying an "error"
// field is surfaced as *gridapi.APIError.
func DecodeSession(data []byte) (*Session, error) {
	var payload struct {
		Session

		Error string `json:"error"`
		Code  string `json:"code"`
	}

	err := json.Unmarshal(data, &payload)
	if err != nil {
		return nil, fmt.Errorf("parsing token exchange response: %w", err)
	}

	if payload.Error != "" {
		return nil, &gridapi.APIError{Code: payload.Code, Message: payload.Error}
	}

	return &payload.Session, nil
}
