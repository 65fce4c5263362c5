package gridclient

import (
	"context"
	"fmt"
	nethttp "net/http"
	"net/url"

	"github.com/gridiron-io/gridapi-client/internal/auth"
	"github.com/gridiron-io/gridapi-client/internal/constants"
	"github.com/gridiron-io/gridapi-client/pkg/gridapi"
)

// EmployeeLogin exchanges a one-time token for a session credential pair
// and adopts it as this builder's username/password, returning the
// builder for further chaining. The exchange itself runs on a transient
// builder aimed at the fixed token-exchange service; this builder's
// configuration and in-flight state are untouched until the exchange
// succeeds.
func (b *RequestBuilder) EmployeeLogin(ctx context.Context, username, password, token string) (*RequestBuilder, error) {
	switch {
	case username == "":
		return nil, fmt.Errorf("%w: username", gridapi.ErrMissingCredentials)
	case password == "":
		return nil, fmt.Errorf("%w: password", gridapi.ErrMissingCredentials)
	case token == "":
		return nil, fmt.Errorf("%w: token", gridapi.ErrMissingCredentials)
	}

	exchange := New(&gridapi.Config{
		Endpoint: b.endpoint,
		Service:  constants.SessionService,
		Function: constants.SessionFunction,
		Username: username,
		Password: password,
		Logger:   b.logger,
	}).
		Method(nethttp.MethodPost).
		Body(url.Values{constants.TokenFormField: []string{token}})

	err := exchange.ExecInto(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("exchanging login token: %w", err)
	}

	session, err := auth.DecodeSession(exchange.lastResponse.Body)
	if err != nil {
		return nil, err
	}

	b.creds = auth.Credentials{
		Username: session.UserID.String(),
		Password: session.Hash,
	}

	return b, nil
}
