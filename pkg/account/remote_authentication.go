package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/authform/pkg/httpclient"
)

// RemoteAuthentication logs in against the remote API.
type RemoteAuthentication struct {
	url    string
	client PostClient
	logger *slog.Logger
}

var _ Authentication = (*RemoteAuthentication)(nil)

// NewRemoteAuthentication posts credentials to url.
func NewRemoteAuthentication(url string, client PostClient, opts ...Option) *RemoteAuthentication {
	if client == nil {
		panic("account: post client cannot be nil")
	}
	o := applyOptions(opts)
	return &RemoteAuthentication{url: url, client: client, logger: o.logger}
}

// Auth posts the credentials and maps the response status:
// 200 yields the account, 401 ErrInvalidCredentials, anything else ErrUnexpected.
func (a *RemoteAuthentication) Auth(ctx context.Context, params AuthenticationParams) (Account, error) {
	resp, err := a.client.Post(ctx, httpclient.Request{URL: a.url, Body: params})
	if err != nil {
		a.logger.ErrorContext(ctx, "authentication request failed",
			slog.String("url", a.url),
			slog.String("error", err.Error()))
		return Account{}, errors.Join(ErrUnexpected, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var acc Account
		if err := resp.Decode(&acc); err != nil {
			return Account{}, errors.Join(ErrUnexpected, err)
		}
		if acc.AccessToken == "" {
			return Account{}, fmt.Errorf("%w: response has no access token", ErrUnexpected)
		}
		return acc, nil
	case http.StatusUnauthorized:
		return Account{}, ErrInvalidCredentials
	default:
		a.logger.WarnContext(ctx, "unexpected authentication response",
			slog.String("url", a.url),
			slog.Int("status", resp.StatusCode))
		return Account{}, fmt.Errorf("%w: status %d", ErrUnexpected, resp.StatusCode)
	}
}
