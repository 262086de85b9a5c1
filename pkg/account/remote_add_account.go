package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/authform/pkg/httpclient"
)

// RemoteAddAccount registers accounts through the remote API.
type RemoteAddAccount struct {
	url    string
	client PostClient
	logger *slog.Logger
}

var _ AddAccount = (*RemoteAddAccount)(nil)

// NewRemoteAddAccount posts new accounts to url.
func NewRemoteAddAccount(url string, client PostClient, opts ...Option) *RemoteAddAccount {
	if client == nil {
		panic("account: post client cannot be nil")
	}
	o := applyOptions(opts)
	return &RemoteAddAccount{url: url, client: client, logger: o.logger}
}

// Add posts the signup payload. 200 yields the new account, 403 means the
// email is taken and every other status is ErrUnexpected.
func (a *RemoteAddAccount) Add(ctx context.Context, params AddAccountParams) (Account, error) {
	resp, err := a.client.Post(ctx, httpclient.Request{URL: a.url, Body: params})
	if err != nil {
		a.logger.ErrorContext(ctx, "add account request failed",
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
		return acc, nil
	case http.StatusForbidden:
		return Account{}, ErrEmailInUse
	case http.StatusBadRequest:
		return Account{}, fmt.Errorf("%w: request rejected", ErrUnexpected)
	default:
		a.logger.WarnContext(ctx, "unexpected add account response",
			slog.String("url", a.url),
			slog.Int("status", resp.StatusCode))
		return Account{}, fmt.Errorf("%w: status %d", ErrUnexpected, resp.StatusCode)
	}
}
