package account

import (
	"context"

	"github.com/dmitrymomot/authform/pkg/httpclient"
)

// AccessTokenKey is the storage key of an access token, and the prefix of
// per-account keys built by TokenKey.
const AccessTokenKey = "accessToken"

// Account is what the remote API returns for a successful login or signup.
type Account struct {
	AccessToken string `json:"accessToken"`
	Name        string `json:"name"`
}

type AuthenticationParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AddAccountParams struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
}

// Authentication logs an existing account in.
type Authentication interface {
	Auth(ctx context.Context, params AuthenticationParams) (Account, error)
}

// AddAccount registers a new account.
type AddAccount interface {
	Add(ctx context.Context, params AddAccountParams) (Account, error)
}

// SaveAccessToken persists the token of the signed in account.
type SaveAccessToken interface {
	Save(ctx context.Context, accessToken string) error
}

// PostClient is the HTTP transport the remote use cases depend on.
// *httpclient.Client satisfies it.
type PostClient interface {
	Post(ctx context.Context, req httpclient.Request) (*httpclient.Response, error)
}

// SetStorage is the write side of a key/value store.
// Every pkg/cache storage satisfies it.
type SetStorage interface {
	Set(ctx context.Context, key, value string) error
}
