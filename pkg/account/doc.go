// Package account holds the login and signup use cases of the auth front end.
//
// The use cases talk to a remote API through a PostClient and translate its
// status codes into domain errors:
//
//	client := httpclient.New(httpclient.WithTimeout(5 * time.Second))
//	login := account.NewRemoteAuthentication(apiURL+"/login", client)
//
//	acc, err := login.Auth(ctx, account.AuthenticationParams{
//		Email:    "user@example.com",
//		Password: "secret",
//	})
//	switch {
//	case errors.Is(err, account.ErrInvalidCredentials):
//		// wrong email or password
//	case err != nil:
//		// account.ErrUnexpected: network failure or unknown status
//	}
//
// RemoteAddAccount maps 403 to ErrEmailInUse. LocalSaveAccessToken writes the
// token returned by either flow to any SetStorage, such as the stores in
// pkg/cache.
//
// Message converts any returned error to text that is safe to show to users.
package account
