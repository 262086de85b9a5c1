// Package authform is the backend-for-frontend of the login and signup
// forms. It validates single fields as the user types, runs the remote
// authentication and signup use cases on submit and keeps the returned
// access token in the configured storage. Messages follow the request
// language negotiated from Accept-Language or the lang query parameter.
package authform
