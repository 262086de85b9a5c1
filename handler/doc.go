// Package handler turns typed request handlers into http.HandlerFunc values.
//
// A HandlerFunc receives a Context and a request value decoded by its
// binders and returns a Response. Failures go to an ErrorHandler, which by
// default renders a JSON error envelope:
//
//	{"error": {"code": "validation_error", "message": "...", "details": {"email": ["..."]}}}
//
// ValidationError and HTTPError select the status code; error messages are
// looked up through a Translate function so they follow the request
// language.
package handler
