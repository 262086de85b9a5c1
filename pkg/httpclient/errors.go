package httpclient

import "errors"

// Errors are returned only for failures to produce an HTTP response. Any
// response that reaches the client, whatever its status, is returned as a value.
var (
	ErrInvalidURL     = errors.New("invalid request URL")
	ErrEncodeBody     = errors.New("failed to encode request body")
	ErrRequestFailed  = errors.New("http request failed")
	ErrTimeout        = errors.New("http request timeout")
	ErrDecodeResponse = errors.New("failed to decode response body")
	ErrEmptyResponse  = errors.New("response body is empty")
)
