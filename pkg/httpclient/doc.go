// Package httpclient is the HTTP adapter behind the remote account use cases.
//
// It posts JSON bodies and hands back the raw status code and body for every
// response, leaving the mapping of statuses to domain errors to the caller.
// An error is returned only when no response was obtained: an invalid URL, an
// unencodable body, a transport failure or a timeout.
//
// # Usage
//
//	client := httpclient.New(
//	    httpclient.WithTimeout(5*time.Second),
//	    httpclient.WithLogger(log),
//	)
//
//	resp, err := client.Post(ctx, httpclient.Request{
//	    URL:  "https://api.example.com/login",
//	    Body: map[string]string{"email": email, "password": password},
//	})
//	if err != nil {
//	    // network failure
//	}
//	switch resp.StatusCode {
//	case http.StatusOK:
//	    var account Account
//	    err = resp.Decode(&account)
//	}
//
// # Retries
//
// Retries are off by default. WithRetries enables them for transport errors and
// 5xx, 408 and 429 responses, waiting between attempts according to a
// BackoffStrategy and honouring context cancellation.
package httpclient
