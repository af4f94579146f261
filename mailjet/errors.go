package mailjet

import (
	"fmt"
	"net/http"
)

// ConfigError reports a missing or blank API credential. It is returned
// before any network I/O happens. The offending Config is carried on the
// error for debugging; credentials are not printed by Error.
type ConfigError struct {
	Err    error
	Config Config
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("mailjet: invalid config: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Response holds the provider's HTTP response verbatim. The body is not
// parsed by this package.
type Response struct {
	Headers    http.Header
	Body       []byte
	StatusCode int
}

// APIError reports a failed HTTP exchange with the Mailjet API.
// It comes in two forms: a transport failure (Err set, Response nil) and
// an HTTP failure (Response set, together with the request body that was
// sent, for post-mortem inspection).
type APIError struct {
	Err         error
	Response    *Response
	Reason      string
	RequestBody []byte
}

// newTransportError wraps a network-level failure (connection refused,
// timeout, DNS failure) that prevented a response from arriving.
func newTransportError(err error) *APIError {
	return &APIError{
		Reason: err.Error(),
		Err:    err,
	}
}

// newStatusError wraps a response with a status code above 299, keeping
// both sides of the exchange.
func newStatusError(requestBody []byte, resp *Response) *APIError {
	return &APIError{
		Reason:      fmt.Sprintf("unexpected status code %d", resp.StatusCode),
		RequestBody: requestBody,
		Response:    resp,
	}
}

func (e *APIError) Error() string {
	if e.Response != nil {
		return fmt.Sprintf("mailjet: api error: %s: %s", e.Reason, e.Response.Body)
	}
	return fmt.Sprintf("mailjet: api error: %s", e.Reason)
}

func (e *APIError) Unwrap() error {
	return e.Err
}
