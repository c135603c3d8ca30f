package coalesce

import (
	"fmt"
	"net/http"
)

// TransportError - the exchange could not complete at the network level,
// there is no HTTP status code.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPError - the server returned a non-success HTTP status.
// Err is the decoded error envelope when the response body parsed as one,
// otherwise a generic error.
type HTTPError struct {
	StatusCode int
	Err        error
}

func (e *HTTPError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("http error: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("http error %d: %s", e.StatusCode, e.Err)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

// ValidationError - a precondition was violated before any network call was attempted.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("request validation failed: %s", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// DecodeError - the response was received successfully but the body could not
// be mapped to the caller's result target. It is reported through
// Response.DecodeErr, the exchange itself is a success.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode response body: %s", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
