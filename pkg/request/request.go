// Package request provides immutable HTTP request definitions and a generic
// APIRequest[R] on top of them, see NewHTTPRequest and NewAPIRequest.
//
// A definition is sent through the Sender interface, the client.Client is
// the production implementation and the coalesce.Sender is a deduplicating
// middleware around any other Sender.
//
// RunGroup, WaitGroup and Parallel help with sending requests concurrently.
package request

import (
	"context"
	"net/http"
)

// Sender sends one request definition and returns the raw response together
// with the mapped result. The dynamic type of the result matches the request's
// ResultDef target, callers that registered a typed target may assert on it.
type Sender interface {
	Send(ctx context.Context, request HTTPRequest) (rawResponse *http.Response, result any, err error)
}

// Sendable is HTTPRequest or APIRequest.
type Sendable interface {
	SendOrErr(ctx context.Context) error
}

// ReqDefinitionError is a Sendable that fails with the wrapped error.
// A builder that detects an invalid definition returns it instead of the
// request, so the caller checks the error once, at send time.
type ReqDefinitionError struct {
	error
}

func NewReqDefinitionError(err error) Sendable {
	return ReqDefinitionError{error: err}
}

func (v ReqDefinitionError) SendOrErr(_ context.Context) error {
	return v
}

func (v ReqDefinitionError) Unwrap() error {
	return v.error
}
