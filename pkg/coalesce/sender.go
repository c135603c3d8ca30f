package coalesce

import (
	"context"
	"errors"
	"io"
	"net/http"

	otelTrace "go.opentelemetry.io/otel/trace"

	"github.com/modio/go-modio/pkg/request"
)

// Sender is a request.Sender middleware that routes idempotent requests
// through a Coordinator, so identical concurrent reads share one network
// exchange. Mutating requests and streamed results pass straight through
// to the inner sender.
type Sender struct {
	inner       request.Sender
	coordinator *Coordinator
}

// NewSender wraps the inner sender with a fresh Coordinator.
func NewSender(inner request.Sender, opts ...Option) *Sender {
	return &Sender{inner: inner, coordinator: NewCoordinator(NewSenderTransport(inner), opts...)}
}

// Coordinator returns the owned Coordinator, for direct Dispatch access.
func (s *Sender) Coordinator() *Coordinator {
	return s.coordinator
}

// Tracer forwards the inner sender's tracer, if any,
// for the request.APIRequest telemetry.
func (s *Sender) Tracer() otelTrace.Tracer {
	if tp, ok := s.inner.(interface{ Tracer() otelTrace.Tracer }); ok {
		return tp.Tracer()
	}
	return nil
}

// Send implements the request.Sender interface.
// Every request is validated first, including the ones that bypass the
// Coordinator, a rejected request never reaches the inner sender.
func (s *Sender) Send(ctx context.Context, def request.HTTPRequest) (*http.Response, any, error) {
	if !IsIdempotent(def.Method()) {
		if err := s.coordinator.validate(def); err != nil {
			return nil, nil, err
		}
		return s.inner.Send(ctx, def)
	}
	if _, ok := def.ResultDef().(io.Writer); ok {
		// Streamed results cannot be shared between subscribers.
		if err := s.coordinator.validate(def); err != nil {
			return nil, nil, err
		}
		return s.inner.Send(ctx, def)
	}

	type outcome struct {
		res Response
		err error
	}
	ch := make(chan outcome, 1)
	s.coordinator.Dispatch(ctx, def,
		func(res Response) { ch <- outcome{res: res} },
		func(err error) { ch <- outcome{err: err} },
	)

	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	case out := <-ch:
		header := out.res.Header
		if header == nil {
			header = make(http.Header)
		}
		raw := &http.Response{StatusCode: out.res.StatusCode, Header: header, Body: http.NoBody}
		if out.err != nil {
			var httpErr *HTTPError
			if errors.As(out.err, &httpErr) {
				raw.StatusCode = httpErr.StatusCode
				return raw, nil, out.err
			}
			return nil, nil, out.err
		}
		if out.res.DecodeErr != nil {
			return raw, nil, out.res.DecodeErr
		}
		return raw, out.res.Result, nil
	}
}
