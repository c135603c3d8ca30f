// Package otel provides an OpenTelemetry instrumented trace for the client.Client.
package otel

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/modio/go-modio/pkg/client"
	"github.com/modio/go-modio/pkg/request"
)

const (
	instrumentationName = "github.com/modio/go-modio/pkg/client"
	// HTTPRequestSpanName is the name of the span covering one Client.Send call, including retries.
	HTTPRequestSpanName = "modio.go.http.client.request"
)

// NewTraceFactory returns a client.TraceFactory instrumented by OpenTelemetry.
// One span is created per Client.Send call.
// HTTP level metrics are recorded for every attempt, including retries.
func NewTraceFactory(tp trace.TracerProvider, mp metric.MeterProvider) (client.TraceFactory, error) {
	tracer := tp.Tracer(instrumentationName)
	meter := mp.Meter(instrumentationName)

	requestsCount, err := meter.Int64Counter(
		"modio.go.http.client.requests",
		metric.WithDescription("Count of started HTTP requests, including retries."),
	)
	if err != nil {
		return nil, err
	}

	requestDuration, err := meter.Float64Histogram(
		"modio.go.http.client.request.duration",
		metric.WithDescription("Duration of one HTTP request attempt."),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	retriesCount, err := meter.Int64Counter(
		"modio.go.http.client.retries",
		metric.WithDescription("Count of HTTP request retries."),
	)
	if err != nil {
		return nil, err
	}

	return func() *client.Trace {
		var span trace.Span
		var method, host string
		var attemptStart time.Time

		t := &client.Trace{}
		t.GotRequest = func(ctx context.Context, req request.HTTPRequest) context.Context {
			method = req.Method()
			reqURL := req.URL()
			host = reqURL.Host
			ctx, span = tracer.Start(
				ctx,
				HTTPRequestSpanName,
				trace.WithSpanKind(trace.SpanKindClient),
				trace.WithAttributes(
					attribute.String("http.method", method),
					attribute.String("http.url", reqURL.String()),
					attribute.String("net.peer.name", host),
				),
			)
			return ctx
		}
		t.HTTPRequestStart = func(r *http.Request) {
			attemptStart = time.Now()
			requestsCount.Add(r.Context(), 1, metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("net.peer.name", r.URL.Host),
			))
		}
		t.HTTPRequestDone = func(res *http.Response, err error) {
			attrs := []attribute.KeyValue{
				attribute.String("http.method", method),
				attribute.String("net.peer.name", host),
			}
			if res != nil {
				attrs = append(attrs, attribute.Int("http.status_code", res.StatusCode))
			}
			requestDuration.Record(context.Background(), float64(time.Since(attemptStart).Milliseconds()), metric.WithAttributes(attrs...))
		}
		t.HTTPRequestRetry = func(attempt int, delay time.Duration) {
			retriesCount.Add(context.Background(), 1, metric.WithAttributes(
				attribute.String("http.method", method),
				attribute.String("net.peer.name", host),
			))
		}
		t.RequestProcessed = func(result any, err error) {
			if span != nil {
				if err != nil {
					span.RecordError(err)
					span.SetStatus(codes.Error, err.Error())
				}
				span.End()
			}
		}
		return t
	}, nil
}
