package request

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"

	"go.opentelemetry.io/otel/trace"
)

// Result - any value.
type Result = any

// NoResult type.
type NoResult struct{}

// HTTPRequest is an immutable request definition.
// Every With*/And* call returns a modified copy, the receiver is untouched,
// so a partially built definition can be shared and branched safely.
//
// The URL may be absolute or relative, a relative URL is resolved against
// the sender's base URL. Path placeholders in the form {name} are replaced
// by the values from AndPathParam at send time.
type HTTPRequest interface {
	httpRequestReadOnly
	// WithGet is a shortcut for WithMethod(http.MethodGet).WithURL(url)
	WithGet(url string) HTTPRequest
	// WithPost is a shortcut for WithMethod(http.MethodPost).WithURL(url)
	WithPost(url string) HTTPRequest
	// WithPut is a shortcut for WithMethod(http.MethodPut).WithURL(url)
	WithPut(url string) HTTPRequest
	// WithDelete is a shortcut for WithMethod(http.MethodDelete).WithURL(url)
	WithDelete(url string) HTTPRequest
	// WithMethod sets the HTTP method.
	WithMethod(method string) HTTPRequest
	// WithURL sets the target URL, absolute or relative. It panics on an unparsable URL.
	WithURL(url string) HTTPRequest
	// AndHeader sets one request header.
	AndHeader(header string, value string) HTTPRequest
	// AndQueryParam sets one query parameter.
	AndQueryParam(param, value string) HTTPRequest
	// AndPathParam sets the value of one {placeholder} in the URL path.
	AndPathParam(param, value string) HTTPRequest
	// WithFormBody sets the body to the URL-encoded form
	// and the Content-Type header to "application/x-www-form-urlencoded".
	WithFormBody(form map[string]string) HTTPRequest
	// WithBody sets the request body, see RequestBody for the supported types.
	WithBody(body any) HTTPRequest
	// WithContentType sets the Content-Type header, for example for a multipart body.
	WithContentType(contentType string) HTTPRequest
	// WithError registers a target value the error response body is mapped into.
	WithError(err error) HTTPRequest
	// WithResult registers a target value the success response body is mapped into.
	WithResult(result any) HTTPRequest
	// WithOnComplete registers a callback invoked after every send, regardless of outcome.
	WithOnComplete(func(ctx context.Context, response HTTPResponse, err error) error) HTTPRequest
	// WithOnSuccess registers a callback invoked after a send with `code >= 200 and <= 299`.
	WithOnSuccess(func(ctx context.Context, response HTTPResponse) error) HTTPRequest
	// WithOnError registers a callback invoked after a send with `code >= 400`.
	WithOnError(func(ctx context.Context, response HTTPResponse, err error) error) HTTPRequest
	// Send sends the request and returns the response, the mapped result and the error.
	Send(ctx context.Context) (response HTTPResponse, result any, err error)
	SendOrErr(ctx context.Context) error
}

// httpRequestReadOnly is the part of the definition the Sender reads.
type httpRequestReadOnly interface {
	// Method returns the HTTP method. It panics when no method was set.
	Method() string
	// URL returns a copy of the target URL. It panics when no URL was set.
	URL() *url.URL
	// RequestHeader returns the request headers.
	RequestHeader() http.Header
	// QueryParams returns the query parameters.
	QueryParams() url.Values
	// PathParams returns the values for the {placeholder} parts of the URL path.
	PathParams() map[string]string
	// RequestBody returns the body definition.
	// Supported types are `*string`, `*[]byte`, `*struct`, `*map`, `*slice`,
	// `io.ReadSeeker` and `io.ReadSeekCloser`.
	// A `*struct`, `*map` or `*slice` body is marshaled to JSON.
	RequestBody() any
	// ErrorDef returns the target value for error response mapping.
	ErrorDef() error
	// ResultDef returns the target value for success response mapping.
	ResultDef() any
}

// NewHTTPRequest creates an immutable request definition, it is sent by the given sender.
func NewHTTPRequest(sender Sender) HTTPRequest {
	return httpRequest{sender: sender, header: make(http.Header)}
}

// httpRequest implements HTTPRequest, it is copied by value on every modification.
type httpRequest struct {
	sender      Sender
	method      string
	url         *url.URL
	header      http.Header
	queryParams url.Values
	pathParams  map[string]string
	body        any
	resultDef   any
	errorDef    error
	listeners   []func(ctx context.Context, response HTTPResponse, err error) error
}

func (r httpRequest) Tracer() trace.Tracer {
	if tp, ok := r.sender.(withTracer); ok {
		return tp.Tracer()
	}
	return nil
}

func (r httpRequest) Method() string {
	if r.method == "" {
		panic(fmt.Errorf("request method is not set"))
	}
	return r.method
}

func (r httpRequest) URL() *url.URL {
	if r.url == nil {
		panic(fmt.Errorf("request url is not set"))
	}
	clone := *r.url
	return &clone
}

func (r httpRequest) RequestHeader() http.Header {
	return r.header
}

func (r httpRequest) QueryParams() url.Values {
	return r.queryParams
}

func (r httpRequest) PathParams() map[string]string {
	return r.pathParams
}

func (r httpRequest) RequestBody() any {
	return r.body
}

func (r httpRequest) ErrorDef() error {
	return r.errorDef
}

func (r httpRequest) ResultDef() any {
	return r.resultDef
}

func (r httpRequest) WithGet(url string) HTTPRequest {
	return r.WithMethod(http.MethodGet).WithURL(url)
}

func (r httpRequest) WithPost(url string) HTTPRequest {
	return r.WithMethod(http.MethodPost).WithURL(url)
}

func (r httpRequest) WithPut(url string) HTTPRequest {
	return r.WithMethod(http.MethodPut).WithURL(url)
}

func (r httpRequest) WithDelete(url string) HTTPRequest {
	return r.WithMethod(http.MethodDelete).WithURL(url)
}

func (r httpRequest) WithMethod(method string) HTTPRequest {
	r.method = method
	return r
}

func (r httpRequest) WithURL(urlStr string) HTTPRequest {
	v, err := url.Parse(urlStr)
	if err != nil {
		panic(fmt.Errorf(`url "%s" is not valid: %w`, urlStr, err))
	}
	r.url = v
	return r
}

func (r httpRequest) AndHeader(header string, value string) HTTPRequest {
	r.header = r.header.Clone()
	r.header.Set(header, value)
	return r
}

func (r httpRequest) AndQueryParam(key, value string) HTTPRequest {
	r.queryParams = cloneURLValues(r.queryParams)
	r.queryParams.Set(key, value)
	return r
}

func (r httpRequest) AndPathParam(key, value string) HTTPRequest {
	r.pathParams = cloneParams(r.pathParams)
	r.pathParams[key] = value
	return r
}

func (r httpRequest) WithFormBody(form map[string]string) HTTPRequest {
	formData := make(url.Values)
	for k, v := range form {
		formData.Set(k, v)
	}
	r.body = formData.Encode()
	return r.AndHeader("Content-Type", "application/x-www-form-urlencoded")
}

func (r httpRequest) WithBody(body any) HTTPRequest {
	r.body = body
	return r
}

func (r httpRequest) WithContentType(contentType string) HTTPRequest {
	return r.AndHeader("Content-Type", contentType)
}

func (r httpRequest) WithError(err error) HTTPRequest {
	if reflect.ValueOf(err).Kind() != reflect.Ptr {
		panic(fmt.Errorf(`error must be defined by a pointer`))
	}
	r.errorDef = err
	return r
}

func (r httpRequest) WithResult(result any) HTTPRequest {
	_, ok1 := result.(io.Writer)
	_, ok2 := result.(io.WriteCloser)
	if !ok1 && !ok2 && reflect.ValueOf(result).Kind() != reflect.Ptr {
		panic(fmt.Errorf(`result must be defined by a pointer`))
	}
	r.resultDef = result
	return r
}

func (r httpRequest) WithOnComplete(fn func(ctx context.Context, response HTTPResponse, err error) error) HTTPRequest {
	r.listeners = append(r.listeners, fn)
	return r
}

func (r httpRequest) WithOnSuccess(fn func(ctx context.Context, response HTTPResponse) error) HTTPRequest {
	r.listeners = append(r.listeners, func(ctx context.Context, response HTTPResponse, err error) error {
		if err == nil {
			return fn(ctx, response)
		}
		return err
	})
	return r
}

func (r httpRequest) WithOnError(fn func(ctx context.Context, response HTTPResponse, err error) error) HTTPRequest {
	r.listeners = append(r.listeners, func(ctx context.Context, response HTTPResponse, err error) error {
		if err != nil {
			return fn(ctx, response, err)
		}
		return err
	})
	return r
}

func (r httpRequest) Send(ctx context.Context) (HTTPResponse, any, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	rawResponse, result, err := r.sender.Send(ctx, r)
	out := &httpResponse{httpRequest: r, rawResponse: rawResponse, result: result, err: err}

	// The listeners run in registration order, each one sees the error
	// of the previous and may replace or clear it.
	for _, fn := range r.listeners {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		out.err = fn(ctx, out, out.err)
	}

	return out, out.result, out.err
}

func (r httpRequest) SendOrErr(ctx context.Context) error {
	_, _, err := r.Send(ctx)
	return err
}
