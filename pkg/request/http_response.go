package request

import "net/http"

// HTTPResponse is the outcome of one HTTPRequest.Send call.
// It exposes the originating definition, so a listener can inspect
// both sides of the exchange through one value.
type HTTPResponse interface {
	httpRequestReadOnly
	// ResponseHeader returns the response headers.
	ResponseHeader() http.Header
	// StatusCode returns the HTTP status code.
	StatusCode() int
	// RawResponse returns the underlying standard HTTP response.
	RawResponse() *http.Response
	// IsSuccess reports whether `code >= 200 and <= 299`.
	IsSuccess() bool
	// IsError reports whether `code >= 400`.
	IsError() bool
	// Result returns the mapped result value, if a target was registered.
	Result() any
	// Error returns the mapped error response or a transport error, nil on success.
	Error() error
}

type httpResponse struct {
	httpRequest
	rawResponse *http.Response
	result      any
	err         error
}

func (r httpResponse) ResponseHeader() http.Header {
	return r.rawResponse.Header
}

func (r httpResponse) StatusCode() int {
	return r.rawResponse.StatusCode
}

func (r httpResponse) RawResponse() *http.Response {
	return r.rawResponse
}

func (r httpResponse) IsSuccess() bool {
	return r.StatusCode() > 199 && r.StatusCode() < 300
}

func (r httpResponse) IsError() bool {
	return r.StatusCode() > 399
}

func (r httpResponse) Result() any {
	return r.result
}

func (r httpResponse) Error() error {
	return r.err
}
