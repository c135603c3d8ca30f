package modio

import (
	"fmt"
	"net/http"
)

// Error represents the structure of the mod.io API error envelope.
type Error struct {
	Detail   ErrorDetail `json:"error"`
	request  *http.Request
	response *http.Response
}

// ErrorDetail is the inner object of the error envelope.
type ErrorDetail struct {
	// Code is the HTTP status code repeated by the server.
	Code int `json:"code"`
	// ErrorRef is the mod.io specific error reference code.
	ErrorRef int `json:"error_ref"`
	// Message is a human-readable description of the error.
	Message string `json:"message"`
	// Errors optionally contains per input field validation messages.
	Errors map[string]string `json:"errors,omitempty"`
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("mod.io api error[%d]: %s", e.Detail.ErrorRef, e.Detail.Message)
	if e.request != nil {
		msg += fmt.Sprintf(`, method: "%s", url: "%s"`, e.request.Method, e.request.URL)
	}
	if code := e.StatusCode(); code != 0 {
		msg += fmt.Sprintf(`, httpCode: "%d"`, code)
	}
	return msg
}

// ErrorRef returns the mod.io specific error reference code.
func (e *Error) ErrorRef() int {
	return e.Detail.ErrorRef
}

// ErrorUserMessage returns error message for end user.
func (e *Error) ErrorUserMessage() string {
	return e.Detail.Message
}

// StatusCode returns HTTP status code.
func (e *Error) StatusCode() int {
	if e.response == nil {
		// The server repeats the status code inside the envelope,
		// it is the only source when the error was mapped without a response.
		return e.Detail.Code
	}
	return e.response.StatusCode
}

// SetRequest method allows injection of HTTP request to the error, it implements client.errorWithRequest.
func (e *Error) SetRequest(request *http.Request) {
	e.request = request
}

// SetResponse method allows injection of HTTP response to the error, it implements client.errorWithResponse.
func (e *Error) SetResponse(response *http.Response) {
	e.response = response
}
