package request

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoSender struct {
	lock sync.Mutex
	defs []HTTPRequest
}

func (s *echoSender) Send(_ context.Context, def HTTPRequest) (*http.Response, any, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.defs = append(s.defs, def)
	return &http.Response{StatusCode: 200}, def.ResultDef(), nil
}

func TestHTTPRequest_Immutability(t *testing.T) {
	t.Parallel()
	base := NewHTTPRequest(nil).
		WithGet("foo/{key}").
		AndHeader("X-Custom", "base").
		AndQueryParam("a", "1").
		AndPathParam("key", "base")

	modified := base.
		AndHeader("X-Custom", "modified").
		AndQueryParam("a", "2").
		AndPathParam("key", "modified")

	// The original definition is not affected
	assert.Equal(t, "base", base.RequestHeader().Get("X-Custom"))
	assert.Equal(t, "1", base.QueryParams().Get("a"))
	assert.Equal(t, "base", base.PathParams()["key"])
	assert.Equal(t, "modified", modified.RequestHeader().Get("X-Custom"))
	assert.Equal(t, "2", modified.QueryParams().Get("a"))
	assert.Equal(t, "modified", modified.PathParams()["key"])
}

func TestHTTPRequest_URLIsCopied(t *testing.T) {
	t.Parallel()
	req := NewHTTPRequest(nil).WithGet("https://api.example.com/v1/games/1")

	// Mutating the returned URL does not affect the definition
	u := req.URL()
	u.Path = "/changed"
	assert.Equal(t, "https://api.example.com/v1/games/1", req.URL().String())
}

func TestHTTPRequest_Methods(t *testing.T) {
	t.Parallel()
	assert.Equal(t, http.MethodGet, NewHTTPRequest(nil).WithGet("x").Method())
	assert.Equal(t, http.MethodPost, NewHTTPRequest(nil).WithPost("x").Method())
	assert.Equal(t, http.MethodPut, NewHTTPRequest(nil).WithPut("x").Method())
	assert.Equal(t, http.MethodDelete, NewHTTPRequest(nil).WithDelete("x").Method())
}

func TestHTTPRequest_FormBody(t *testing.T) {
	t.Parallel()
	req := NewHTTPRequest(nil).
		WithPost("x").
		WithFormBody(map[string]string{"name": "Example Mod", "visible": "1"})

	assert.Equal(t, "application/x-www-form-urlencoded", req.RequestHeader().Get("Content-Type"))
	assert.Equal(t, "name=Example+Mod&visible=1", req.RequestBody())
}

func TestHTTPRequest_PanicsOnMissingDefinition(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		NewHTTPRequest(nil).Method()
	})
	assert.Panics(t, func() {
		NewHTTPRequest(nil).URL()
	})
	assert.Panics(t, func() {
		NewHTTPRequest(nil).WithResult("not a pointer")
	})
	assert.Panics(t, func() {
		NewHTTPRequest(nil).WithError(nil)
	})
}

func TestHTTPRequest_Listeners(t *testing.T) {
	t.Parallel()
	sender := &echoSender{}
	var events []string

	err := NewHTTPRequest(sender).
		WithGet("https://api.example.com/v1/games").
		WithOnComplete(func(ctx context.Context, response HTTPResponse, err error) error {
			events = append(events, "complete")
			return err
		}).
		WithOnSuccess(func(ctx context.Context, response HTTPResponse) error {
			events = append(events, "success")
			assert.True(t, response.IsSuccess())
			assert.False(t, response.IsError())
			assert.Equal(t, 200, response.StatusCode())
			assert.NoError(t, response.Error())
			return nil
		}).
		WithOnError(func(ctx context.Context, response HTTPResponse, err error) error {
			events = append(events, "error")
			return err
		}).
		SendOrErr(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"complete", "success"}, events)
}

func TestHTTPRequest_CancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sender := &echoSender{}
	err := NewHTTPRequest(sender).
		WithGet("https://api.example.com/v1/games").
		SendOrErr(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, sender.defs)
}
