package client_test

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modio/go-modio/pkg/client"
	"github.com/modio/go-modio/pkg/request"
)

type testPayload struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type testError struct {
	ErrMessage string `json:"message"`
	request    *http.Request
	response   *http.Response
}

func (e *testError) Error() string {
	return e.ErrMessage
}

func (e *testError) SetRequest(request *http.Request) {
	e.request = request
}

func (e *testError) SetResponse(response *http.Response) {
	e.response = response
}

func TestClient_SendJSON(t *testing.T) {
	t.Parallel()
	c, transport := client.NewMockedClient()

	transport.RegisterResponder("GET", "https://api.example.com/v1/games/1", func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "go-modio", req.Header.Get("User-Agent"))
		return httpmock.NewJsonResponse(200, map[string]any{"id": 1, "name": "Example Game"})
	})

	result := &testPayload{}
	res, out, err := request.
		NewHTTPRequest(c).
		WithResult(result).
		WithGet("https://api.example.com/v1/games/1").
		Send(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode())
	assert.Equal(t, &testPayload{ID: 1, Name: "Example Game"}, out)
}

func TestClient_BaseURLAndPathParams(t *testing.T) {
	t.Parallel()
	c, transport := client.NewMockedClient()
	c = c.WithBaseURL("https://api.example.com/v1")

	transport.RegisterResponder("GET", "https://api.example.com/v1/games/1/mods/42",
		httpmock.NewStringResponder(200, `{}`),
	)

	err := request.
		NewHTTPRequest(c).
		WithGet("games/{gameId}/mods/{modId}").
		AndPathParam("gameId", "1").
		AndPathParam("modId", "42").
		SendOrErr(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, transport.GetTotalCallCount())
}

func TestClient_RetryOnRateLimit(t *testing.T) {
	t.Parallel()
	c, transport := client.NewMockedClient()

	attempt := 0
	transport.RegisterResponder("GET", "https://api.example.com/v1/games", func(*http.Request) (*http.Response, error) {
		attempt++
		if attempt < 3 {
			return httpmock.NewStringResponse(429, `{"error":{"code":429}}`), nil
		}
		return httpmock.NewJsonResponse(200, map[string]any{"id": 1})
	})

	err := request.
		NewHTTPRequest(c).
		WithGet("https://api.example.com/v1/games").
		SendOrErr(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, attempt)
}

func TestClient_RetriesExhausted(t *testing.T) {
	t.Parallel()
	c, transport := client.NewMockedClient()

	transport.RegisterResponder("GET", "https://api.example.com/v1/games",
		httpmock.NewStringResponder(504, "Gateway Timeout"),
	)

	err := request.
		NewHTTPRequest(c).
		WithGet("https://api.example.com/v1/games").
		SendOrErr(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "504")
	// Initial attempt + retries
	assert.Equal(t, 1+client.RetriesCount, transport.GetTotalCallCount())
}

func TestClient_RetryRewindsBody(t *testing.T) {
	t.Parallel()
	c, transport := client.NewMockedClient()

	var bodies []string
	attempt := 0
	transport.RegisterResponder("POST", "https://api.example.com/v1/games", func(req *http.Request) (*http.Response, error) {
		attempt++
		require.NoError(t, req.ParseForm())
		bodies = append(bodies, req.PostForm.Encode())
		if attempt == 1 {
			return httpmock.NewStringResponse(503, ""), nil
		}
		return httpmock.NewJsonResponse(200, map[string]any{"id": 1})
	})

	err := request.
		NewHTTPRequest(c).
		WithPost("https://api.example.com/v1/games").
		WithFormBody(map[string]string{"name": "Example Game"}).
		SendOrErr(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"name=Example+Game", "name=Example+Game"}, bodies)
}

func TestClient_ErrorEnvelope(t *testing.T) {
	t.Parallel()
	c, transport := client.NewMockedClient()

	transport.RegisterResponder("GET", "https://api.example.com/v1/games/1",
		httpmock.NewStringResponder(404, `{"message":"game not found"}`).HeaderSet(http.Header{"Content-Type": []string{"application/json"}}),
	)

	errDef := &testError{}
	_, _, err := request.
		NewHTTPRequest(c).
		WithError(errDef).
		WithGet("https://api.example.com/v1/games/1").
		Send(context.Background())

	require.Error(t, err)
	assert.Same(t, errDef, err)
	assert.Equal(t, "game not found", errDef.ErrMessage)
	require.NotNil(t, errDef.response)
	assert.Equal(t, 404, errDef.response.StatusCode)
	require.NotNil(t, errDef.request)
	assert.Equal(t, http.MethodGet, errDef.request.Method)
}

func TestClient_BytesAndStringResults(t *testing.T) {
	t.Parallel()
	c, transport := client.NewMockedClient()

	transport.RegisterResponder("GET", "https://cdn.example.com/mod.zip",
		httpmock.NewStringResponder(200, "binary-content"),
	)

	bytesTarget := &[]byte{}
	require.NoError(t, request.
		NewHTTPRequest(c).
		WithResult(bytesTarget).
		WithGet("https://cdn.example.com/mod.zip").
		SendOrErr(context.Background()))
	assert.Equal(t, []byte("binary-content"), *bytesTarget)

	stringTarget := new(string)
	require.NoError(t, request.
		NewHTTPRequest(c).
		WithResult(stringTarget).
		WithGet("https://cdn.example.com/mod.zip").
		SendOrErr(context.Background()))
	assert.Equal(t, "binary-content", *stringTarget)
}

func TestClient_WriterResult(t *testing.T) {
	t.Parallel()
	c, transport := client.NewMockedClient()

	transport.RegisterResponder("GET", "https://cdn.example.com/mod.zip",
		httpmock.NewStringResponder(200, "binary-content"),
	)

	var buf bytes.Buffer
	require.NoError(t, request.
		NewHTTPRequest(c).
		WithResult(&buf).
		WithGet("https://cdn.example.com/mod.zip").
		SendOrErr(context.Background()))
	assert.Equal(t, "binary-content", buf.String())
}

func TestClient_GzipResponse(t *testing.T) {
	t.Parallel()
	c, transport := client.NewMockedClient()

	var compressed bytes.Buffer
	gz := gzip.NewWriter(&compressed)
	_, err := gz.Write([]byte(`{"id":1,"name":"Example Game"}`))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	transport.RegisterResponder("GET", "https://api.example.com/v1/games/1", func(*http.Request) (*http.Response, error) {
		res := httpmock.NewBytesResponse(200, compressed.Bytes())
		res.Header.Set("Content-Type", "application/json")
		res.Header.Set("Content-Encoding", "gzip")
		return res, nil
	})

	result := &testPayload{}
	_, out, err := request.
		NewHTTPRequest(c).
		WithResult(result).
		WithGet("https://api.example.com/v1/games/1").
		Send(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &testPayload{ID: 1, Name: "Example Game"}, out)
}

func TestClient_NetworkError(t *testing.T) {
	t.Parallel()
	c, transport := client.NewMockedClient()
	c = c.WithRetry(client.RetryConfig{Count: 0, Condition: nil})

	transport.RegisterResponder("GET", "https://api.example.com/v1/games",
		httpmock.NewErrorResponder(fmt.Errorf("connection refused")),
	)

	err := request.
		NewHTTPRequest(c).
		WithGet("https://api.example.com/v1/games").
		SendOrErr(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}
