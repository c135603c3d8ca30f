package modio_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modio/go-modio/pkg/modio"
	"github.com/modio/go-modio/pkg/request"
)

func TestRequestEmailCodeRequest(t *testing.T) {
	t.Parallel()
	api, transport := mockedAPI(t)

	transport.RegisterResponder("POST", "https://api.mod.io/v1/oauth/emailrequest", func(req *http.Request) (*http.Response, error) {
		require.NoError(t, req.ParseForm())
		assert.Equal(t, "player@example.com", req.PostForm.Get("email"))
		return httpmock.NewJsonResponse(200, map[string]any{"code": 200, "message": "Enter the 5-digit code"})
	})

	msg, err := api.RequestEmailCodeRequest("player@example.com").Send(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 200, msg.Code)
}

func TestRequestEmailCodeRequest_EmptyEmail(t *testing.T) {
	t.Parallel()
	api, _ := mockedAPI(t)

	_, err := api.RequestEmailCodeRequest("").Send(context.Background())
	require.Error(t, err)
	var defErr request.ReqDefinitionError
	assert.ErrorAs(t, err, &defErr)
}

func TestExchangeEmailCodeRequest(t *testing.T) {
	t.Parallel()
	api, transport := mockedAPI(t)

	transport.RegisterResponder("POST", "https://api.mod.io/v1/oauth/emailexchange", func(req *http.Request) (*http.Response, error) {
		require.NoError(t, req.ParseForm())
		assert.Equal(t, "A1B2C", req.PostForm.Get("security_code"))
		return httpmock.NewJsonResponse(200, map[string]any{
			"access_token": "opaque-token",
			"date_expires": 1893456000,
		})
	})

	token, err := api.ExchangeEmailCodeRequest("A1B2C").Send(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", token.AccessToken)
	assert.Equal(t, int64(1893456000), token.DateExpires.Time().Unix())
}

func TestSteamAuthRequest(t *testing.T) {
	t.Parallel()
	api, transport := mockedAPI(t)

	transport.RegisterResponder("POST", "https://api.mod.io/v1/external/steamauth", func(req *http.Request) (*http.Response, error) {
		require.NoError(t, req.ParseForm())
		assert.Equal(t, "dGlja2V0", req.PostForm.Get("appdata"))
		assert.Equal(t, "true", req.PostForm.Get("terms_agreed"))
		return httpmock.NewJsonResponse(200, map[string]any{"access_token": "steam-token"})
	})

	token, err := api.SteamAuthRequest("dGlja2V0", modio.WithTermsAgreed()).Send(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "steam-token", token.AccessToken)
}

func TestSteamAuthRequest_EmptyTicket(t *testing.T) {
	t.Parallel()
	api, _ := mockedAPI(t)

	_, err := api.SteamAuthRequest("").Send(context.Background())
	require.Error(t, err)
	var defErr request.ReqDefinitionError
	assert.ErrorAs(t, err, &defErr)
}

func TestGetTermsRequest(t *testing.T) {
	t.Parallel()
	api, transport := mockedAPI(t)

	transport.RegisterResponder("GET", "https://api.mod.io/v1/authenticate/terms",
		httpmock.NewStringResponder(200, `{
			"plaintext": "We use mod.io to support mods.",
			"html": "<p>We use mod.io to support mods.</p>",
			"links": {"terms": {"text": "Terms of Use", "url": "https://mod.io/terms", "required": true}}
		}`),
	)

	terms, err := api.GetTermsRequest().Send(context.Background())
	require.NoError(t, err)
	assert.Contains(t, terms.Plaintext, "mod.io")
	require.Contains(t, terms.Links, "terms")
	assert.True(t, terms.Links["terms"].Required)
}

// Tokens are read from the provider on every request, a rotated token is
// picked up without rebuilding the API instance.
func TestTokenProvider(t *testing.T) {
	t.Parallel()
	tokens := []string{"first-token", "second-token"}
	api, transport := mockedAPI(t, modio.WithTokenProvider(func() string {
		token := tokens[0]
		tokens = tokens[1:]
		return token
	}))

	var seen []string
	transport.RegisterResponder("GET", "https://api.mod.io/v1/me", func(req *http.Request) (*http.Response, error) {
		seen = append(seen, req.Header.Get("Authorization"))
		return httpmock.NewJsonResponse(200, map[string]any{"id": 1})
	})

	_, err := api.GetAuthenticatedUserRequest().Send(context.Background())
	require.NoError(t, err)
	_, err = api.GetAuthenticatedUserRequest().Send(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Bearer first-token", "Bearer second-token"}, seen)
}

func TestAuthOptions(t *testing.T) {
	t.Parallel()
	fields := make(map[string]string)
	modio.WithAuthEmail("player@example.com")(fields)
	modio.WithAuthExpiration(time.Unix(1893456000, 0))(fields)
	modio.WithTermsAgreed()(fields)

	assert.Equal(t, map[string]string{
		"email":        "player@example.com",
		"date_expires": "1893456000",
		"terms_agreed": "true",
	}, fields)
}
