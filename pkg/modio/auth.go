package modio

import (
	"fmt"
	"strconv"
	"time"

	"github.com/modio/go-modio/pkg/request"
)

// AccessToken is the OAuth token returned by the authentication endpoints.
// Pass it to the API via WithToken or WithTokenProvider.
type AccessToken struct {
	AccessToken string   `json:"access_token"`
	DateExpires UnixTime `json:"date_expires"`
}

// Terms is the agreement text that must be shown to the user before
// an external authentication flow.
type Terms struct {
	Plaintext string               `json:"plaintext"`
	HTML      string               `json:"html"`
	Links     map[string]TermsLink `json:"links"`
}

// TermsLink is one agreement document.
type TermsLink struct {
	Text     string `json:"text"`
	URL      string `json:"url"`
	Required bool   `json:"required"`
}

// GetTermsRequest https://docs.mod.io/#terms
func (a *API) GetTermsRequest() request.APIRequest[*Terms] {
	result := &Terms{}
	req := a.
		newRequest().
		WithResult(result).
		WithGet("authenticate/terms")
	return request.NewAPIRequest(result, req)
}

// RequestEmailCodeRequest asks the server to mail a one-time security code
// to the address. https://docs.mod.io/#email-request
func (a *API) RequestEmailCodeRequest(email string) request.APIRequest[*Message] {
	result := &Message{}
	if email == "" {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(fmt.Errorf("email cannot be empty")))
	}
	req := a.
		newRequest().
		WithResult(result).
		WithPost("oauth/emailrequest").
		WithFormBody(map[string]string{"email": email})
	return request.NewAPIRequest(result, req)
}

// ExchangeEmailCodeRequest trades the mailed security code for an access token.
// https://docs.mod.io/#email-exchange
func (a *API) ExchangeEmailCodeRequest(securityCode string) request.APIRequest[*AccessToken] {
	result := &AccessToken{}
	if securityCode == "" {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(fmt.Errorf("security code cannot be empty")))
	}
	req := a.
		newRequest().
		WithResult(result).
		WithPost("oauth/emailexchange").
		WithFormBody(map[string]string{"security_code": securityCode})
	return request.NewAPIRequest(result, req)
}

// AuthOption configures an external authentication exchange.
type AuthOption func(fields map[string]string)

// WithAuthEmail links the external account to the given email on first login.
func WithAuthEmail(email string) AuthOption {
	return func(fields map[string]string) {
		fields["email"] = email
	}
}

// WithAuthExpiration requests a token lifetime ending at the given time.
func WithAuthExpiration(t time.Time) AuthOption {
	return func(fields map[string]string) {
		fields["date_expires"] = strconv.FormatInt(t.Unix(), 10)
	}
}

// WithTermsAgreed marks the mod.io terms as accepted by the user.
// Required on the first login of an external account.
func WithTermsAgreed() AuthOption {
	return func(fields map[string]string) {
		fields["terms_agreed"] = "true"
	}
}

// SteamAuthRequest trades a base64 encoded Steam Encrypted App Ticket for an
// access token. https://docs.mod.io/#steam
func (a *API) SteamAuthRequest(appdata string, opts ...AuthOption) request.APIRequest[*AccessToken] {
	return a.externalAuthRequest("external/steamauth", appdata, opts)
}

// GalaxyAuthRequest trades a base64 encoded GOG Galaxy Encrypted App Ticket
// for an access token. https://docs.mod.io/#gog-galaxy
func (a *API) GalaxyAuthRequest(appdata string, opts ...AuthOption) request.APIRequest[*AccessToken] {
	return a.externalAuthRequest("external/galaxyauth", appdata, opts)
}

func (a *API) externalAuthRequest(path string, appdata string, opts []AuthOption) request.APIRequest[*AccessToken] {
	result := &AccessToken{}
	if appdata == "" {
		return request.NewAPIRequest(result, request.NewReqDefinitionError(fmt.Errorf("encrypted app ticket cannot be empty")))
	}

	fields := map[string]string{"appdata": appdata}
	for _, opt := range opts {
		opt(fields)
	}

	req := a.
		newRequest().
		WithResult(result).
		WithPost(path).
		WithFormBody(fields)
	return request.NewAPIRequest(result, req)
}
