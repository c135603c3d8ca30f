// Package modio contains request definitions for the mod.io REST API v1.
// The definitions are not complete and can be extended as needed.
// Requests can be sent by any HTTP client that implements the request.Sender interface,
// see the NewAPI function.
//
// Read requests are deduplicated by default: identical concurrent GETs share
// one network exchange, see the coalesce package and WithoutRequestCoalescing.
package modio

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	otelTrace "go.opentelemetry.io/otel/trace"

	"github.com/modio/go-modio/pkg/client"
	"github.com/modio/go-modio/pkg/coalesce"
	"github.com/modio/go-modio/pkg/request"
)

// APIURL is the production mod.io API host.
const APIURL = "https://api.mod.io/v1"

// API provides the mod.io API request definitions.
type API struct {
	sender request.Sender
	config apiConfig
}

// NewAPI creates a new API instance for the given host, usually the APIURL.
func NewAPI(host string, opts ...APIOption) *API {
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "https://" + host
	}
	cfg := newAPIConfig(opts)

	var c client.Client
	if cfg.client != nil {
		c = *cfg.client
	} else {
		c = client.New()
	}
	if cfg.tracerProvider != nil {
		c = c.WithTracerProvider(cfg.tracerProvider)
	}
	c = c.WithBaseURL(host)

	var sender request.Sender = c
	if cfg.coalescing {
		sender = coalesce.NewSender(
			c,
			coalesce.WithLogger(cfg.logger),
			coalesce.WithErrorFactory(func() error { return &Error{} }),
			coalesce.WithValidator(credentialsValidator),
		)
	} else {
		sender = validatingSender{inner: c}
	}

	return &API{sender: sender, config: cfg}
}

// Client returns the used sender, it can differ from the configured client,
// for example when request coalescing is enabled.
func (a *API) Client() request.Sender {
	return a.sender
}

// Coordinator returns the request coordinator, or nil when coalescing is disabled.
func (a *API) Coordinator() *coalesce.Coordinator {
	if s, ok := a.sender.(*coalesce.Sender); ok {
		return s.Coordinator()
	}
	return nil
}

// newRequest creates a request with the api key, language and platform
// headers attached, and the mod.io error envelope registered.
// The configuration is read on every call, not cached.
func (a *API) newRequest() request.HTTPRequest {
	req := request.NewHTTPRequest(a.sender).WithError(&Error{})
	if key := a.config.apiKey; key != "" {
		req = req.AndQueryParam("api_key", key)
	}
	if lang := a.config.language; lang != "" {
		req = req.AndHeader("Accept-Language", lang)
	}
	if platform := a.config.platform; platform != "" {
		req = req.AndHeader("X-Modio-Platform", platform)
	}
	if portal := a.config.portal; portal != "" {
		req = req.AndHeader("X-Modio-Portal", portal)
	}
	return req
}

// newAuthRequest creates a request with the bearer token attached.
// The token is read from the provider on every call.
func (a *API) newAuthRequest() request.HTTPRequest {
	req := a.newRequest()
	if token := a.config.token(); token != "" {
		req = req.AndHeader("Authorization", "Bearer "+token)
	}
	return req
}

// Message is the generic confirmation body returned by write endpoints.
type Message struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// credentialsValidator rejects a request without any credentials before it
// reaches the network, the server would reject it anyway.
func credentialsValidator(def request.HTTPRequest) error {
	if def.URL().IsAbs() {
		// Requests outside the API host, for example signed CDN downloads,
		// carry their authorization in the URL.
		return nil
	}
	if def.QueryParams().Get("api_key") == "" && def.RequestHeader().Get("Authorization") == "" {
		return fmt.Errorf("api key or access token must be set")
	}
	return nil
}

// validatingSender enforces the credentials check when request coalescing is
// disabled, so a request without credentials never reaches the network either way.
type validatingSender struct {
	inner request.Sender
}

func (s validatingSender) Send(ctx context.Context, def request.HTTPRequest) (*http.Response, any, error) {
	if err := credentialsValidator(def); err != nil {
		return nil, nil, &coalesce.ValidationError{Err: err}
	}
	return s.inner.Send(ctx, def)
}

// Tracer forwards the inner sender's tracer, if any.
func (s validatingSender) Tracer() otelTrace.Tracer {
	if tp, ok := s.inner.(interface{ Tracer() otelTrace.Tracer }); ok {
		return tp.Tracer()
	}
	return nil
}
