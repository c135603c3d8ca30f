package modio

import (
	otelTrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/modio/go-modio/pkg/client"
)

type apiConfig struct {
	client         *client.Client
	apiKey         string
	token          func() string
	language       string
	platform       string
	portal         string
	coalescing     bool
	logger         *zap.Logger
	tracerProvider otelTrace.TracerProvider
}

// APIOption configures the API.
type APIOption func(c *apiConfig)

func newAPIConfig(opts []APIOption) apiConfig {
	cfg := apiConfig{
		token:      func() string { return "" },
		coalescing: true,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithClient sets a custom HTTP client, for example a mocked one in tests.
func WithClient(cl *client.Client) APIOption {
	return func(c *apiConfig) {
		c.client = cl
	}
}

// WithAPIKey sets the api key attached as the "api_key" query parameter to every request.
func WithAPIKey(apiKey string) APIOption {
	return func(c *apiConfig) {
		c.apiKey = apiKey
	}
}

// WithToken sets a static OAuth access token for authenticated requests.
func WithToken(token string) APIOption {
	return func(c *apiConfig) {
		c.token = func() string { return token }
	}
}

// WithTokenProvider sets a token source read on every request,
// so the token can be rotated without recreating the API.
func WithTokenProvider(fn func() string) APIOption {
	return func(c *apiConfig) {
		c.token = fn
	}
}

// WithLanguage sets the "Accept-Language" header attached to every request.
func WithLanguage(lang string) APIOption {
	return func(c *apiConfig) {
		c.language = lang
	}
}

// WithPlatform sets the "X-Modio-Platform" header attached to every request.
func WithPlatform(platform string) APIOption {
	return func(c *apiConfig) {
		c.platform = platform
	}
}

// WithPortal sets the "X-Modio-Portal" header attached to every request.
func WithPortal(portal string) APIOption {
	return func(c *apiConfig) {
		c.portal = portal
	}
}

// WithoutRequestCoalescing disables deduplication of identical concurrent reads.
func WithoutRequestCoalescing() APIOption {
	return func(c *apiConfig) {
		c.coalescing = false
	}
}

// WithLogger sets the logger for the request coordinator diagnostics.
func WithLogger(logger *zap.Logger) APIOption {
	return func(c *apiConfig) {
		c.logger = logger
	}
}

// WithTracerProvider enables OpenTelemetry tracing of API requests.
func WithTracerProvider(tp otelTrace.TracerProvider) APIOption {
	return func(c *apiConfig) {
		c.tracerProvider = tp
	}
}
