// Package coalesce implements in-flight deduplication of idempotent API requests
// with multi-subscriber callback delivery.
//
// The Coordinator sits between request definitions and a Transport.
// Identical concurrent reads share one network exchange, every subscriber
// receives the single outcome exactly once, in registration order.
// Mutating requests are never deduplicated.
//
// The Sender type wraps any request.Sender with a Coordinator, so the
// coalescing is transparent for code built on the request package.
package coalesce

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/modio/go-modio/pkg/request"
)

// Handle identifies one transport exchange owned by a Coordinator.
// The zero Handle is never assigned to an exchange.
type Handle uint64

// Exchange is the terminal outcome of one transport exchange.
type Exchange struct {
	// StatusCode is zero when the exchange failed before an HTTP response was received.
	StatusCode int
	Header     http.Header
	// Body is the raw response body, it may be empty.
	Body []byte
	// Err is the transport level or server reported error, if any.
	Err error
}

// CompleteFunc must be invoked by a Transport exactly once per exchange,
// from any goroutine, regardless of outcome.
type CompleteFunc func(Exchange)

// Transport starts asynchronous network exchanges on behalf of the Coordinator.
type Transport interface {
	// StartExchange begins the exchange and returns without blocking.
	StartExchange(ctx context.Context, def request.HTTPRequest, done CompleteFunc)
}

// Response is delivered to success callbacks.
type Response struct {
	StatusCode int
	Header     http.Header
	// Body is the raw response body shared by all subscribers, treat it as read-only.
	Body []byte
	// Result is the subscriber's mapped result target, nil if none was registered
	// or the body could not be mapped.
	Result any
	// DecodeErr is set when the body could not be mapped into the result target.
	// The exchange itself succeeded, so the outcome is still delivered here
	// and not to the error callback.
	DecodeErr error
}

// SuccessFunc receives the outcome of a successful exchange.
type SuccessFunc func(res Response)

// ErrorFunc receives the classified error of a failed exchange.
type ErrorFunc func(err error)

// subscriber is one Dispatch call waiting for an exchange outcome.
type subscriber struct {
	resultDef any
	errorDef  error
	onSuccess SuccessFunc
	onError   ErrorFunc
}

// pendingRequest tracks one in-flight exchange and its subscribers.
// It is owned by the Coordinator and never leaves the locked sections,
// except as an immutable snapshot taken at resolution.
type pendingRequest struct {
	key         string // empty for non-deduplicated requests
	handle      Handle
	subscribers []subscriber
}

// Coordinator deduplicates idempotent requests and fans the single outcome
// out to all subscribers. All registry state is instance-owned, a fresh
// Coordinator per test gives full isolation.
type Coordinator struct {
	transport    Transport
	logger       *zap.Logger
	validator    func(def request.HTTPRequest) error
	errorFactory func() error

	lock     sync.Mutex
	nextID   Handle
	byKey    map[string]*pendingRequest
	byHandle map[Handle]*pendingRequest
}

// Option configures a Coordinator.
type Option func(c *Coordinator)

// WithLogger sets the logger for diagnostics (orphan completions, decode
// failures, callback panics). Default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Coordinator) {
		c.logger = logger
	}
}

// WithValidator sets a precondition check executed before any transport
// contact. A returned error is delivered through the error callback path
// as a ValidationError and no exchange is started.
func WithValidator(fn func(def request.HTTPRequest) error) Option {
	return func(c *Coordinator) {
		c.validator = fn
	}
}

// WithErrorFactory sets a factory of error envelope targets.
// It is used to map error response bodies of subscribers
// that did not register their own target by HTTPRequest.WithError.
func WithErrorFactory(fn func() error) Option {
	return func(c *Coordinator) {
		c.errorFactory = fn
	}
}

// NewCoordinator creates a Coordinator on top of the given transport.
func NewCoordinator(transport Transport, opts ...Option) *Coordinator {
	c := &Coordinator{
		transport: transport,
		logger:    zap.NewNop(),
		byKey:     make(map[string]*pendingRequest),
		byHandle:  make(map[Handle]*pendingRequest),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dispatch registers the callbacks for the outcome of the request and
// starts a transport exchange, unless an identical read is already in flight,
// then the callbacks join the pending exchange and no new one is started.
//
// Both callbacks are optional. They are never invoked inline from Dispatch,
// always later, from the transport completion (or a scheduled validation
// failure). The returned Handle identifies the underlying exchange, for a
// coalesced dispatch it is the handle of the already running one.
func (c *Coordinator) Dispatch(ctx context.Context, def request.HTTPRequest, onSuccess SuccessFunc, onError ErrorFunc) Handle {
	if err := c.validate(def); err != nil {
		if onError != nil {
			go onError(err)
		} else {
			c.logger.Warn("request rejected before dispatch", zap.Error(err))
		}
		return 0
	}

	sub := subscriber{resultDef: def.ResultDef(), errorDef: def.ErrorDef(), onSuccess: onSuccess, onError: onError}
	dedup := IsIdempotent(def.Method())
	var key string
	if dedup {
		key = DedupKey(def)
	}

	c.lock.Lock()
	if dedup {
		if p, found := c.byKey[key]; found {
			// Join the in-flight exchange, no new one is started.
			p.subscribers = append(p.subscribers, sub)
			h := p.handle
			c.lock.Unlock()
			return h
		}
	}
	c.nextID++
	h := c.nextID
	p := &pendingRequest{key: key, handle: h, subscribers: []subscriber{sub}}
	c.byHandle[h] = p
	if dedup {
		c.byKey[key] = p
	}
	c.lock.Unlock()

	c.transport.StartExchange(ctx, def, func(ex Exchange) {
		c.complete(h, ex)
	})
	return h
}

// validate runs the configured validator against the request definition.
// A rejection is returned wrapped as a ValidationError.
func (c *Coordinator) validate(def request.HTTPRequest) error {
	if c.validator == nil {
		return nil
	}
	if err := c.validator(def); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

// PendingCount returns the number of unresolved exchanges.
func (c *Coordinator) PendingCount() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return len(c.byHandle)
}

// complete resolves the pending request owning the handle.
// The registry entries are removed atomically with the resolution, before the
// fan-out: a Dispatch racing with the completion either joins the pending
// entry and is delivered below, or finds no entry and starts a fresh exchange.
func (c *Coordinator) complete(h Handle, ex Exchange) {
	c.lock.Lock()
	p, found := c.byHandle[h]
	if !found {
		c.lock.Unlock()
		// Completion of an unknown exchange, there is no caller to notify.
		c.logger.Warn("completion for unknown exchange", zap.Uint64("handle", uint64(h)))
		return
	}
	delete(c.byHandle, h)
	if p.key != "" {
		delete(c.byKey, p.key)
	}
	subs := p.subscribers
	c.lock.Unlock()

	if ex.Err != nil || ex.StatusCode > 399 {
		for _, s := range subs {
			c.deliverError(s, ex)
		}
		return
	}
	for _, s := range subs {
		c.deliverSuccess(s, ex)
	}
}

func (c *Coordinator) deliverSuccess(s subscriber, ex Exchange) {
	res := Response{StatusCode: ex.StatusCode, Header: ex.Header, Body: ex.Body}
	if s.resultDef != nil && len(ex.Body) > 0 {
		// Each subscriber owns its result target, the shared body is mapped per subscriber.
		switch v := s.resultDef.(type) {
		case *[]byte:
			*v = ex.Body
			res.Result = v
		case *string:
			*v = string(ex.Body)
			res.Result = v
		default:
			if err := json.Unmarshal(ex.Body, s.resultDef); err == nil {
				res.Result = s.resultDef
			} else {
				res.DecodeErr = &DecodeError{Err: err}
				c.logger.Warn("cannot map response body to result", zap.Error(err))
			}
		}
	}
	if s.onSuccess == nil {
		return
	}
	defer c.recoverCallbackPanic("success")
	s.onSuccess(res)
}

func (c *Coordinator) deliverError(s subscriber, ex Exchange) {
	if s.onError == nil {
		return
	}
	defer c.recoverCallbackPanic("error")
	s.onError(c.classifyError(s, ex))
}

// recoverCallbackPanic isolates a panicking caller callback, so the remaining
// subscribers of the same pending request are still delivered.
func (c *Coordinator) recoverCallbackPanic(kind string) {
	if r := recover(); r != nil {
		c.logger.Error("request callback panicked", zap.String("callback", kind), zap.Any("panic", r))
	}
}

// classifyError converts the exchange outcome to the error delivered to one subscriber.
func (c *Coordinator) classifyError(s subscriber, ex Exchange) error {
	// No HTTP response at all
	if ex.StatusCode == 0 {
		return &TransportError{Err: ex.Err}
	}

	// Try to map the body to the subscriber's error envelope target
	target := s.errorDef
	if target == nil && c.errorFactory != nil {
		target = c.errorFactory()
	}
	if target != nil && len(ex.Body) > 0 {
		if err := json.Unmarshal(ex.Body, target); err == nil {
			return &HTTPError{StatusCode: ex.StatusCode, Err: target}
		}
	}

	return &HTTPError{StatusCode: ex.StatusCode, Err: ex.Err}
}

// IsIdempotent reports whether requests with the method are safe to coalesce.
func IsIdempotent(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}

// DedupKey computes the deduplication key of the request: the method and the
// fully resolved target URL, including path parameters and the normalized
// (sorted) query string.
func DedupKey(def request.HTTPRequest) string {
	u := *def.URL()
	// A query embedded in the URL string and parameters added by AndQueryParam
	// must end up in one normalized query, not two.
	query := u.Query()
	for k, values := range def.QueryParams() {
		query[k] = values
	}
	u.RawQuery = query.Encode()
	urlStr := u.String()
	for k, v := range def.PathParams() {
		urlStr = strings.ReplaceAll(urlStr, "%7B"+k+"%7D", v)
		urlStr = strings.ReplaceAll(urlStr, "{"+k+"}", v)
	}
	return def.Method() + " " + urlStr
}
