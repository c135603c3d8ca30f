package coalesce

import (
	"context"

	"github.com/modio/go-modio/pkg/request"
)

// senderTransport adapts a request.Sender, for example client.Client,
// to the Transport interface. Each exchange runs in its own goroutine,
// the response body is captured raw, result mapping is left to the
// Coordinator so every subscriber gets its own mapped value.
type senderTransport struct {
	sender request.Sender
}

// NewSenderTransport creates a Transport on top of a request.Sender.
func NewSenderTransport(sender request.Sender) Transport {
	return senderTransport{sender: sender}
}

func (t senderTransport) StartExchange(ctx context.Context, def request.HTTPRequest, done CompleteFunc) {
	go func() {
		var body []byte
		raw, _, err := t.sender.Send(ctx, def.WithResult(&body))
		ex := Exchange{Body: body, Err: err}
		if raw != nil {
			ex.StatusCode = raw.StatusCode
			ex.Header = raw.Header
		}
		done(ex)
	}()
}
