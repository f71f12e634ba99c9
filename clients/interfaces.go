package clients

import (
	"context"

	"github.com/samber/mo"

	"wskproxy/models"
)

// ActionInvoker runs a named remote action in blocking mode. Transport failures are
// folded into the returned result rather than surfaced as errors.
type ActionInvoker interface {
	Invoke(ctx context.Context, action string, parameters map[string]string, auth mo.Option[string]) models.RemoteResult
}

// ResponseURLClient delivers a chat message to a caller-supplied callback url
type ResponseURLClient interface {
	Post(ctx context.Context, responseURL string, message models.RelayMessage) error
}
