// internal/domain/delivery/client.go
package delivery

import "context"

// Client is the outbound notification-delivery capability. It decouples
// the scheduling and dispatch logic from the concrete transport
// (Telegram in production, a fake in tests).
type Client interface {
	// RequestPermission reports whether the transport is able and allowed
	// to deliver to the user. A transport that is entirely unavailable
	// must report false, not an error.
	RequestPermission(ctx context.Context) (bool, error)

	// Deliver pushes a single notification to the user. Errors are
	// transient from the caller's point of view: a failed delivery is
	// retried on the next dispatch sweep.
	Deliver(ctx context.Context, title, body string) error
}
