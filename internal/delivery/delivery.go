// Package delivery defines the entry points through which the outside
// world reaches the application, independent of transport.
package delivery

import "context"

// Delivery is a serving surface started by the application runtime.
// Implementations block inside Serve until the context is done or the
// underlying listener fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
