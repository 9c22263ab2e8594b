// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a long-running transport server (HTTP, worker, ...).
type Delivery interface {
	// Serve blocks serving requests until the server is stopped.
	Serve(ctx context.Context) error
}
