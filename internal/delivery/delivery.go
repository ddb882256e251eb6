// Package delivery defines the contract every transport server fulfils.
package delivery

import "context"

// Delivery is a long-running transport server (HTTP API, worker endpoint).
// Serve blocks until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
