// Package delivery defines the boundary every transport implementation
// (HTTP, worker, ...) satisfies so main can serve them uniformly.
package delivery

import "context"

// Delivery is a long-running transport serving the application.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
