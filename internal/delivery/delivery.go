// Package delivery defines the contract every transport entry point satisfies.
package delivery

import "context"

// Delivery is a serving surface of the application. Each implementation is
// collected into the fx "deliveries" group and started from main.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
