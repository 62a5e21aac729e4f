// Package delivery defines the contract every transport front-end satisfies.
package delivery

import "context"

// Delivery is one serving surface of the application (e.g. the HTTP server).
type Delivery interface {
	Serve(ctx context.Context) error
}
