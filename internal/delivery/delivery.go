// Package delivery defines the contract every transport surface fulfils.
package delivery

import "context"

// Delivery is a servable transport (HTTP API, push worker).
type Delivery interface {
	Serve(ctx context.Context) error
}
