// Package delivery defines the contract every transport entry point fulfils.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by main and stopped
// through its lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
