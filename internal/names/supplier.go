// Package names supplies unique display names for rival horses. The
// engine treats the supplier as an opaque collaborator: a local
// word-list implementation is the default, with an HTTP client for an
// external name service.
package names

import "context"

// Supplier produces display names. Implementations must return a name
// not previously returned by the same instance.
type Supplier interface {
	Next(ctx context.Context) (string, error)
}
