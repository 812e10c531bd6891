package storage

import "context"

// Remover deletes a stored media object by key. Implementations must treat a
// missing object as success: cleanup on post deletion is best-effort and the
// caller never fails the request over it.
type Remover interface {
	Remove(ctx context.Context, key string) error
}
