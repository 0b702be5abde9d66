package port

import "context"

// KeyValueStore persists opaque JSON blobs under string keys. Get returns
// domain.ErrNotFound for keys that were never written.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
}
