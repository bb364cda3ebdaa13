package ports

import "context"

// MetadataStore is the general key/value store holding non-secret metadata.
// Get returns an error wrapping domain.ErrKeyNotFound for missing keys.
type MetadataStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
