package session

import "context"

// Storage is the durable key-value backing of the session store. Two entries
// are kept: the opaque bearer token and the serialized user, with no TTL.
type Storage interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, keys ...string) error
}
