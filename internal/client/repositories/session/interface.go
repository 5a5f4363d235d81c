package session

import "context"

// Repository is a durable string key/value table. Every call is a single
// statement, so each write is atomic on its own.
type Repository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
