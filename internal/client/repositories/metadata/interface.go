package metadata

import (
	"context"
)

// Keys the session is stored under.
const (
	KeySessionEmail   = "session.email"
	KeySessionName    = "session.name"
	KeySessionPicture = "session.picture"
	KeySessionToken   = "session.token"
	KeySessionExpiry  = "session.expires_at"
)

// Repository is a small key/value store for client state that must survive
// restarts. Get returns common.ErrorNotFound for an absent key.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string]string, error)
}
