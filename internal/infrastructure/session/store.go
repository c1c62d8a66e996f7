package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Data is the state attached to a browser session. AccountID is zero
// for anonymous sessions; it is set at login and cleared at logout.
type Data struct {
	AccountID int64     `json:"account_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists session state keyed by an opaque session ID.
// Implementations must treat a missing session as (nil, nil), not as
// an error, so callers can lazily create sessions.
type Store interface {
	Get(ctx context.Context, sessionID string) (*Data, error)
	Set(ctx context.Context, sessionID string, data *Data, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
	Close() error
}

// NewSessionID generates a fresh opaque session identifier
func NewSessionID() string {
	return uuid.NewString()
}
