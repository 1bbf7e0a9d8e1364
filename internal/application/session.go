package application

import (
	"context"
	"time"
)

// Session is the server-side state behind an auth cookie. Cross-request
// storage lives in Redis; nothing here survives the TTL.
type Session struct {
	SessionID string    `json:"sid"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Remember  bool      `json:"remember"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionStore persists sessions across requests.
type SessionStore interface {
	Create(ctx context.Context, s *Session, ttl time.Duration) error
	// Get returns nil when the session does not exist or has expired.
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}
