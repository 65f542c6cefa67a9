package session

import (
	"context"
	"errors"
	"time"

	"github.com/gorilla/sessions"
)

const (
	// DefaultMaxAge is the session lifetime in seconds, counted from the last save.
	DefaultMaxAge = 60
	UsernameKey   = "username"
)

var ErrNotFound = errors.New("session not found")

// Record is the persisted form of a session. Data holds the encoded
// session values.
type Record struct {
	ID        string
	Data      string
	UpdatedAt time.Time
	ExpiresAt time.Time
}

func (r Record) Expired(now time.Time) bool {
	return !r.ExpiresAt.After(now)
}

type Repository interface {
	Save(ctx context.Context, rec Record) error
	Get(ctx context.Context, id string) (*Record, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// Username returns the claimed username, or "" when the session is not logged in.
func Username(s *sessions.Session) string {
	if s == nil {
		return ""
	}
	username, _ := s.Values[UsernameKey].(string)
	return username
}
