package claims

import "context"

type contextKey string

const (
	SessionContextKey contextKey = "session"
)

// Claims is the identity a request was admitted with. The username is
// claimed at login and never verified.
type Claims struct {
	Username string
}

func NewContext(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, SessionContextKey, c)
}

func FromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(SessionContextKey).(*Claims)
	if !ok || c == nil || c.Username == "" {
		return nil, false
	}
	return c, true
}
