package log

import "context"

const sessionIDField = "session_id"

type sessionIDKey struct{}

// WithSessionID attaches a session id that every log line written with ctx carries.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// SessionIDFrom returns the session id set by WithSessionID, or "".
func SessionIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey{}).(string)
	return id
}
