package model

// Scope identifies the caller a request acts on behalf of.
type Scope struct {
	SessionID string
}
