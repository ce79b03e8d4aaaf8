package repository

import "errors"

var (
	ErrMissingSession = errors.New("session id is required")
	ErrNotProcessing  = errors.New("no extraction in flight")
	ErrInvalidOutcome = errors.New("outcome must be SUCCESS or ERROR")
)
