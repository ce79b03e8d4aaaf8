package response

import "time"

const (
	MessageSuccess          = "success"
	DefaultErrorMessage     = "something went wrong"
	InternalServerErrorCode = 500
	ValidationErrorCode     = 1

	DateTimeFormat = time.RFC3339
)
