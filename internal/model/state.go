package model

// ProcessingStatus is the lifecycle of extraction requests within a session.
type ProcessingStatus string

const (
	StatusIdle       ProcessingStatus = "IDLE"
	StatusProcessing ProcessingStatus = "PROCESSING"
	StatusSuccess    ProcessingStatus = "SUCCESS"
	StatusError      ProcessingStatus = "ERROR"
)

// ProcessingState is what the UI shows next to the input box.
type ProcessingState struct {
	Status  ProcessingStatus `json:"status"`
	Message string           `json:"message,omitempty"`
}
