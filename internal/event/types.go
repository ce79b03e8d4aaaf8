package event

import (
	"strings"
	"time"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/datemath"
)

// Mode selects the wording of the extraction prompt.
type Mode string

const (
	ModeTranscript Mode = "TRANSCRIPT"
	ModeTask       Mode = "TASK"
)

// ParseMode accepts TRANSCRIPT or TASK in any case. Empty means TRANSCRIPT.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToUpper(strings.TrimSpace(s))) {
	case "", ModeTranscript:
		return ModeTranscript, nil
	case ModeTask:
		return ModeTask, nil
	default:
		return "", ErrInvalidMode
	}
}

// ValidateMonth checks a 1-12 month number.
func ValidateMonth(month int) error {
	if month < 1 || month > 12 {
		return ErrInvalidMonth
	}
	return nil
}

// --- UseCase Inputs ---

type ExtractInput struct {
	Text string
	Mode Mode
	// Today anchors relative dates. Nil means the current date in the
	// configured timezone.
	Today *datemath.Date
}

// ListInput filters the working set to a month when Month is non-zero.
// A zero Year then means the current year.
type ListInput struct {
	Year  int
	Month time.Month
}

// MonthInput selects a month. Zero values mean the current month.
type MonthInput struct {
	Year  int
	Month time.Month
}

// --- UseCase Outputs ---

type ExtractOutput struct {
	Events []model.CalendarEvent
	Total  int
}

type ListOutput struct {
	Events []model.CalendarEvent
}

type DetailOutput struct {
	Event model.CalendarEvent
}

type MonthOutput struct {
	Month calendar.Month
	Today datemath.Date
}

type StatusOutput struct {
	State       model.ProcessingState
	TotalEvents int
}

type ExportOutput struct {
	Filename string
	Content  []byte
}

type ScreenshotOutput struct {
	Filename string
	PNG      []byte
}
