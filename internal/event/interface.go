package event

import (
	"context"
	"time"

	"calendar-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Extraction
	Extract(ctx context.Context, sc model.Scope, input ExtractInput) (ExtractOutput, error)

	// Working set
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Month(ctx context.Context, sc model.Scope, input MonthInput) (MonthOutput, error)
	Status(ctx context.Context, sc model.Scope) (StatusOutput, error)

	// Downloads
	ExportICS(ctx context.Context, sc model.Scope) (ExportOutput, error)
	Screenshot(ctx context.Context, sc model.Scope, input MonthInput) (ScreenshotOutput, error)
}

// Capturer renders the month page of a session as a PNG.
type Capturer interface {
	CaptureMonth(ctx context.Context, sessionID string, year int, month time.Month) ([]byte, error)
}
