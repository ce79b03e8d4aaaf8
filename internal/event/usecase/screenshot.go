package usecase

import (
	"context"
	"fmt"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/model"
)

// Screenshot captures the rendered month page of the session as a PNG.
func (uc *implUseCase) Screenshot(ctx context.Context, sc model.Scope, input event.MonthInput) (event.ScreenshotOutput, error) {
	if uc.capturer == nil {
		return event.ScreenshotOutput{}, event.ErrScreenshotDisabled
	}

	today := uc.today()
	year, month, err := resolveMonth(input, today.Year, today.Month)
	if err != nil {
		return event.ScreenshotOutput{}, err
	}

	png, err := uc.capturer.CaptureMonth(ctx, sc.SessionID, year, month)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Screenshot CaptureMonth: %v", err)
		return event.ScreenshotOutput{}, err
	}

	return event.ScreenshotOutput{
		Filename: fmt.Sprintf("calendar-%04d-%02d.png", year, int(month)),
		PNG:      png,
	}, nil
}
