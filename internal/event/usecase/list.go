package usecase

import (
	"context"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/event"
	"calendar-assistant/internal/event/repository"
	"calendar-assistant/internal/model"
)

// List returns the session's events in insertion order, optionally limited
// to those placed on some day of one month.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input event.ListInput) (event.ListOutput, error) {
	if input.Month != 0 {
		today := uc.today()
		year, month, err := resolveMonth(event.MonthInput{Year: input.Year, Month: input.Month}, today.Year, today.Month)
		if err != nil {
			return event.ListOutput{}, err
		}
		input.Year, input.Month = year, month
	}

	events, err := uc.repo.ListEvents(ctx, repository.ListEventsOptions{
		SessionID: sc.SessionID,
		Year:      input.Year,
		Month:     input.Month,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListEvents: %v", err)
		return event.ListOutput{}, err
	}
	return event.ListOutput{Events: events}, nil
}

// Detail returns one event of the session. Returns ErrEventNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (event.DetailOutput, error) {
	e, err := uc.repo.GetEvent(ctx, repository.GetEventOptions{SessionID: sc.SessionID, ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetEvent: %v", err)
		return event.DetailOutput{}, err
	}
	if e.ID == "" {
		return event.DetailOutput{}, event.ErrEventNotFound
	}
	return event.DetailOutput{Event: e}, nil
}

// Month resolves the working set onto the grid of one month.
func (uc *implUseCase) Month(ctx context.Context, sc model.Scope, input event.MonthInput) (event.MonthOutput, error) {
	today := uc.today()
	year, month, err := resolveMonth(input, today.Year, today.Month)
	if err != nil {
		return event.MonthOutput{}, err
	}

	events, err := uc.repo.ListEvents(ctx, repository.ListEventsOptions{SessionID: sc.SessionID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Month ListEvents: %v", err)
		return event.MonthOutput{}, err
	}

	return event.MonthOutput{
		Month: calendar.BuildMonth(events, year, month),
		Today: today,
	}, nil
}

// Status reports the processing state and size of the working set.
func (uc *implUseCase) Status(ctx context.Context, sc model.Scope) (event.StatusOutput, error) {
	state, err := uc.repo.GetState(ctx, sc.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Status GetState: %v", err)
		return event.StatusOutput{}, err
	}
	events, err := uc.repo.ListEvents(ctx, repository.ListEventsOptions{SessionID: sc.SessionID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Status ListEvents: %v", err)
		return event.StatusOutput{}, err
	}
	return event.StatusOutput{State: state, TotalEvents: len(events)}, nil
}
