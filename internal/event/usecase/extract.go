package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/event/repository"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/llmprovider"
)

// Extract turns free-form text into events and appends them to the session's
// working set. The batch is all-or-nothing: on any error nothing is appended.
func (uc *implUseCase) Extract(ctx context.Context, sc model.Scope, input event.ExtractInput) (event.ExtractOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return event.ExtractOutput{}, event.ErrEmptyInput
	}
	mode, err := event.ParseMode(string(input.Mode))
	if err != nil {
		return event.ExtractOutput{}, err
	}

	today := uc.today()
	if input.Today != nil {
		today = *input.Today
	}

	uc.l.Infof(ctx, "uc.Extract: session=%s mode=%s today=%s input_length=%d", sc.SessionID, mode, today, len(input.Text))

	if err := uc.repo.BeginProcessing(ctx, sc.SessionID); err != nil {
		uc.l.Errorf(ctx, "uc.Extract BeginProcessing: %v", err)
		return event.ExtractOutput{}, err
	}

	events, err := uc.extract(ctx, sc, buildExtractPrompt(input.Text, mode, today))
	uc.finishProcessing(ctx, sc, err)
	if err != nil {
		return event.ExtractOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Extract: session=%s appended %d event(s)", sc.SessionID, len(events))
	return event.ExtractOutput{Events: events, Total: len(events)}, nil
}

func (uc *implUseCase) extract(ctx context.Context, sc model.Scope, prompt string) ([]model.CalendarEvent, error) {
	if uc.llm == nil {
		return nil, event.ErrNotConfigured
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:       []llmprovider.Message{llmprovider.TextMessage(llmprovider.RoleUser, prompt)},
		Temperature:    extractTemperature,
		MaxTokens:      extractMaxTokens,
		ResponseSchema: eventListSchema,
	})

	// The caller is gone; a late batch must not land in the working set.
	if ctxErr := ctx.Err(); ctxErr != nil {
		uc.l.Warnf(ctx, "uc.Extract: discarding result of cancelled request: %v", ctxErr)
		return nil, ctxErr
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.Extract GenerateContent: %v", err)
		return nil, mapLLMError(err)
	}

	responseText := resp.Text()
	uc.l.Debugf(ctx, "uc.Extract: provider=%s raw response: %s", resp.ProviderName, responseText)

	events, err := uc.parseEvents(ctx, sanitizeJSONResponse(responseText))
	if err != nil {
		uc.l.Errorf(ctx, "uc.Extract parseEvents: %v. Raw=%q", err, responseText)
		return nil, fmt.Errorf("%w: %w", event.ErrMalformedResponse, err)
	}
	if len(events) == 0 {
		return []model.CalendarEvent{}, nil
	}

	stored, err := uc.repo.AppendEvents(ctx, repository.AppendEventsOptions{
		SessionID: sc.SessionID,
		Events:    events,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Extract AppendEvents: %v", err)
		return nil, err
	}
	return stored, nil
}

// finishProcessing records the outcome even when ctx is already cancelled.
func (uc *implUseCase) finishProcessing(ctx context.Context, sc model.Scope, err error) {
	opt := repository.FinishProcessingOptions{SessionID: sc.SessionID, Status: model.StatusSuccess}
	if err != nil {
		opt.Status = model.StatusError
		opt.Message = event.MessageFor(err)
	}
	if ferr := uc.repo.FinishProcessing(context.WithoutCancel(ctx), opt); ferr != nil {
		uc.l.Errorf(ctx, "uc.Extract FinishProcessing: %v", ferr)
	}
}

// mapLLMError classifies provider failures. Missing or rejected credentials
// are a configuration problem, everything else an upstream failure.
func mapLLMError(err error) error {
	switch {
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured),
		errors.Is(err, llmprovider.ErrProviderUnauthorized):
		return fmt.Errorf("%w: %w", event.ErrNotConfigured, err)
	default:
		return fmt.Errorf("%w: %w", event.ErrUpstreamFailed, err)
	}
}
