package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"calendar-assistant/internal/event"
	"calendar-assistant/internal/event/repository"
	"calendar-assistant/internal/model"
)

const (
	icsProductID       = "-//calendar-assistant//EN"
	icsFilename        = "calendar.ics"
	icsDefaultDuration = 60 // minutes
	icsLocalLayout     = "20060102T150405"
)

// ExportICS serialises the session's working set as an iCalendar document.
func (uc *implUseCase) ExportICS(ctx context.Context, sc model.Scope) (event.ExportOutput, error) {
	events, err := uc.repo.ListEvents(ctx, repository.ListEventsOptions{SessionID: sc.SessionID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ExportICS ListEvents: %v", err)
		return event.ExportOutput{}, err
	}

	doc := buildCalendar(events, uc.now().UTC())
	uc.l.Infof(ctx, "uc.ExportICS: session=%s events=%d", sc.SessionID, len(events))

	return event.ExportOutput{Filename: icsFilename, Content: []byte(doc)}, nil
}

// buildCalendar renders events as VEVENTs. Untimed events are all-day with
// an exclusive DTEND; timed ones are floating local times.
func buildCalendar(events []model.CalendarEvent, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(icsProductID)

	for _, e := range events {
		ve := cal.AddEvent(e.ID)
		ve.SetDtStampTime(stamp)
		ve.SetSummary(e.Title)

		if e.HasTime() {
			start, err := time.Parse("2006-01-02 15:04", e.StartDate.String()+" "+*e.Time)
			if err != nil {
				start = e.StartDate.Time(time.UTC)
			}
			minutes := icsDefaultDuration
			if e.Duration != nil && *e.Duration > 0 {
				minutes = *e.Duration
			}
			end := start.Add(time.Duration(minutes) * time.Minute)
			ve.SetProperty(ical.ComponentPropertyDtStart, start.Format(icsLocalLayout))
			ve.SetProperty(ical.ComponentPropertyDtEnd, end.Format(icsLocalLayout))
		} else {
			ve.SetAllDayStartAt(e.StartDate.Time(time.UTC))
			ve.SetAllDayEndAt(e.LastDate().AddDays(1).Time(time.UTC))
		}

		if e.Location != nil {
			ve.SetLocation(*e.Location)
		}
		if e.Description != nil {
			ve.SetDescription(*e.Description)
		}
		if e.Color != nil {
			ve.SetColor(*e.Color)
		}
		ve.SetProperty(ical.ComponentPropertyCategories, string(e.Type))
		for _, g := range e.Guests {
			ve.AddAttendee(attendeeEmail(g), ical.WithCN(g))
		}
		for _, n := range e.Notifications {
			alarm := ve.AddAlarm()
			if n.Kind == model.NotificationEmail {
				alarm.SetAction(ical.ActionEmail)
				alarm.SetSummary(e.Title)
			} else {
				alarm.SetAction(ical.ActionDisplay)
			}
			alarm.SetDescription(e.Title)
			alarm.SetTrigger(fmt.Sprintf("-PT%dM", n.MinutesBefore))
		}
	}

	return cal.Serialize()
}

// attendeeEmail returns guest when it is an address, otherwise a placeholder
// under the reserved .invalid domain.
func attendeeEmail(guest string) string {
	if strings.Contains(guest, "@") {
		return guest
	}
	return strings.ReplaceAll(strings.ToLower(guest), " ", ".") + "@example.invalid"
}
