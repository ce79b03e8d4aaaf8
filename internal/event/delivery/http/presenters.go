package http

import (
	"strings"
	"time"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/event"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/datemath"
	pkgErrors "calendar-assistant/pkg/errors"
	"calendar-assistant/pkg/response"
)

const (
	minYear = 1
	maxYear = 9999
)

// --- Request DTOs ---

type extractReq struct {
	Text  string `json:"text"`
	Mode  string `json:"mode" example:"TRANSCRIPT"`
	Today string `json:"today,omitempty" example:"2025-07-01"`
}

func (r extractReq) validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return event.ErrEmptyInput
	}
	if _, err := event.ParseMode(r.Mode); err != nil {
		return err
	}
	if r.Today != "" {
		if _, err := datemath.ParseDate(r.Today); err != nil {
			return pkgErrors.NewBadRequest("today must be YYYY-MM-DD")
		}
	}
	return nil
}

// toInput assumes validate passed.
func (r extractReq) toInput() event.ExtractInput {
	mode, _ := event.ParseMode(r.Mode)
	input := event.ExtractInput{Text: r.Text, Mode: mode}
	if r.Today != "" {
		today := datemath.MustParseDate(r.Today)
		input.Today = &today
	}
	return input
}

// ---

type monthReq struct {
	Year  int `form:"year"`
	Month int `form:"month"`
}

func (r monthReq) validate() error {
	if r.Year != 0 && (r.Year < minYear || r.Year > maxYear) {
		return pkgErrors.NewBadRequest("year must be between %d and %d", minYear, maxYear)
	}
	if r.Month != 0 {
		return event.ValidateMonth(r.Month)
	}
	return nil
}

func (r monthReq) toMonthInput() event.MonthInput {
	return event.MonthInput{Year: r.Year, Month: time.Month(r.Month)}
}

// toListInput filters only when a month is given. The use case fills in a
// missing year.
func (r monthReq) toListInput() event.ListInput {
	if r.Month == 0 {
		return event.ListInput{}
	}
	return event.ListInput{Year: r.Year, Month: time.Month(r.Month)}
}

// --- Response DTOs ---

type eventResp struct {
	model.CalendarEvent
	Style calendar.ChipStyle `json:"style"`
}

func newEventResp(e model.CalendarEvent) eventResp {
	return eventResp{CalendarEvent: e, Style: calendar.ChipStyleFor(e)}
}

func newEventResps(events []model.CalendarEvent) []eventResp {
	out := make([]eventResp, len(events))
	for i, e := range events {
		out[i] = newEventResp(e)
	}
	return out
}

type extractResp struct {
	Events []eventResp `json:"events"`
	Total  int         `json:"total"`
}

func (h *handler) newExtractResp(out event.ExtractOutput) extractResp {
	return extractResp{Events: newEventResps(out.Events), Total: out.Total}
}

type listResp struct {
	Events []eventResp `json:"events"`
	Total  int         `json:"total"`
}

func (h *handler) newListResp(out event.ListOutput) listResp {
	return listResp{Events: newEventResps(out.Events), Total: len(out.Events)}
}

type detailEventResp struct {
	eventResp
	LongDate     string   `json:"longDate"`
	TimeLabel    string   `json:"timeLabel"`
	DurationText string   `json:"durationText"`
	Reminders    []string `json:"reminders"`
	BannerColor  string   `json:"bannerColor"`
}

type detailResp struct {
	Event detailEventResp `json:"event"`
}

func (h *handler) newDetailResp(out event.DetailOutput) detailResp {
	e := out.Event
	reminders := make([]string, len(e.Notifications))
	for i, n := range e.Notifications {
		reminders[i] = calendar.FormatReminder(n)
	}
	return detailResp{Event: detailEventResp{
		eventResp:    newEventResp(e),
		LongDate:     calendar.FormatLongDate(e),
		TimeLabel:    calendar.FormatTime(e),
		DurationText: calendar.FormatDuration(e),
		Reminders:    reminders,
		BannerColor:  calendar.BannerColorFor(e),
	}}
}

type dayResp struct {
	Day    int         `json:"day"`
	Date   string      `json:"date,omitempty"`
	Events []eventResp `json:"events"`
}

type monthResp struct {
	Year          int            `json:"year"`
	Month         int            `json:"month"`
	MonthName     string         `json:"monthName"`
	LeadingBlanks int            `json:"leadingBlanks"`
	DaysInMonth   int            `json:"daysInMonth"`
	Weekdays      []string       `json:"weekdays"`
	Weeks         [][]dayResp    `json:"weeks"`
	Stats         calendar.Stats `json:"stats"`
	Today         string         `json:"today"`
}

func (h *handler) newMonthResp(out event.MonthOutput) monthResp {
	m := out.Month
	weeks := make([][]dayResp, 0, len(m.Cells)/calendar.DaysPerWeek+1)
	for _, week := range m.Weeks() {
		row := make([]dayResp, len(week))
		for i, cell := range week {
			row[i] = dayResp{Day: cell.Day, Events: newEventResps(cell.Events)}
			if cell.Date != nil {
				row[i].Date = cell.Date.String()
			}
		}
		weeks = append(weeks, row)
	}
	return monthResp{
		Year:          m.Year,
		Month:         int(m.Month),
		MonthName:     m.Month.String(),
		LeadingBlanks: m.LeadingBlanks,
		DaysInMonth:   m.DaysInMonth,
		Weekdays:      calendar.WeekdayLabels[:],
		Weeks:         weeks,
		Stats:         m.Stats,
		Today:         out.Today.String(),
	}
}

type statusResp struct {
	Status      model.ProcessingStatus `json:"status"`
	Message     string                 `json:"message,omitempty"`
	TotalEvents int                    `json:"totalEvents"`
	CheckedAt   response.DateTime      `json:"checkedAt" swaggertype:"string"`
}

func (h *handler) newStatusResp(out event.StatusOutput, now time.Time) statusResp {
	return statusResp{
		Status:      out.State.Status,
		Message:     out.State.Message,
		TotalEvents: out.TotalEvents,
		CheckedAt:   response.DateTime(now),
	}
}
