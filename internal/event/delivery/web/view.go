package web

import (
	"fmt"
	"net/url"
	"time"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/event"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/datemath"
)

const (
	labelGenerate          = "Generate Schedule"
	labelGenerateRecurring = "Generate Recurring Series"
	labelAnalyzing         = "Analyzing..."
)

type pageData struct {
	Year      int
	Month     int
	MonthName string
	PrevURL   string
	NextURL   string
	Weekdays  []string
	Weeks     [][]cellView
	Stats     calendar.Stats

	Mode             string
	Text             string
	TranscriptSample string
	TaskSample       string
	ButtonLabel      string
	Processing       bool
	State            model.ProcessingState
	Error            string
	EventCount       int

	Selected *detailView
}

type cellView struct {
	Day       int
	Blank     bool
	IsToday   bool
	HasEvents bool
	Events    []chipView
}

type chipView struct {
	Title string
	Time  string
	URL   string
	Style calendar.ChipStyle
}

type detailView struct {
	Title       string
	Type        string
	LongDate    string
	Time        string
	Duration    string
	Location    string
	Description string
	Guests      []string
	GuestCount  string
	Reminders   []string
	Recurring   bool
	Banner      string
	CloseURL    string
}

// form is the state of the input panel.
type form struct {
	Mode event.Mode
	Text string
}

func monthURL(year int, month time.Month, mode event.Mode, eventID string) string {
	q := url.Values{}
	q.Set("year", fmt.Sprint(year))
	q.Set("month", fmt.Sprint(int(month)))
	if mode == event.ModeTask {
		q.Set("mode", string(mode))
	}
	if eventID != "" {
		q.Set("event", eventID)
	}
	return "/?" + q.Encode()
}

func homeURL(mode event.Mode) string {
	if mode == event.ModeTask {
		return "/?mode=" + string(mode)
	}
	return "/"
}

func newPageData(m calendar.Month, today datemath.Date, status event.StatusOutput, f form) pageData {
	py, pm := datemath.PrevMonth(m.Year, m.Month)
	ny, nm := datemath.NextMonth(m.Year, m.Month)

	weeks := make([][]cellView, 0, len(m.Cells)/calendar.DaysPerWeek+1)
	for _, week := range m.Weeks() {
		row := make([]cellView, len(week))
		for i, cell := range week {
			if cell.Date == nil {
				row[i] = cellView{Blank: true}
				continue
			}
			chips := make([]chipView, len(cell.Events))
			for j, e := range cell.Events {
				chips[j] = chipView{
					Title: e.Title,
					URL:   monthURL(m.Year, m.Month, f.Mode, e.ID),
					Style: calendar.ChipStyleFor(e),
				}
				if e.HasTime() {
					chips[j].Time = *e.Time
				}
			}
			row[i] = cellView{
				Day:       cell.Day,
				IsToday:   cell.Date.Equal(today),
				HasEvents: len(chips) > 0,
				Events:    chips,
			}
		}
		weeks = append(weeks, row)
	}

	text := f.Text
	if text == "" {
		text = SampleTranscript
		if f.Mode == event.ModeTask {
			text = SampleTaskInstructions
		}
	}

	processing := status.State.Status == model.StatusProcessing
	label := labelGenerate
	if f.Mode == event.ModeTask {
		label = labelGenerateRecurring
	}
	if processing {
		label = labelAnalyzing
	}

	return pageData{
		Year:             m.Year,
		Month:            int(m.Month),
		MonthName:        m.Month.String(),
		PrevURL:          monthURL(py, pm, f.Mode, ""),
		NextURL:          monthURL(ny, nm, f.Mode, ""),
		Weekdays:         calendar.WeekdayLabels[:],
		Weeks:            weeks,
		Stats:            m.Stats,
		Mode:             string(f.Mode),
		Text:             text,
		TranscriptSample: SampleTranscript,
		TaskSample:       SampleTaskInstructions,
		ButtonLabel:      label,
		Processing:       processing,
		State:            status.State,
		EventCount:       status.TotalEvents,
	}
}

func newDetailView(e model.CalendarEvent, closeURL string) *detailView {
	d := &detailView{
		Title:      e.Title,
		Type:       string(e.Type),
		LongDate:   calendar.FormatLongDate(e),
		Time:       calendar.FormatTime(e),
		Duration:   calendar.FormatDuration(e),
		Guests:     e.Guests,
		GuestCount: calendar.FormatGuestCount(e),
		Recurring:  e.IsRecurring,
		Banner:     calendar.BannerColorFor(e),
		CloseURL:   closeURL,
	}
	if e.Location != nil {
		d.Location = *e.Location
	}
	if e.Description != nil {
		d.Description = *e.Description
	}
	for _, n := range e.Notifications {
		d.Reminders = append(d.Reminders, calendar.FormatReminder(n))
	}
	return d
}
