package calendar

import (
	"time"

	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/datemath"
)

// DayCell is a grid cell with the events placed on it. Blank cells have Day 0
// and no events.
type DayCell struct {
	Day    int                   `json:"day"`
	Date   *datemath.Date        `json:"date,omitempty"`
	Events []model.CalendarEvent `json:"events"`
}

// Stats are the sidebar counters of the month view.
type Stats struct {
	TotalEvents     int `json:"totalEvents"`
	NextMonthEvents int `json:"nextMonthEvents"`
}

// Month is a rendered month: the grid with events resolved per cell.
type Month struct {
	Year          int        `json:"year"`
	Month         time.Month `json:"month"`
	LeadingBlanks int        `json:"leadingBlanks"`
	DaysInMonth   int        `json:"daysInMonth"`
	Cells         []DayCell  `json:"cells"`
	Stats         Stats      `json:"stats"`
}

// BuildMonth resolves events onto the grid of month (1-12) of year.
func BuildMonth(events []model.CalendarEvent, year int, month time.Month) Month {
	g := BuildGrid(year, month)

	cells := make([]DayCell, len(g.Cells))
	for i, c := range g.Cells {
		if c.IsBlank() {
			cells[i] = DayCell{Events: []model.CalendarEvent{}}
			continue
		}
		d := g.Date(c)
		placed := EventsForDay(events, d)
		if placed == nil {
			placed = []model.CalendarEvent{}
		}
		cells[i] = DayCell{Day: c.Day, Date: &d, Events: placed}
	}

	return Month{
		Year:          year,
		Month:         month,
		LeadingBlanks: g.LeadingBlanks,
		DaysInMonth:   g.DaysInMonth,
		Cells:         cells,
		Stats:         StatsFor(events, year, month),
	}
}

// Weeks splits the cells into rows of seven.
func (m Month) Weeks() [][]DayCell {
	weeks := make([][]DayCell, 0, (len(m.Cells)+DaysPerWeek-1)/DaysPerWeek)
	for i := 0; i < len(m.Cells); i += DaysPerWeek {
		end := min(i+DaysPerWeek, len(m.Cells))
		weeks = append(weeks, m.Cells[i:end])
	}
	return weeks
}

// StatsFor counts all events and those starting in the month after (year, month).
func StatsFor(events []model.CalendarEvent, year int, month time.Month) Stats {
	ny, nm := datemath.NextMonth(year, month)
	next := 0
	for _, e := range events {
		if e.StartDate.Year == ny && e.StartDate.Month == nm {
			next++
		}
	}
	return Stats{TotalEvents: len(events), NextMonthEvents: next}
}
