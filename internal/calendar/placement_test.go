package calendar

import (
	"reflect"
	"testing"
	"time"

	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/datemath"
)

func strPtr(s string) *string { return &s }

func datePtr(s string) *datemath.Date {
	d := datemath.MustParseDate(s)
	return &d
}

func newEvent(id, start string) model.CalendarEvent {
	return model.CalendarEvent{
		ID:        id,
		Title:     id,
		StartDate: datemath.MustParseDate(start),
		Type:      model.EventTypeOther,
	}
}

func ids(events []model.CalendarEvent) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

func julyDay(d int) datemath.Date {
	return datemath.NewDate(2025, time.July, d)
}

func TestEventsForDay_Inclusion(t *testing.T) {
	single := newEvent("single", "2025-07-10")

	sameEnd := newEvent("same-end", "2025-07-10")
	sameEnd.EndDate = datePtr("2025-07-10")

	inverted := newEvent("inverted", "2025-07-10")
	inverted.EndDate = datePtr("2025-07-05")

	tests := []struct {
		name  string
		event model.CalendarEvent
		want  []int
	}{
		{name: "No end date places on start only", event: single, want: []int{10}},
		{name: "End equal to start places like no end", event: sameEnd, want: []int{10}},
		{name: "End before start places on start only", event: inverted, want: []int{10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []int
			for d := 1; d <= 31; d++ {
				if len(EventsForDay([]model.CalendarEvent{tt.event}, julyDay(d))) > 0 {
					got = append(got, d)
				}
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("placed on %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventsForDay_MultiDayRange(t *testing.T) {
	holiday := newEvent("holiday", "2025-07-20")
	holiday.EndDate = datePtr("2025-07-25")
	events := []model.CalendarEvent{holiday}

	for d := 1; d <= 31; d++ {
		got := EventsForDay(events, julyDay(d))
		inRange := d >= 20 && d <= 25
		if inRange && len(got) != 1 {
			t.Errorf("day %d: got %d events, want 1", d, len(got))
		}
		if !inRange && len(got) != 0 {
			t.Errorf("day %d: got %d events, want 0", d, len(got))
		}
	}

	// Neighbouring months stay empty.
	for _, d := range []datemath.Date{
		datemath.NewDate(2025, time.June, 20),
		datemath.NewDate(2025, time.August, 20),
		datemath.NewDate(2024, time.July, 20),
	} {
		if got := EventsForDay(events, d); len(got) != 0 {
			t.Errorf("%v: got %d events, want 0", d, len(got))
		}
	}
}

func TestEventsForDay_RangeAcrossMonths(t *testing.T) {
	trip := newEvent("trip", "2025-12-30")
	trip.EndDate = datePtr("2026-01-02")
	events := []model.CalendarEvent{trip}

	for _, d := range []string{"2025-12-30", "2025-12-31", "2026-01-01", "2026-01-02"} {
		if got := EventsForDay(events, datemath.MustParseDate(d)); len(got) != 1 {
			t.Errorf("%s: got %d events, want 1", d, len(got))
		}
	}
	if got := EventsForDay(events, datemath.MustParseDate("2026-01-03")); len(got) != 0 {
		t.Errorf("2026-01-03: got %d events, want 0", len(got))
	}
}

func TestEventsForDay_Ordering(t *testing.T) {
	timed := func(id, at string) model.CalendarEvent {
		e := newEvent(id, "2025-07-14")
		e.Time = strPtr(at)
		return e
	}
	untimed := func(id string) model.CalendarEvent {
		return newEvent(id, "2025-07-14")
	}

	tests := []struct {
		name   string
		events []model.CalendarEvent
		want   []string
	}{
		{
			name:   "Earlier time first",
			events: []model.CalendarEvent{timed("afternoon", "14:00"), timed("morning", "09:00")},
			want:   []string{"morning", "afternoon"},
		},
		{
			name:   "Untimed before timed when listed after",
			events: []model.CalendarEvent{timed("morning", "09:00"), untimed("all-day")},
			want:   []string{"all-day", "morning"},
		},
		{
			name:   "Untimed before timed when listed before",
			events: []model.CalendarEvent{untimed("all-day"), timed("morning", "09:00")},
			want:   []string{"all-day", "morning"},
		},
		{
			name:   "Untimed keep input order",
			events: []model.CalendarEvent{untimed("b"), timed("x", "08:00"), untimed("a"), untimed("c")},
			want:   []string{"b", "a", "c", "x"},
		},
		{
			name:   "Equal times keep input order",
			events: []model.CalendarEvent{timed("second", "10:00"), timed("first", "10:00"), timed("early", "07:30")},
			want:   []string{"early", "second", "first"},
		},
		{
			name:   "Empty time string counts as untimed",
			events: []model.CalendarEvent{timed("timed", "09:00"), timed("blank", "")},
			want:   []string{"blank", "timed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(EventsForDay(tt.events, julyDay(14)))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("order = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventsForDay_Idempotent(t *testing.T) {
	a := newEvent("a", "2025-07-14")
	a.Time = strPtr("11:00")
	b := newEvent("b", "2025-07-13")
	b.EndDate = datePtr("2025-07-15")
	c := newEvent("c", "2025-07-14")
	events := []model.CalendarEvent{a, b, c}
	snapshot := append([]model.CalendarEvent(nil), events...)

	first := EventsForDay(events, julyDay(14))
	second := EventsForDay(events, julyDay(14))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ: %v vs %v", ids(first), ids(second))
	}
	if !reflect.DeepEqual(events, snapshot) {
		t.Errorf("input slice was modified")
	}
}

func TestEventsInMonth(t *testing.T) {
	june := newEvent("june", "2025-06-10")
	spill := newEvent("spill", "2025-06-29")
	spill.EndDate = datePtr("2025-07-02")
	july := newEvent("july", "2025-07-28")
	august := newEvent("august", "2025-08-01")

	got := ids(EventsInMonth([]model.CalendarEvent{june, spill, july, august}, 2025, time.July))
	want := []string{"spill", "july"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EventsInMonth = %v, want %v", got, want)
	}
}
