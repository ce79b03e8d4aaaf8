package model

import (
	"testing"
	"time"

	"calendar-assistant/pkg/datemath"
)

func TestParseEventType(t *testing.T) {
	tests := []struct {
		in   string
		want EventType
	}{
		{in: "MEETING", want: EventTypeMeeting},
		{in: " holiday ", want: EventTypeHoliday},
		{in: "Party", want: EventTypeParty},
		{in: "conference", want: EventTypeOther},
		{in: "", want: EventTypeOther},
	}
	for _, tt := range tests {
		if got := ParseEventType(tt.in); got != tt.want {
			t.Errorf("ParseEventType(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseNotificationKind(t *testing.T) {
	if got := ParseNotificationKind("email"); got != NotificationEmail {
		t.Errorf("email = %s", got)
	}
	if got := ParseNotificationKind("sms"); got != NotificationPopup {
		t.Errorf("sms = %s", got)
	}
}

func TestCalendarEvent_OccursOn(t *testing.T) {
	day := func(d int) datemath.Date { return datemath.NewDate(2025, time.July, d) }
	end := day(25)
	inverted := day(18)

	tests := []struct {
		name  string
		event CalendarEvent
		on    datemath.Date
		want  bool
	}{
		{name: "Start day", event: CalendarEvent{StartDate: day(20)}, on: day(20), want: true},
		{name: "Other day", event: CalendarEvent{StartDate: day(20)}, on: day(21), want: false},
		{name: "Inside range", event: CalendarEvent{StartDate: day(20), EndDate: &end}, on: day(23), want: true},
		{name: "Range end inclusive", event: CalendarEvent{StartDate: day(20), EndDate: &end}, on: day(25), want: true},
		{name: "After range", event: CalendarEvent{StartDate: day(20), EndDate: &end}, on: day(26), want: false},
		{name: "Inverted range only on start", event: CalendarEvent{StartDate: day(20), EndDate: &inverted}, on: day(19), want: false},
		{name: "Inverted range start", event: CalendarEvent{StartDate: day(20), EndDate: &inverted}, on: day(20), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.OccursOn(tt.on); got != tt.want {
				t.Errorf("OccursOn(%v) = %v, want %v", tt.on, got, tt.want)
			}
		})
	}
}

func TestCalendarEvent_LastDateAndHasTime(t *testing.T) {
	start := datemath.NewDate(2025, time.July, 20)
	before := start.AddDays(-2)
	e := CalendarEvent{StartDate: start, EndDate: &before}
	if !e.LastDate().Equal(start) {
		t.Errorf("LastDate with end before start = %v", e.LastDate())
	}

	empty := ""
	if (CalendarEvent{Time: &empty}).HasTime() {
		t.Errorf("empty time must count as all day")
	}
}
