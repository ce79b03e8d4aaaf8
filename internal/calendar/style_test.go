package calendar

import (
	"testing"

	"calendar-assistant/internal/model"
)

func TestChipStyleFor(t *testing.T) {
	purple := "#9333ea"

	tests := []struct {
		name  string
		event model.CalendarEvent
		want  ChipStyle
	}{
		{
			name:  "Holiday palette",
			event: model.CalendarEvent{Type: model.EventTypeHoliday},
			want:  ChipStyle{Background: "#fee2e2", Foreground: "#991b1b", Border: "#ef4444"},
		},
		{
			name:  "Meeting palette",
			event: model.CalendarEvent{Type: model.EventTypeMeeting},
			want:  ChipStyle{Background: "#dbeafe", Foreground: "#1e40af", Border: "#3b82f6"},
		},
		{
			name:  "Other falls back to grey",
			event: model.CalendarEvent{Type: model.EventTypeOther},
			want:  ChipStyle{Background: "#f3f4f6", Foreground: "#374151", Border: "#9ca3af"},
		},
		{
			name:  "Missing type falls back to grey",
			event: model.CalendarEvent{},
			want:  ChipStyle{Background: "#f3f4f6", Foreground: "#374151", Border: "#9ca3af"},
		},
		{
			name:  "Custom colour wins",
			event: model.CalendarEvent{Type: model.EventTypeMeeting, Color: &purple},
			want:  ChipStyle{Background: "#9333ea15", Foreground: "#9333ea", Border: "#9333ea"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChipStyleFor(tt.event); got != tt.want {
				t.Errorf("ChipStyleFor() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBannerColorFor(t *testing.T) {
	if got := BannerColorFor(model.CalendarEvent{}); got != DefaultBannerColor {
		t.Errorf("BannerColorFor() = %q, want %q", got, DefaultBannerColor)
	}
	c := "#ff0000"
	if got := BannerColorFor(model.CalendarEvent{Color: &c}); got != c {
		t.Errorf("BannerColorFor() = %q, want %q", got, c)
	}
}

func TestFormatReminder(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{minutes: 10, want: "10 mins before"},
		{minutes: 1439, want: "1439 mins before"},
		{minutes: 1440, want: "1 day(s) before"},
		{minutes: 2160, want: "1.5 day(s) before"},
		{minutes: 10080, want: "7 day(s) before"},
	}

	for _, tt := range tests {
		got := FormatReminder(model.Notification{Kind: model.NotificationPopup, MinutesBefore: tt.minutes})
		if got != tt.want {
			t.Errorf("FormatReminder(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestFormatDetails(t *testing.T) {
	at := "15:00"
	dur := 45
	e := newEvent("m", "2025-07-28")
	e.Time = &at
	e.Duration = &dur
	e.Guests = []string{"ana@example.com", "bo@example.com"}

	if got := FormatTime(e); got != "15:00" {
		t.Errorf("FormatTime = %q", got)
	}
	if got := FormatDuration(e); got != "45 minutes" {
		t.Errorf("FormatDuration = %q", got)
	}
	if got := FormatGuestCount(e); got != "2 guests" {
		t.Errorf("FormatGuestCount = %q", got)
	}
	if got := FormatLongDate(e); got != "Monday, July 28, 2025" {
		t.Errorf("FormatLongDate = %q", got)
	}

	bare := newEvent("b", "2025-07-28")
	if FormatTime(bare) != "All Day" || FormatDuration(bare) != "No duration set" || FormatGuestCount(bare) != "" {
		t.Errorf("unexpected fallbacks for bare event")
	}
}
