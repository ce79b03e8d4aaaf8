package calendar

import "calendar-assistant/internal/model"

// ChipStyle is the colour triple of an event chip.
type ChipStyle struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
	Border     string `json:"border"`
}

// DefaultBannerColor is the detail-view banner when the event has no colour.
const DefaultBannerColor = "#4f46e5"

// customBackgroundAlpha is appended to a custom #rrggbb colour for the chip background.
const customBackgroundAlpha = "15"

var typeStyles = map[model.EventType]ChipStyle{
	model.EventTypeHoliday:     {Background: "#fee2e2", Foreground: "#991b1b", Border: "#ef4444"},
	model.EventTypeMeeting:     {Background: "#dbeafe", Foreground: "#1e40af", Border: "#3b82f6"},
	model.EventTypeParty:       {Background: "#f3e8ff", Foreground: "#6b21a8", Border: "#a855f7"},
	model.EventTypeAppointment: {Background: "#ccfbf1", Foreground: "#115e59", Border: "#14b8a6"},
	model.EventTypeReminder:    {Background: "#fef9c3", Foreground: "#854d0e", Border: "#eab308"},
}

var otherStyle = ChipStyle{Background: "#f3f4f6", Foreground: "#374151", Border: "#9ca3af"}

// ChipStyleFor returns the chip colours of e. A custom colour wins over the type palette.
func ChipStyleFor(e model.CalendarEvent) ChipStyle {
	if e.Color != nil && *e.Color != "" {
		c := *e.Color
		return ChipStyle{Background: c + customBackgroundAlpha, Foreground: c, Border: c}
	}
	if s, ok := typeStyles[e.Type]; ok {
		return s
	}
	return otherStyle
}

// BannerColorFor returns the detail-view banner colour of e.
func BannerColorFor(e model.CalendarEvent) string {
	if e.Color != nil && *e.Color != "" {
		return *e.Color
	}
	return DefaultBannerColor
}
