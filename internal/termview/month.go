package termview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/datemath"
)

const (
	DefaultCellWidth = 14
	DefaultMaxChips  = 3
)

var (
	titleStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true).
			Align(lipgloss.Center)

	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238"))

	todayStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Underline(true)
	eventDayStyle = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	moreStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statsStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
)

// Options controls the month rendering.
type Options struct {
	CellWidth int
	MaxChips  int
	Today     datemath.Date
	// Selected highlights a day when non-zero.
	Selected datemath.Date
}

// RenderMonth draws m as a bordered seven-column grid with event chips.
func RenderMonth(m calendar.Month, opts Options) string {
	if opts.CellWidth <= 0 {
		opts.CellWidth = DefaultCellWidth
	}
	if opts.MaxChips <= 0 {
		opts.MaxChips = DefaultMaxChips
	}

	title := titleStyle.Render(fmt.Sprintf("%s %d", m.Month, m.Year))

	headers := make([]string, len(calendar.WeekdayLabels))
	for i, label := range calendar.WeekdayLabels {
		// +2 for the cell border
		headers[i] = headerStyle.Width(opts.CellWidth + 2).Render(label)
	}

	rows := []string{title, lipgloss.JoinHorizontal(lipgloss.Top, headers...)}
	for _, week := range m.Weeks() {
		cells := make([]string, calendar.DaysPerWeek)
		for i := range cells {
			if i < len(week) {
				cells[i] = renderCell(week[i], opts)
			} else {
				cells[i] = renderCell(calendar.DayCell{}, opts)
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	rows = append(rows, statsStyle.Render(fmt.Sprintf(
		"Total Events: %d   Next Month: %d", m.Stats.TotalEvents, m.Stats.NextMonthEvents,
	)))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCell(c calendar.DayCell, opts Options) string {
	lines := make([]string, 0, opts.MaxChips+1)
	if c.Date == nil {
		lines = append(lines, "")
	} else {
		day := fmt.Sprintf("%2d", c.Day)
		switch {
		case !opts.Selected.IsZero() && c.Date.Equal(opts.Selected):
			day = selectedStyle.Render(day)
		case c.Date.Equal(opts.Today):
			day = todayStyle.Render(day)
		case len(c.Events) > 0:
			day = eventDayStyle.Render(day)
		}
		lines = append(lines, day)

		for i, e := range c.Events {
			if i == opts.MaxChips-1 && len(c.Events) > opts.MaxChips {
				lines = append(lines, moreStyle.Render(fmt.Sprintf("+%d more", len(c.Events)-i)))
				break
			}
			lines = append(lines, renderChip(e, opts.CellWidth))
		}
	}
	for len(lines) < opts.MaxChips+1 {
		lines = append(lines, "")
	}

	return cellStyle.Width(opts.CellWidth).Render(strings.Join(lines, "\n"))
}

func renderChip(e model.CalendarEvent, width int) string {
	s := calendar.ChipStyleFor(e)
	label := e.Title
	if e.HasTime() {
		label = *e.Time + " " + label
	}
	// one column for the border marker
	return lipgloss.NewStyle().Foreground(lipgloss.Color(s.Border)).Render("▌") +
		lipgloss.NewStyle().Foreground(lipgloss.Color(s.Foreground)).Render(truncate(label, width-1))
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 {
		return ""
	}
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

// RenderDay lists the events placed on one day, with the detail fields
// the web detail view shows.
func RenderDay(d datemath.Date, events []model.CalendarEvent) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(d.Time(time.UTC).Format("Monday, January 2, 2006")))
	b.WriteString("\n")
	if len(events) == 0 {
		b.WriteString(moreStyle.Render("No events"))
		return b.String()
	}
	for _, e := range events {
		s := calendar.ChipStyleFor(e)
		name := lipgloss.NewStyle().Foreground(lipgloss.Color(s.Foreground)).Bold(true).Render(e.Title)
		fmt.Fprintf(&b, "%s  %s · %s · %s\n", name, e.Type, calendar.FormatTime(e), calendar.FormatDuration(e))
		if e.Location != nil && *e.Location != "" {
			fmt.Fprintf(&b, "  @ %s\n", *e.Location)
		}
		if n := calendar.FormatGuestCount(e); n != "" {
			fmt.Fprintf(&b, "  %s: %s\n", n, strings.Join(e.Guests, ", "))
		}
		for _, r := range e.Notifications {
			fmt.Fprintf(&b, "  ⏰ %s\n", calendar.FormatReminder(r))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
