package termview

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/model"
	"calendar-assistant/pkg/datemath"
)

type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevMonth, k.NextMonth, k.Today, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PrevMonth, k.NextMonth, k.Today},
		{k.Help, k.Quit},
	}
}

var keys = keyMap{
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous day")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous week")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
	PrevMonth: key.NewBinding(key.WithKeys("p", "pgup"), key.WithHelp("p", "previous month")),
	NextMonth: key.NewBinding(key.WithKeys("n", "pgdown"), key.WithHelp("n", "next month")),
	Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
	Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

var docStyle = lipgloss.NewStyle().Padding(1, 2)

// Browser is an interactive month view over a fixed list of events.
type Browser struct {
	events   []model.CalendarEvent
	today    datemath.Date
	selected datemath.Date
	month    calendar.Month

	help     help.Model
	quitting bool
}

// NewBrowser starts on the month of start.
func NewBrowser(events []model.CalendarEvent, today, start datemath.Date) Browser {
	b := Browser{
		events: events,
		today:  today,
		help:   help.New(),
	}
	b.selectDay(start)
	return b
}

// Selected is the day under the cursor.
func (b Browser) Selected() datemath.Date {
	return b.selected
}

// Month is the month currently shown.
func (b Browser) Month() calendar.Month {
	return b.month
}

func (b *Browser) selectDay(d datemath.Date) {
	if b.month.Year != d.Year || b.month.Month != d.Month {
		b.month = calendar.BuildMonth(b.events, d.Year, d.Month)
	}
	b.selected = d
}

// shiftMonth keeps the day of month, clamped to the new month's length.
func (b *Browser) shiftMonth(next bool) {
	y, m := datemath.PrevMonth(b.selected.Year, b.selected.Month)
	if next {
		y, m = datemath.NextMonth(b.selected.Year, b.selected.Month)
	}
	day := min(b.selected.Day, datemath.DaysInMonth(y, m))
	b.selectDay(datemath.NewDate(y, m, day))
}

func (b Browser) Init() tea.Cmd {
	return nil
}

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			b.quitting = true
			return b, tea.Quit
		case key.Matches(msg, keys.Left):
			b.selectDay(b.selected.AddDays(-1))
		case key.Matches(msg, keys.Right):
			b.selectDay(b.selected.AddDays(1))
		case key.Matches(msg, keys.Up):
			b.selectDay(b.selected.AddDays(-calendar.DaysPerWeek))
		case key.Matches(msg, keys.Down):
			b.selectDay(b.selected.AddDays(calendar.DaysPerWeek))
		case key.Matches(msg, keys.PrevMonth):
			b.shiftMonth(false)
		case key.Matches(msg, keys.NextMonth):
			b.shiftMonth(true)
		case key.Matches(msg, keys.Today):
			b.selectDay(b.today)
		case key.Matches(msg, keys.Help):
			b.help.ShowAll = !b.help.ShowAll
		}
	}
	return b, nil
}

func (b Browser) View() string {
	if b.quitting {
		return ""
	}
	grid := RenderMonth(b.month, Options{Today: b.today, Selected: b.selected})
	day := RenderDay(b.selected, calendar.EventsForDay(b.events, b.selected))
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, grid, "", day, "", b.help.View(keys)))
}
