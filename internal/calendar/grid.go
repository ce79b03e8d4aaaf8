package calendar

import (
	"time"

	"calendar-assistant/pkg/datemath"
)

// Cell is one position of the month grid. Day is 0 for a leading blank.
type Cell struct {
	Day int
}

// IsBlank reports whether the cell pads the start of the month.
func (c Cell) IsBlank() bool {
	return c.Day == 0
}

// Grid is a week-aligned month layout with Sunday as the first column.
// There is no trailing padding: the last row may be shorter than seven cells.
type Grid struct {
	Year          int
	Month         time.Month
	LeadingBlanks int
	DaysInMonth   int
	Cells         []Cell
}

// BuildGrid lays out month (1-12) of year. month outside 1-12 is a caller error.
func BuildGrid(year int, month time.Month) Grid {
	blanks := int(datemath.FirstWeekday(year, month))
	days := datemath.DaysInMonth(year, month)

	cells := make([]Cell, blanks, blanks+days)
	for d := 1; d <= days; d++ {
		cells = append(cells, Cell{Day: d})
	}

	return Grid{
		Year:          year,
		Month:         month,
		LeadingBlanks: blanks,
		DaysInMonth:   days,
		Cells:         cells,
	}
}

// Rows returns ceil(len(Cells) / 7).
func (g Grid) Rows() int {
	return (len(g.Cells) + DaysPerWeek - 1) / DaysPerWeek
}

// Weeks splits the cells into rows of seven.
func (g Grid) Weeks() [][]Cell {
	weeks := make([][]Cell, 0, g.Rows())
	for i := 0; i < len(g.Cells); i += DaysPerWeek {
		end := min(i+DaysPerWeek, len(g.Cells))
		weeks = append(weeks, g.Cells[i:end])
	}
	return weeks
}

// Date returns the calendar date of a non-blank cell.
func (g Grid) Date(c Cell) datemath.Date {
	return datemath.NewDate(g.Year, g.Month, c.Day)
}
