package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"calendar-assistant/internal/calendar"
	"calendar-assistant/internal/termview"
	"calendar-assistant/pkg/datemath"
)

type gridFlags struct {
	year       int
	month      int
	eventsPath string
	today      string
	cellWidth  int
}

func newGridCmd() *cobra.Command {
	var f gridFlags
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the month grid with the events placed on it",
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := parseToday(f.today, datemath.DateOf(time.Now()))
			if err != nil {
				return err
			}
			year, month, err := resolveMonth(f.year, f.month, today)
			if err != nil {
				return err
			}
			events, err := readEvents(f.eventsPath, cmd.InOrStdin())
			if err != nil {
				return err
			}

			m := calendar.BuildMonth(events, year, month)
			fmt.Fprintln(cmd.OutOrStdout(), termview.RenderMonth(m, termview.Options{
				CellWidth: f.cellWidth,
				Today:     today,
			}))
			return nil
		},
	}
	cmd.Flags().IntVar(&f.year, "year", 0, "year (default: current year)")
	cmd.Flags().IntVar(&f.month, "month", 0, "month 1-12 (default: current month)")
	cmd.Flags().StringVar(&f.eventsPath, "events", "", "JSON file of events, - for stdin")
	cmd.Flags().StringVar(&f.today, "today", "", "override today (YYYY-MM-DD)")
	cmd.Flags().IntVar(&f.cellWidth, "cell-width", termview.DefaultCellWidth, "width of a day cell")
	return cmd
}
