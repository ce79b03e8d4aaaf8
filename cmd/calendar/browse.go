package main

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"calendar-assistant/internal/termview"
	"calendar-assistant/pkg/datemath"
)

func newBrowseCmd() *cobra.Command {
	var eventsPath, todayStr string
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Navigate the month view interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if eventsPath == "-" {
				return errors.New("browse needs the terminal on stdin, pass a file to --events")
			}
			today, err := parseToday(todayStr, datemath.DateOf(time.Now()))
			if err != nil {
				return err
			}
			events, err := readEvents(eventsPath, nil)
			if err != nil {
				return err
			}

			// Open on the first event's month when there is one.
			start := today
			if len(events) > 0 {
				start = events[0].StartDate
			}

			p := tea.NewProgram(termview.NewBrowser(events, today, start), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
	cmd.Flags().StringVar(&eventsPath, "events", "", "JSON file of events")
	cmd.Flags().StringVar(&todayStr, "today", "", "override today (YYYY-MM-DD)")
	return cmd
}
