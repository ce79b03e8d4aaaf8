package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "calendar",
		Short:         "Turn transcripts into calendar events and browse them in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGridCmd(), newExtractCmd(), newBrowseCmd())
	return root
}
