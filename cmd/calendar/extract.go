package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"calendar-assistant/config"
	"calendar-assistant/internal/event"
	"calendar-assistant/internal/event/repository/memory"
	"calendar-assistant/internal/event/usecase"
	"calendar-assistant/internal/model"
	"calendar-assistant/internal/termview"
	"calendar-assistant/pkg/datemath"
	"calendar-assistant/pkg/llmprovider"
	"calendar-assistant/pkg/log"
)

const cliSessionID = "cli"

type extractFlags struct {
	mode   string
	today  string
	file   string
	render bool
}

func newExtractCmd() *cobra.Command {
	var f extractFlags
	cmd := &cobra.Command{
		Use:   "extract [text]",
		Short: "Extract calendar events from a transcript or task instructions",
		Long: "Extract sends the text to the configured language model and prints the events as JSON.\n" +
			"The text comes from the arguments, --file, or stdin when neither is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(args, f.file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			mode, err := event.ParseMode(f.mode)
			if err != nil {
				return err
			}
			input := event.ExtractInput{Text: text, Mode: mode}
			if f.today != "" {
				today, err := datemath.ParseDate(f.today)
				if err != nil {
					return err
				}
				input.Today = &today
			}

			uc, err := newUseCase(cmd.Context())
			if err != nil {
				return err
			}
			return runExtract(cmd.Context(), uc, input, cmd.OutOrStdout(), f.render)
		},
	}
	cmd.Flags().StringVar(&f.mode, "mode", string(event.ModeTranscript), "transcript or task")
	cmd.Flags().StringVar(&f.today, "today", "", "reference date for relative expressions (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "read the text from a file")
	cmd.Flags().BoolVar(&f.render, "render", false, "also print the grid of the first event's month")
	return cmd
}

func readText(args []string, file string, stdin io.Reader) (string, error) {
	switch {
	case len(args) > 0:
		return strings.Join(args, " "), nil
	case file != "":
		b, err := os.ReadFile(file)
		return string(b), err
	case stdin != nil:
		b, err := io.ReadAll(stdin)
		return string(b), err
	}
	return "", errors.New("no text given")
}

// newUseCase wires the event use case the same way the API server does,
// without a screenshot capturer.
func newUseCase(ctx context.Context) (event.UseCase, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	l := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     cfg.Logger.Mode,
		Encoding: cfg.Logger.Encoding,
	})

	parser, err := datemath.NewParser(cfg.Calendar.Timezone)
	if err != nil {
		return nil, err
	}

	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, l)
	if err != nil && !errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
		return nil, err
	}
	var maxTotal time.Duration
	if cfg.LLM.MaxTotalTimeout != "" {
		maxTotal, _ = time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	}
	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		MaxTotalTimeout: maxTotal,
	}, l)

	repo := memory.New(l, memory.Options{MaxSessions: 1})
	return usecase.New(l, llm, repo, parser, nil), nil
}

func runExtract(ctx context.Context, uc event.UseCase, input event.ExtractInput, out io.Writer, render bool) error {
	sc := model.Scope{SessionID: cliSessionID}
	output, err := uc.Extract(ctx, sc, input)
	if err != nil {
		if errors.Is(err, event.ErrEmptyInput) {
			return err
		}
		return fmt.Errorf("%s (%w)", event.MessageFor(err), err)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output.Events); err != nil {
		return err
	}

	if render && len(output.Events) > 0 {
		first := output.Events[0].StartDate
		month, err := uc.Month(ctx, sc, event.MonthInput{Year: first.Year, Month: first.Month})
		if err != nil {
			return err
		}
		fmt.Fprintln(out, termview.RenderMonth(month.Month, termview.Options{Today: month.Today}))
	}
	return nil
}
