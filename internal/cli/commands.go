// Package cli provides the stopwatches command line.
package cli

import (
	"context"
	"fmt"
	"time"

	"stopwatches/internal/clock"
	"stopwatches/internal/config"
	"stopwatches/internal/logging"
	"stopwatches/internal/stopwatch"
	"stopwatches/internal/trace"
	"stopwatches/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X stopwatches/internal/cli.Version=...".
var Version = "dev"

// shutdownTimeout bounds the final span flush on exit.
const shutdownTimeout = 5 * time.Second

// NewRootCmd creates the root cobra command. Flag defaults come from the
// environment (see config.FromEnv).
func NewRootCmd() *cobra.Command {
	cfg := config.FromEnv()

	rootCmd := &cobra.Command{
		Use:   "stopwatches",
		Short: "Run stopwatches in the terminal",
		Long: `Stopwatches - a terminal window of independent stopwatches.

Keys:
  a        add a stopwatch
  r        remove the most recently added stopwatch
  d        toggle dark mode
  j/k      move focus
  s/t/x    start, stop, reset the focused stopwatch
  SPC      leader key (SPC a, SPC r, SPC d, SPC q)
  ?        full help
  q        quit

Stopwatch buttons can also be clicked.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.Context(), cfg)
		},
	}

	flags := rootCmd.Flags()
	flags.IntVarP(&cfg.Initial, "initial", "n", cfg.Initial, "number of stopwatches at startup")
	flags.Float64Var(&cfg.RefreshRate, "refresh-rate", cfg.RefreshRate, "display refresh rate for running stopwatches (Hz)")
	flags.StringVar(&cfg.Theme, "theme", cfg.Theme, "color theme: dark or light")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "append logs to this file (default: no logging)")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	rootCmd.AddCommand(versionCmd())
	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "stopwatches %s\n", Version)
		},
	}
}

// Run validates cfg, sets up logging and tracing, and runs the UI until the
// user quits. Extra program options are appended after the defaults.
func Run(ctx context.Context, cfg config.Config, extra ...tea.ProgramOption) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	provider, err := trace.NewOTLPProvider(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		logger.Warn("tracing disabled", "err", err)
		provider = nil
	}
	if provider != nil {
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := provider.Shutdown(sctx); err != nil {
				logger.Warn("trace shutdown", "err", err)
			}
		}()
	}

	clk := clock.Real{}
	theme, _ := ui.ParseThemeName(cfg.Theme)
	initial := cfg.Initial
	model := ui.NewAppModel(ui.Options{
		Clock:           clk,
		Observer:        newObserver(logger, provider, clk),
		Theme:           theme,
		Initial:         &initial,
		RefreshInterval: cfg.RefreshInterval(),
	})

	logger.Info("starting", "initial", cfg.Initial, "refresh_rate", cfg.RefreshRate, "theme", cfg.Theme, "tracing", provider != nil)
	opts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	}, extra...)
	if _, err := tea.NewProgram(model.AsTeaModel(), opts...).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	logger.Info("exiting", "stopwatches", model.Stopwatches.Len())
	return nil
}

// newObserver fans collection events out to the logger and, when tracing is
// enabled, to span export. Spans are timed on clk, the collection's clock.
func newObserver(logger *log.Logger, provider *trace.Provider, clk clock.Clock) stopwatch.Observer {
	observers := []stopwatch.Observer{logging.NewObserver(logger)}
	if tracer := provider.Tracer(); tracer != nil {
		observers = append(observers, trace.NewObserver(tracer, clk.Now))
	}
	return stopwatch.NewMultiObserver(observers...)
}
