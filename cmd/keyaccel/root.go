package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"keyaccel/internal/accel"
	"keyaccel/internal/config"
	"keyaccel/internal/keysource"
	"keyaccel/internal/telemetry"
	"keyaccel/internal/ui"
)

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "keyaccel",
		Short: "Terminal style guide built on shared keyboard accelerators",
		Long: `keyaccel browses a small terminal style guide. Every panel and dialog
registers its own keyboard accelerators; the most recently opened one
answers a key first.

Configuration is read from .keyaccel.yml (or --config) and KEYACCEL_*
environment variables. Set OTEL_EXPORTER_OTLP_ENDPOINT to export
dispatch spans.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.keyaccel.yml)")
	cmd.Flags().String("log-file", "", "write debug log to this file")
	cmd.Flags().String("page", "", "page to open on start")

	cmd.AddCommand(newKeysCmd())
	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := log.New(io.Discard, "", 0)
	var opts []accel.Option
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "keyaccel")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger = log.Default()
		opts = append(opts, accel.WithLogger(logger))
	}

	provider, err := telemetry.NewProvider(ctx, cfg.Trace.Telemetry())
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.Printf("telemetry shutdown: %v", err)
		}
	}()
	opts = append(opts, accel.WithTracer(provider.Tracer("keyaccel/accel")))

	src := keysource.New()
	app := ui.NewAppModel(accel.New(src, opts...), src)
	defer app.Close()

	if cfg.StartPage != "" {
		p, ok := ui.FindPage(cfg.StartPage)
		if !ok {
			return fmt.Errorf("unknown page %q", cfg.StartPage)
		}
		app.Open(p)
	}

	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
