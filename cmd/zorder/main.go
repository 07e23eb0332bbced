package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zorder/internal/billing"
	"github.com/zarlcorp/zorder/internal/cli"
	"github.com/zarlcorp/zorder/internal/ledger"
	"github.com/zarlcorp/zorder/internal/sample"
	"github.com/zarlcorp/zorder/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zorder"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	if len(os.Args) > 1 {
		runCLI(ctx, os.Args[1])
		_ = app.Close()
		return
	}

	cfg, err := cli.LoadConfig()
	if err != nil {
		slog.Error("config", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	closeLog, err := setupLogging(cfg.LogPath)
	if err != nil {
		slog.Error("log", "err", err)
		_ = app.Close()
		os.Exit(1)
	}
	defer closeLog()

	if err := runTUI(cfg); err != nil {
		slog.Error("tui", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runCLI(_ context.Context, cmd string) {
	switch cmd {
	case "version":
		fmt.Printf("zorder %s\n", version)
	case "validate":
		cli.CmdValidate(os.Args[2:])
	case "sample":
		cli.CmdSample(os.Args[2:])
	case "tracking":
		cli.CmdTracking()
	default:
		fmt.Fprintf(os.Stderr, "zorder: unknown command %q\n", cmd)
		os.Exit(1)
	}
}

// setupLogging sends debug logs to path while the TUI owns the terminal.
// Without a path only warnings and errors reach stderr.
func setupLogging(path string) (func(), error) {
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", path, err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return func() { f.Close() }, nil
}

func runTUI(cfg cli.Config) error {
	led, err := ledger.Open()
	if err != nil {
		return err
	}

	form := billing.NewForm(billing.NewTracker(nil))
	form.SetTheme(cfg.Theme)

	m := tui.New(form, sample.New(""), led)
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		led.Close()
		return err
	}

	if fm, ok := finalModel.(tui.Model); ok {
		fm.Close()
	}

	return nil
}
