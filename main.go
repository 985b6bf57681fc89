package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/derhamderham/diligence/config"
	"github.com/derhamderham/diligence/internal/app"
	"github.com/derhamderham/diligence/internal/bootstrap"
	"github.com/derhamderham/diligence/internal/prompt"
	"github.com/derhamderham/diligence/internal/render"
)

const usageHeader = `usage: diligence [flags] [query words...]

Query syntax: words match anywhere, "quoted phrases" match exactly,
OR / AND / NOT (or -word) combine terms left to right, word* matches a
word prefix, and field:value filters narrow by title, desc, amount,
section, priority, status or due (amount:>100, due:today, status:todo).
Use -- before query words that look like flags.

flags:
`

// main parses the command line, loads the task store and runs one query, or
// prompts for queries when none is given on an interactive terminal.
func main() {
	inv, err := bootstrap.ParseArgs(os.Args[1:])
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	if inv.ShowVersion {
		fmt.Print(config.VersionString())
		return
	}
	if inv.ShowHelp {
		fmt.Print(usageHeader + config.NewFlagSet().FlagUsages())
		return
	}

	// Initialize paths early - this must succeed for the application to function
	if err := config.InitPaths(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	result, err := bootstrap.Bootstrap(inv)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	renderer, err := render.NewRenderer(config.GetRenderStyle(), config.GetWordWrap())
	if err != nil {
		slog.Warn("falling back to plain output", "style", config.GetRenderStyle(), "error", err)
	}

	application := &app.App{
		Store:            result.Store,
		Renderer:         renderer,
		Out:              os.Stdout,
		IncludeCompleted: result.Cfg.Search.IncludeCompleted,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if result.Query != "" || !isInteractive() {
		if _, err := application.RunQuery(result.Query); err != nil {
			slog.Error("search failed", "query", result.Query, "error", err)
			os.Exit(1)
		}
		return
	}

	if err := application.RunInteractive(ctx, prompt.HuhPrompter{}); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("interactive search failed", "error", err)
		os.Exit(1)
	}
}

func isInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
