package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/derhamderham/diligence/internal/prompt"
	"github.com/derhamderham/diligence/internal/render"
	"github.com/derhamderham/diligence/store"
	"github.com/derhamderham/diligence/task"
)

// App runs queries against a store and writes rendered results.
type App struct {
	Store            store.Store
	Renderer         render.MarkdownRenderer
	Out              io.Writer
	IncludeCompleted bool
}

// filter returns the result filter implied by the configuration, or nil.
func (a *App) filter() func(*task.Task) bool {
	if a.IncludeCompleted {
		return nil
	}
	return func(t *task.Task) bool { return !t.Completed }
}

// RunQuery searches once and writes the rendered results.
// Returns the number of matches.
func (a *App) RunQuery(query string) (int, error) {
	results := a.Store.Search(query, a.filter())
	slog.Debug("search finished", "query", query, "matches", len(results))

	out, err := render.RenderResults(a.Renderer, query, results, a.Store.GetSections())
	if err != nil {
		return 0, err
	}
	if _, err := io.WriteString(a.Out, out); err != nil {
		return 0, fmt.Errorf("write results: %w", err)
	}
	return len(results), nil
}

// RunInteractive prompts for queries until the prompter reports it is done
// or ctx is canceled. The previous query prefills the next prompt.
func (a *App) RunInteractive(ctx context.Context, p prompt.Prompter) error {
	previous := ""
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		query, ok, err := p.Ask(ctx, previous)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if _, err := a.RunQuery(query); err != nil {
			return err
		}
		previous = query
	}
}
