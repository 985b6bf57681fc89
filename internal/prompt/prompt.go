package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// Prompter asks the user for the next query.
// ok is false when the user is done (empty input or abort).
type Prompter interface {
	Ask(ctx context.Context, previous string) (query string, ok bool, err error)
}

// HuhPrompter shows a single-line huh input form.
type HuhPrompter struct{}

// Ask implements Prompter.
func (HuhPrompter) Ask(ctx context.Context, previous string) (string, bool, error) {
	query := previous

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Search tasks").
				Description("Words, \"phrases\", OR, NOT/-word, field:value (amount:>100, due:today). Empty to quit.").
				Placeholder("rent OR milk").
				Value(&query),
		),
	).WithTheme(huh.ThemeCharm())

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("search prompt: %w", err)
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return "", false, nil
	}
	return query, true, nil
}
