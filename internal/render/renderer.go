package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer turns markdown into terminal output.
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}

// GlamourRenderer renders markdown with a glamour style.
type GlamourRenderer struct {
	term *glamour.TermRenderer
}

// NewGlamourRenderer builds a renderer for a style name ("auto" detects the
// terminal background) and a wrap width (0 disables wrapping).
func NewGlamourRenderer(style string, wordWrap int) (*GlamourRenderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(wordWrap)}
	if style = strings.ToLower(strings.TrimSpace(style)); style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	term, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("create glamour renderer: %w", err)
	}
	return &GlamourRenderer{term: term}, nil
}

// Render implements MarkdownRenderer.
func (g *GlamourRenderer) Render(markdown string) (string, error) {
	out, err := g.term.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// FallbackRenderer prints markdown unchanged.
type FallbackRenderer struct{}

// Render implements MarkdownRenderer.
func (FallbackRenderer) Render(markdown string) (string, error) {
	return markdown, nil
}

// NewRenderer returns a glamour renderer, or the plain fallback when the
// style cannot be loaded.
func NewRenderer(style string, wordWrap int) (MarkdownRenderer, error) {
	g, err := NewGlamourRenderer(style, wordWrap)
	if err != nil {
		return FallbackRenderer{}, err
	}
	return g, nil
}
