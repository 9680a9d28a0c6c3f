package controller

import (
	"context"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	m "ksuggest.dev/pkg/ksuggest/internal/model"
)

var (
	namespaceStyle = lipgloss.NewStyle().Faint(true)
	leafStyle      = lipgloss.NewStyle().Bold(true)
	matchStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	issueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// StyledUI highlights the matched part of each suggestion for terminal output.
type StyledUI struct {
	*SimpleUI
}

// NewStyledUI creates a new StyledUI.
func NewStyledUI(cmd *cobra.Command) *StyledUI {
	return &StyledUI{SimpleUI: NewSimpleUI(cmd)}
}

// DisplaySuggestions prints highlighted names; score tables stay plain.
func (s *StyledUI) DisplaySuggestions(ctx context.Context, view SuggestionView) error {
	if view.ShowScores {
		return s.SimpleUI.DisplaySuggestions(ctx, view)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	for _, suggestion := range view.Suggestions {
		s.printf("%s\n", highlight(suggestion.Name, view.Query))
	}

	return nil
}

// DisplayIssues reports skipped locations in a warning color.
func (s *StyledUI) DisplayIssues(ctx context.Context, issues []m.ScanIssue) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, issue := range issues {
		s.errorf("%s\n", issueStyle.Render(formatIssue(issue)))
	}
}

// highlight renders the namespace faint and the leaf bold, with the first
// case-insensitive occurrence of query inside the leaf colored.
func highlight(name m.QualifiedName, query string) string {
	full := string(name)
	leaf := name.Leaf()
	namespace := strings.TrimSuffix(full, leaf)

	var b strings.Builder
	if namespace != "" {
		b.WriteString(namespaceStyle.Render(namespace))
	}

	start, end := matchRange(leaf, query)
	if start == end {
		b.WriteString(leafStyle.Render(leaf))
		return b.String()
	}

	if start > 0 {
		b.WriteString(leafStyle.Render(leaf[:start]))
	}

	b.WriteString(matchStyle.Render(leaf[start:end]))

	if end < len(leaf) {
		b.WriteString(leafStyle.Render(leaf[end:]))
	}

	return b.String()
}

// matchRange returns the byte range of query inside leaf, or an empty range.
func matchRange(leaf, query string) (int, int) {
	if query == "" {
		return 0, 0
	}

	idx := strings.Index(strings.ToLower(leaf), strings.ToLower(query))
	if idx < 0 || idx+len(query) > len(leaf) || !strings.EqualFold(leaf[idx:idx+len(query)], query) {
		return 0, 0
	}

	return idx, idx + len(query)
}
