package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "ksuggest.dev/pkg/ksuggest/internal/model"
)

// SimpleUI implements UI using the cobra command's writers.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySuggestions prints one name per line, or a score table when requested.
func (s *SimpleUI) DisplaySuggestions(ctx context.Context, view SuggestionView) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if view.ShowScores {
		s.printf("%s", renderScoreTable(view.Suggestions))
		return nil
	}

	for _, suggestion := range view.Suggestions {
		s.printf("%s\n", suggestion.Name)
	}

	return nil
}

// DisplayCandidates prints every scanned name in scan order.
func (s *SimpleUI) DisplayCandidates(ctx context.Context, candidates m.CandidateSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, name := range candidates {
		s.printf("%s\n", name)
	}

	return nil
}

// DisplayIssues reports skipped locations and entries on stderr.
func (s *SimpleUI) DisplayIssues(ctx context.Context, issues []m.ScanIssue) {
	if err := ctx.Err(); err != nil {
		return
	}

	for _, issue := range issues {
		s.errorf("%s\n", formatIssue(issue))
	}
}

func formatIssue(issue m.ScanIssue) string {
	if issue.Entry == "" {
		return fmt.Sprintf("skipped %s: %v", issue.Location, issue.Err)
	}

	return fmt.Sprintf("skipped %s in %s: %v", issue.Entry, issue.Location, issue.Err)
}

func renderScoreTable(suggestions []m.ScoredCandidate) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Name", "Tier", "Score"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	for _, suggestion := range suggestions {
		table.Append([]string{
			string(suggestion.Name),
			suggestion.Score.Tier.String(),
			fmt.Sprintf("%d", suggestion.Score.Value),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(suggestions)), "", ""})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
