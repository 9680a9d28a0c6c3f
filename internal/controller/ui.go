// Package controller provides output adapters for displaying suggestions.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "ksuggest.dev/pkg/ksuggest/internal/model"
)

// SuggestionView is everything needed to print one ranked result.
type SuggestionView struct {
	Query       string
	Suggestions []m.ScoredCandidate
	ShowScores  bool
}

// UI defines how scan results and diagnostics reach the user.
// Implementations can use different output methods (plain text, styled, etc).
type UI interface {
	DisplaySuggestions(ctx context.Context, view SuggestionView) error
	DisplayCandidates(ctx context.Context, candidates m.CandidateSet) error
	DisplayIssues(ctx context.Context, issues []m.ScanIssue)
}

// NewUI returns a StyledUI when styled output is requested, otherwise a SimpleUI.
func NewUI(cmd *cobra.Command, styled bool) UI {
	if styled {
		return NewStyledUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
