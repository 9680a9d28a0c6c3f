package domain

import (
	"context"
	"log/slog"

	"ksuggest.dev/pkg/ksuggest/internal/adapter"
	"ksuggest.dev/pkg/ksuggest/internal/controller"
	m "ksuggest.dev/pkg/ksuggest/internal/model"
)

// ScanArgs describes which locations to scan and how.
type ScanArgs struct {
	Classpath         []string
	ArchiveExtensions []string
	Options           ScanOptions
}

// SuggestArgs contains the arguments for a suggestion run.
type SuggestArgs struct {
	ScanArgs
	Query      string
	Limit      m.Limit
	ShowScores bool
}

// ListArgs contains the arguments for listing scanned candidates.
type ListArgs struct {
	ScanArgs
}

// Workflow runs the scan-and-rank pipeline for the CLI.
type Workflow interface {
	Suggest(ctx context.Context, args SuggestArgs) error
	List(ctx context.Context, args ListArgs) error
}

type workflow struct {
	adapter.LocationFSAdapter
	controller.UI
	Scanner
	Ranker
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.LocationFSAdapter,
	ui controller.UI,
	scanner Scanner,
	ranker Ranker,
) Workflow {
	return &workflow{
		LocationFSAdapter: fsAdapter,
		UI:                ui,
		Scanner:           scanner,
		Ranker:            ranker,
	}
}

// Suggest scans the classpath and displays the best matches for the query.
func (w *workflow) Suggest(ctx context.Context, args SuggestArgs) error {
	candidates := w.collect(ctx, args.ScanArgs)

	suggestions := w.Rank(candidates, args.Query, args.Limit)
	slog.Debug("ranked candidates", "query", args.Query, "limit", args.Limit.String(), "shown", len(suggestions))

	return w.DisplaySuggestions(ctx, controller.SuggestionView{
		Query:       args.Query,
		Suggestions: suggestions,
		ShowScores:  args.ShowScores,
	})
}

// List scans the classpath and displays every candidate in scan order.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	return w.DisplayCandidates(ctx, w.collect(ctx, args.ScanArgs))
}

func (w *workflow) collect(ctx context.Context, args ScanArgs) m.CandidateSet {
	locations := w.Resolve(args.Classpath, args.ArchiveExtensions)
	slog.Debug("resolved classpath", "entries", len(args.Classpath), "locations", len(locations))

	candidates, issues := w.Scan(ctx, locations, args.Options)
	if len(issues) > 0 {
		w.DisplayIssues(ctx, issues)
	}

	slog.Info("scan finished", "locations", len(locations), "candidates", len(candidates), "issues", len(issues))

	return candidates
}
