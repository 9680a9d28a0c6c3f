package domain

import (
	"sort"

	m "ksuggest.dev/pkg/ksuggest/internal/model"
)

// Ranker orders candidates by relevance to a query.
type Ranker interface {
	Rank(candidates m.CandidateSet, query string, limit m.Limit) []m.ScoredCandidate
}

type ranker struct {
	score ScoreFunc
}

// NewRanker creates a Ranker using Score.
func NewRanker() Ranker {
	return NewRankerWithScore(Score)
}

// NewRankerWithScore creates a Ranker with a custom score function.
func NewRankerWithScore(score ScoreFunc) Ranker {
	return &ranker{score: score}
}

// Rank scores every candidate, sorts them stably by score and keeps the first
// limit entries. Candidates with equal scores keep their scan order. The input
// set is left untouched.
func (r *ranker) Rank(candidates m.CandidateSet, query string, limit m.Limit) []m.ScoredCandidate {
	scored := make([]m.ScoredCandidate, 0, len(candidates))
	for _, name := range candidates {
		scored = append(scored, m.ScoredCandidate{Name: name, Score: r.score(query, name)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score.Less(scored[j].Score)
	})

	return scored[:limit.Apply(len(scored))]
}
