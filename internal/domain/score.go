package domain

import (
	"strings"

	"github.com/hbollon/go-edlib"
	m "ksuggest.dev/pkg/ksuggest/internal/model"
)

// ScoreFunc computes the rank key of name against query.
type ScoreFunc func(query string, name m.QualifiedName) m.Score

// Score ranks name against query; lower scores rank first.
//
// Tiers are tried in order and the first one that applies wins:
//   - the leaf segment starts with the query
//   - the query occurs later in the leaf segment (earlier offsets rank first)
//   - any segment starts with the query
//   - otherwise, the edit distance between the query and the leaf prefix of the
//     same length
func Score(query string, name m.QualifiedName) m.Score {
	query = strings.ToLower(query)
	segments := strings.Split(strings.ToLower(string(name)), ".")
	leaf := segments[len(segments)-1]

	switch idx := strings.Index(leaf, query); {
	case idx == 0:
		return m.Score{Tier: m.TierLeafPrefix}
	case idx > 0:
		return m.Score{Tier: m.TierLeafContains, Value: idx}
	}

	for _, segment := range segments {
		if strings.HasPrefix(segment, query) {
			return m.Score{Tier: m.TierSegmentPrefix}
		}
	}

	return m.Score{Tier: m.TierEditDistance, Value: prefixDistance(query, leaf)}
}

// prefixDistance compares query with the leaf cut to at most len(query) runes.
func prefixDistance(query, leaf string) int {
	q := []rune(query)
	l := []rune(leaf)

	n := min(len(q), len(l))

	return edlib.LevenshteinDistance(query, string(l[:n]))
}
