package model

import "strings"

// QualifiedName is a dot-separated identifier such as kotlin.collections.List.
type QualifiedName string

// Segments splits the name on dots. A name always has at least one segment.
func (n QualifiedName) Segments() []string {
	return strings.Split(string(n), ".")
}

// Leaf returns the last segment of the name.
func (n QualifiedName) Leaf() string {
	s := string(n)
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return s[i+1:]
	}

	return s
}

// CandidateSet holds names in the order the scanner found them.
type CandidateSet []QualifiedName

// Tier is the coarse rank of a score. A lower tier always outranks a higher one.
type Tier int

const (
	// TierLeafPrefix means the leaf segment starts with the query.
	TierLeafPrefix Tier = iota
	// TierLeafContains means the query occurs later inside the leaf segment.
	TierLeafContains
	// TierSegmentPrefix means some other segment starts with the query.
	TierSegmentPrefix
	// TierEditDistance means nothing matched and the edit distance decides.
	TierEditDistance
)

func (t Tier) String() string {
	switch t {
	case TierLeafPrefix:
		return "leaf-prefix"
	case TierLeafContains:
		return "leaf-contains"
	case TierSegmentPrefix:
		return "segment-prefix"
	case TierEditDistance:
		return "edit-distance"
	}

	return "unknown"
}

// Score is a two-level rank key: tier first, then the value within the tier.
type Score struct {
	Tier  Tier
	Value int
}

// Less reports whether s ranks strictly before other.
func (s Score) Less(other Score) bool {
	if s.Tier != other.Tier {
		return s.Tier < other.Tier
	}

	return s.Value < other.Value
}

// ScoredCandidate pairs a name with its score against a query.
type ScoredCandidate struct {
	Name  QualifiedName
	Score Score
}
