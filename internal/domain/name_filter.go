package domain

import (
	"strings"

	m "ksuggest.dev/pkg/ksuggest/internal/model"
)

// Defaults match the Kotlin standard library layout.
const (
	DefaultNamespaceRoot   = "kotlin"
	DefaultNestedSeparator = "$"
)

// DefaultExcludedNamespaces are second segments rejected under the root.
var DefaultExcludedNamespaces = []string{"x"}

// NameFilter decides whether a qualified name belongs to the standard namespace.
type NameFilter struct {
	prefix          string
	excluded        []string
	nestedSeparator string
}

// NewNameFilter builds a filter accepting names under root, rejecting names whose
// second segment is one of excluded, and rejecting any name that contains
// nestedSeparator. An empty nestedSeparator disables that check.
func NewNameFilter(root string, excluded []string, nestedSeparator string) NameFilter {
	prefix := strings.ToLower(strings.TrimSuffix(root, ".")) + "."

	excludedPrefixes := make([]string, 0, len(excluded))
	for _, marker := range excluded {
		marker = strings.ToLower(strings.Trim(marker, "."))
		if marker != "" {
			excludedPrefixes = append(excludedPrefixes, prefix+marker+".")
		}
	}

	return NameFilter{
		prefix:          prefix,
		excluded:        excludedPrefixes,
		nestedSeparator: nestedSeparator,
	}
}

// DefaultNameFilter accepts kotlin.* names, except kotlin.x.* and nested types.
func DefaultNameFilter() NameFilter {
	return NewNameFilter(DefaultNamespaceRoot, DefaultExcludedNamespaces, DefaultNestedSeparator)
}

// Accept reports whether name is a standard-namespace name.
func (f NameFilter) Accept(name m.QualifiedName) bool {
	if f.nestedSeparator != "" && strings.Contains(string(name), f.nestedSeparator) {
		return false
	}

	lower := strings.ToLower(string(name))
	if !strings.HasPrefix(lower, f.prefix) {
		return false
	}

	for _, excluded := range f.excluded {
		if strings.HasPrefix(lower, excluded) {
			return false
		}
	}

	return true
}
