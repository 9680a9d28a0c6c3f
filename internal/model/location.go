// Package model defines the data structures shared by the scanner, ranker and UI.
package model

// Path represents a file system path.
type Path string

// LocationKind classifies a classpath entry.
type LocationKind int

const (
	// LocationUnknown is neither a directory nor a recognized archive.
	// Such locations contribute nothing to a scan.
	LocationUnknown LocationKind = iota
	// LocationDirectory is a tree of compiled-unit files.
	LocationDirectory
	// LocationArchive is a container of named entries (a jar).
	LocationArchive
)

func (k LocationKind) String() string {
	switch k {
	case LocationDirectory:
		return "directory"
	case LocationArchive:
		return "archive"
	case LocationUnknown:
		return "unknown"
	}

	return "unknown"
}

// Location is a single resolved classpath entry.
type Location struct {
	Path Path
	Kind LocationKind
}

// ScanIssue is a non-fatal problem met while scanning a location.
type ScanIssue struct {
	Location Path
	Entry    string // empty when the whole location was skipped
	Err      error
}
