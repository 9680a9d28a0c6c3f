// Package adapter contains filesystem adapters for the ksuggest CLI.
package adapter

import (
	"archive/zip"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	m "ksuggest.dev/pkg/ksuggest/internal/model"
)

// DefaultArchiveExtensions lists the extensions recognized as archives when the
// caller does not configure any.
var DefaultArchiveExtensions = []string{".jar"}

// LocationFSAdapter abstracts the filesystem operations the scanner relies on.
// It hides direct `os` and `archive/zip` access so the domain can be tested
// without real classpaths.
type LocationFSAdapter interface {
	// Resolve expands classpath entries into existing, classified locations.
	// Glob entries are expanded; entries that do not exist are dropped.
	Resolve(entries []string, archiveExtensions []string) []m.Location

	// Walk traverses every file and directory below root.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// ArchiveEntries returns the names of all entries stored in the archive.
	ArchiveEntries(path m.Path) ([]string, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type into the domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalLocationFSAdapter is the disk-backed LocationFSAdapter.
type LocalLocationFSAdapter struct{}

// NewLocalLocationFSAdapter constructs a LocalLocationFSAdapter ready to be
// wired into the workflow.
func NewLocalLocationFSAdapter() *LocalLocationFSAdapter {
	return &LocalLocationFSAdapter{}
}

// SplitClasspath splits a classpath string on the OS path-list separator and
// drops blank entries.
func SplitClasspath(value string) []string {
	var entries []string

	for _, entry := range filepath.SplitList(value) {
		entry = strings.TrimSpace(entry)
		if entry != "" {
			entries = append(entries, entry)
		}
	}

	return entries
}

// Resolve expands and classifies classpath entries in order.
func (a *LocalLocationFSAdapter) Resolve(entries []string, archiveExtensions []string) []m.Location {
	if len(archiveExtensions) == 0 {
		archiveExtensions = DefaultArchiveExtensions
	}

	var locations []m.Location

	for _, entry := range entries {
		for _, path := range a.expand(entry) {
			path = filepath.Clean(path)

			info, err := os.Stat(path)
			if err != nil {
				slog.Debug("skipping classpath entry", "path", path, "error", err)
				continue
			}

			locations = append(locations, m.Location{
				Path: m.Path(path),
				Kind: classify(path, info, archiveExtensions),
			})
		}
	}

	return locations
}

func (a *LocalLocationFSAdapter) expand(entry string) []string {
	if !strings.ContainsAny(entry, "*?[{") {
		return []string{entry}
	}

	matches, err := doublestar.FilepathGlob(entry)
	if err != nil {
		slog.Warn("invalid classpath pattern", "pattern", entry, "error", err)
		return nil
	}

	return matches
}

func classify(path string, info os.FileInfo, archiveExtensions []string) m.LocationKind {
	if info.IsDir() {
		return m.LocationDirectory
	}

	ext := filepath.Ext(path)
	for _, archiveExt := range archiveExtensions {
		if strings.EqualFold(ext, archiveExt) {
			return m.LocationArchive
		}
	}

	return m.LocationUnknown
}

// Walk iterates over every file and directory under root. A symlinked root is
// followed, and callback paths are reported under root rather than the target.
func (a *LocalLocationFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	rootPath := filepath.Clean(string(root))

	target, err := filepath.EvalSymlinks(rootPath)
	if err != nil || target == rootPath {
		return filepath.Walk(rootPath, filepath.WalkFunc(fn))
	}

	return filepath.Walk(target, func(path string, info os.FileInfo, err error) error {
		rel, relErr := filepath.Rel(target, path)
		if relErr != nil {
			return fn(path, info, err)
		}

		return fn(filepath.Join(rootPath, rel), info, err)
	})
}

// ArchiveEntries lists the entry names of a zip-format archive.
func (a *LocalLocationFSAdapter) ArchiveEntries(path m.Path) ([]string, error) {
	reader, err := zip.OpenReader(string(path))
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}

	defer func() {
		_ = reader.Close()
	}()

	names := make([]string, 0, len(reader.File))
	for _, file := range reader.File {
		names = append(names, file.Name)
	}

	return names, nil
}

// RelPath returns the relative path from base to target.
func (a *LocalLocationFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}
