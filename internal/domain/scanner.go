package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"ksuggest.dev/pkg/ksuggest/internal/adapter"
	m "ksuggest.dev/pkg/ksuggest/internal/model"
)

const compiledUnitSuffix = ".class"

// DirectoryBase selects what directory-derived names are relative to.
type DirectoryBase string

const (
	// DirectoryBaseParent keeps the scanned directory's own name as the first
	// segment, so a location .../kotlin yields kotlin.* names.
	DirectoryBaseParent DirectoryBase = "parent"
	// DirectoryBaseSelf treats the scanned directory as the classpath root.
	DirectoryBaseSelf DirectoryBase = "self"
)

// ScanOptions configures a single scan. A zero Filter means DefaultNameFilter.
type ScanOptions struct {
	Filter        NameFilter
	DirectoryBase DirectoryBase
	// Dedupe drops names already found in an earlier location or entry.
	Dedupe bool
}

// DefaultScanOptions returns the options used when nothing is configured.
func DefaultScanOptions() ScanOptions {
	return ScanOptions{
		Filter:        DefaultNameFilter(),
		DirectoryBase: DirectoryBaseParent,
	}
}

// Scanner extracts standard-namespace names from classpath locations.
type Scanner interface {
	Scan(ctx context.Context, locations []m.Location, opts ScanOptions) (m.CandidateSet, []m.ScanIssue)
}

type scanner struct {
	adapter.LocationFSAdapter
}

// NewScanner creates a Scanner backed by the provided filesystem adapter.
func NewScanner(fsAdapter adapter.LocationFSAdapter) Scanner {
	return &scanner{LocationFSAdapter: fsAdapter}
}

// scanState accumulates results across locations.
type scanState struct {
	opts       ScanOptions
	candidates m.CandidateSet
	issues     []m.ScanIssue
	seen       map[m.QualifiedName]struct{}
}

func (s *scanState) add(name m.QualifiedName) {
	if !s.opts.Filter.Accept(name) {
		return
	}

	if s.opts.Dedupe {
		if _, ok := s.seen[name]; ok {
			return
		}

		s.seen[name] = struct{}{}
	}

	s.candidates = append(s.candidates, name)
}

func (s *scanState) issue(location m.Path, entry string, err error) {
	slog.Warn("skipping during scan", "location", location, "entry", entry, "error", err)
	s.issues = append(s.issues, m.ScanIssue{Location: location, Entry: entry, Err: err})
}

// Scan walks every location in order. Unreadable locations and malformed
// entries are reported as issues and never stop the scan.
func (sc *scanner) Scan(ctx context.Context, locations []m.Location, opts ScanOptions) (m.CandidateSet, []m.ScanIssue) {
	if opts.Filter.prefix == "" {
		opts.Filter = DefaultNameFilter()
	}

	state := &scanState{opts: opts, seen: make(map[m.QualifiedName]struct{})}

	for _, location := range locations {
		if ctx.Err() != nil {
			slog.Debug("scan cancelled", "remaining", location.Path)
			break
		}

		before := len(state.candidates)

		switch location.Kind {
		case m.LocationDirectory:
			sc.scanDirectory(location.Path, state)
		case m.LocationArchive:
			sc.scanArchive(location.Path, state)
		case m.LocationUnknown:
			continue
		}

		slog.Debug("scanned location", "location", location.Path, "kind", location.Kind, "names", len(state.candidates)-before)
	}

	return state.candidates, state.issues
}

func (sc *scanner) scanDirectory(root m.Path, state *scanState) {
	root = m.Path(filepath.Clean(string(root)))

	base := root
	if state.opts.DirectoryBase != DirectoryBaseSelf {
		base = m.Path(filepath.Dir(string(root)))
	}

	err := sc.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == string(root) {
				return err
			}

			state.issue(root, path, fmt.Errorf("%w: %w", ErrLocationUnreadable, err))

			return nil
		}

		if !info.Mode().IsRegular() || filepath.Ext(path) != compiledUnitSuffix {
			return nil
		}

		rel, relErr := sc.RelPath(base, m.Path(path))
		if relErr != nil {
			state.issue(root, path, fmt.Errorf("%w: %w", ErrMalformedEntry, relErr))
			return nil
		}

		name, ok := qualifiedName(filepath.ToSlash(string(rel)))
		if !ok {
			state.issue(root, path, ErrMalformedEntry)
			return nil
		}

		state.add(name)

		return nil
	})
	if err != nil {
		state.issue(root, "", fmt.Errorf("%w: %w", ErrLocationUnreadable, err))
	}
}

func (sc *scanner) scanArchive(path m.Path, state *scanState) {
	entries, err := sc.ArchiveEntries(path)
	if err != nil {
		state.issue(path, "", fmt.Errorf("%w: %w", ErrLocationUnreadable, err))
		return
	}

	for _, entry := range entries {
		if !strings.HasSuffix(entry, compiledUnitSuffix) {
			continue
		}

		name, ok := qualifiedName(entry)
		if !ok {
			state.issue(path, entry, ErrMalformedEntry)
			continue
		}

		state.add(name)
	}
}

// qualifiedName turns a slash-separated compiled-unit path into a dotted name.
func qualifiedName(slashPath string) (m.QualifiedName, bool) {
	if !utf8.ValidString(slashPath) {
		return "", false
	}

	name := strings.TrimSuffix(strings.ReplaceAll(slashPath, "/", "."), compiledUnitSuffix)
	if name == "" {
		return "", false
	}

	return m.QualifiedName(name), true
}
