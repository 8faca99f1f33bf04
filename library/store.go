package library

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

// DefaultPath is where the catalog lives when no path is configured.
const DefaultPath = "data.json"

// Options configures a Store. Only the path is tunable; the document shape
// fixes everything else about the format.
type Options struct {
	Path string
}

// Store reads and writes the complete catalog document at a single file
// path. Every operation works on the full document: the data volume is
// small and there is exactly one writer, so no locking or incremental
// update is needed. A second process writing the same file races with this
// one (last write wins) — a documented limitation, not a supported mode.
type Store struct {
	path string
}

// NewStore returns a store over the file named in opts, falling back to
// DefaultPath when no path is given.
func NewStore(opts Options) *Store {
	path := opts.Path
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

// Path returns the backing file location.
func (s *Store) Path() string { return s.path }

// Ensure guarantees the backing file exists, creating it with empty
// collections (and its parent directory, so first-run succeeds) when
// absent. An existing file is never touched.
func (s *Store) Ensure() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", s.path, err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	return s.Write(&Document{Books: []Book{}, Users: []User{}})
}

// Read loads the full document, creating the file first if it is absent.
// A file that exists but does not parse fails with ErrCorruptDocument.
func (s *Store) Read() (*Document, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptDocument, s.path, err)
	}
	// Tolerate hand-edited files with a collection missing.
	if doc.Books == nil {
		doc.Books = []Book{}
	}
	if doc.Users == nil {
		doc.Users = []User{}
	}
	return &doc, nil
}

// Write serializes the document pretty-printed for human inspection and
// replaces the previous file content entirely.
func (s *Store) Write(doc *Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
