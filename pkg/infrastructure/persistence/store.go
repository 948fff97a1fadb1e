package persistence

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Store reads and writes the application document at a fixed path
type Store struct {
	path string
}

// NewStore creates a Store for the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the document location
func (s *Store) Path() string {
	return s.path
}

// Load reads and decodes the document. A missing file yields an empty
// document, not an error: first run starts from nothing.
func (s *Store) Load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		doc := &Document{}
		doc.normalize()
		return doc, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading document %s", s.path)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "decoding document %s", s.path)
	}
	doc.normalize()
	return &doc, nil
}

// Save encodes and writes the document atomically: write to a temp file in
// the same directory, then rename over the target. A crash mid-save leaves
// the previous document intact.
func (s *Store) Save(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding document")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".planner-*.json")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "writing %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", tmpName)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return errors.Wrapf(err, "replacing %s", s.path)
	}

	log.Debug().Str("path", s.path).Int("bytes", len(data)).Msg("document saved")
	return nil
}
