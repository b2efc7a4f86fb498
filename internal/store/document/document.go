// Package document implements the store contracts over a single JSON file
// holding all four record collections. Every operation is a full
// load-mutate-save cycle over that one document; a store-level mutex
// serializes the cycles so concurrent writers cannot lose each other's
// updates, and saves go through a temp file plus rename so a crash mid-write
// cannot truncate the data file.
package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/lalith-99/taskflow/internal/models"
	"github.com/lalith-99/taskflow/internal/store"
)

// Store owns the data file. The entity stores (UserStore, TeamStore, ...)
// share one Store so their mutations serialize against each other, not just
// within one collection.
type Store struct {
	path   string
	mu     sync.Mutex
	logger *zap.Logger
}

func Open(path string, logger *zap.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// load reads and decodes the whole document. An absent file is not an
// error: it decodes as a document with four empty collections, which is the
// state of a fresh deployment. Callers must hold mu.
func (s *Store) load() (*models.Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %w", s.path, store.ErrStorage, err)
	}

	doc := models.NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w: %w", s.path, store.ErrStorage, err)
	}
	return doc, nil
}

// save writes the full document, pretty-printed. Write-to-temp plus rename
// keeps the previous document intact if the process dies mid-write. Callers
// must hold mu.
func (s *Store) save(doc *models.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w: %w", store.ErrStorage, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w: %w", tmp, store.ErrStorage, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace %s: %w: %w", s.path, store.ErrStorage, err)
	}

	s.logger.Debug("document saved",
		zap.String("path", s.path),
		zap.Int("bytes", len(data)),
	)
	return nil
}

// view runs fn against a freshly loaded document, read-only.
func (s *Store) view(fn func(doc *models.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	return fn(doc)
}

// update runs fn against a freshly loaded document and persists the result
// when fn reports it mutated something. If fn returns an error nothing is
// saved, so a failed operation leaves the document exactly as loaded.
func (s *Store) update(fn func(doc *models.Document) (mutated bool, err error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	mutated, err := fn(doc)
	if err != nil {
		return err
	}
	if !mutated {
		return nil
	}
	return s.save(doc)
}
