// Package jsonfile persists the ledger document as a single JSON file.
//
// Saves are atomic: the document is written to a temporary file in the same
// directory and renamed over the target, so readers observe either the prior
// document or the new one, never a partial write.
package jsonfile

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/mybank/ledgerd/internal/interfaces"
	"github.com/mybank/ledgerd/internal/models"
)

// Store is a file-backed DocumentStore.
type Store struct {
	path string
}

// NewStore returns a store persisting to the given path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the document from disk. On first use (no file yet) an empty
// document is persisted and returned. A file that exists but does not decode
// is an error: refusing to start beats silently truncating the ledger.
func (s *Store) Load() (models.LedgerDocument, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		doc := models.EmptyDocument()
		if err := s.Save(doc); err != nil {
			return models.LedgerDocument{}, err
		}
		return doc, nil
	}
	if err != nil {
		return models.LedgerDocument{}, errors.Wrapf(err, "open ledger document %s", s.path)
	}
	defer f.Close()

	var doc models.LedgerDocument
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return models.LedgerDocument{}, errors.Wrapf(err, "decode ledger document %s", s.path)
	}
	return doc, nil
}

// Save overwrites the document on disk via temp file + rename.
func (s *Store) Save(doc models.LedgerDocument) error {
	return writeFileAtomic(s.path, doc)
}

// writeFileAtomic encodes v as indented JSON to path+".tmp" and renames it
// over path.
func writeFileAtomic(path string, v any) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return errors.Wrapf(err, "create %s", tmp)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Wrapf(err, "encode %s", tmp)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Wrapf(err, "close %s", tmp)
	}

	return errors.Wrapf(os.Rename(tmp, path), "replace %s", path)
}

var _ interfaces.DocumentStore = (*Store)(nil)
