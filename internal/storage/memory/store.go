// Package memory holds an in-memory DocumentStore, used by tests and by any
// deployment that can afford to lose state on restart.
package memory

import (
	"sync"

	"github.com/mybank/ledgerd/internal/interfaces"
	"github.com/mybank/ledgerd/internal/models"
)

// Store is an in-memory implementation of interfaces.DocumentStore.
type Store struct {
	mu  sync.Mutex
	doc models.LedgerDocument
}

// NewStore returns a store holding an empty document.
func NewStore() *Store {
	return &Store{doc: models.EmptyDocument()}
}

// Load returns a deep copy of the current document so callers can mutate it
// freely before saving.
func (m *Store) Load() (models.LedgerDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.doc.Clone(), nil
}

// Save replaces the stored document.
func (m *Store) Save(doc models.LedgerDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.doc = doc.Clone()
	return nil
}

var _ interfaces.DocumentStore = (*Store)(nil)
