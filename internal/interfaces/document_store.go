package interfaces

import "github.com/mybank/ledgerd/internal/models"

// DocumentStore persists the ledger document as one atomic unit.
// Load returns the current durable state, creating and persisting an empty
// document if none exists yet. Save performs a full overwrite; a save either
// fully replaces the prior document or leaves it intact.
type DocumentStore interface {
	Load() (models.LedgerDocument, error)
	Save(doc models.LedgerDocument) error
}
