// Package postgres persists the ledger document as a single jsonb row, so the
// load/save contract stays identical to the file-backed store: one document,
// replaced whole on every save.
package postgres

import (
	"database/sql"
	"encoding/json"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/mybank/ledgerd/internal/interfaces"
	"github.com/mybank/ledgerd/internal/models"
)

// Store is a postgres-backed DocumentStore.
type Store struct {
	db *sql.DB
}

// NewStore returns a store over an open database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open connects to postgres with the given DSN and prepares the schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "ping postgres")
	}
	s := NewStore(db)
	if err := s.EnsureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// EnsureSchema creates the single-row document table if it is missing.
func (p *Store) EnsureSchema() error {
	const query = `CREATE TABLE IF NOT EXISTS ledger_document (
		id int PRIMARY KEY CHECK (id = 1),
		doc jsonb NOT NULL,
		updated_at timestamptz NOT NULL DEFAULT now()
	)`
	_, err := p.db.Exec(query)
	return errors.Wrap(err, "ensure ledger_document table")
}

// Load reads the document row, seeding an empty document on first use.
func (p *Store) Load() (models.LedgerDocument, error) {
	const query = `SELECT doc FROM ledger_document WHERE id = 1`

	var raw []byte
	err := p.db.QueryRow(query).Scan(&raw)
	if err == sql.ErrNoRows {
		doc := models.EmptyDocument()
		if err := p.Save(doc); err != nil {
			return models.LedgerDocument{}, err
		}
		return doc, nil
	}
	if err != nil {
		return models.LedgerDocument{}, errors.Wrap(err, "load ledger document")
	}

	var doc models.LedgerDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.LedgerDocument{}, errors.Wrap(err, "decode ledger document")
	}
	return doc, nil
}

// Save upserts the document row, replacing the prior content entirely.
func (p *Store) Save(doc models.LedgerDocument) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "encode ledger document")
	}

	const query = `INSERT INTO ledger_document (id, doc, updated_at)
	VALUES (1, $1, now())
	ON CONFLICT (id) DO UPDATE SET doc = $1, updated_at = now()`

	_, err = p.db.Exec(query, raw)
	return errors.Wrap(err, "save ledger document")
}

// Close releases the database handle.
func (p *Store) Close() error {
	return p.db.Close()
}

var _ interfaces.DocumentStore = (*Store)(nil)
