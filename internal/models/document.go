package models

// LedgerDocument is the full durable state of the ledger and the single unit
// of persistence: stores load and save it whole, never in parts.
//
// The "users" key matches the historical document layout on disk.
type LedgerDocument struct {
	Accounts     []Account     `json:"users"`
	Transactions []Transaction `json:"transactions"`
	Broadcasts   []Broadcast   `json:"broadcasts"`
}

// EmptyDocument returns a document with all collections initialized, so a
// fresh ledger serializes as empty arrays rather than nulls.
func EmptyDocument() LedgerDocument {
	return LedgerDocument{
		Accounts:     []Account{},
		Transactions: []Transaction{},
		Broadcasts:   []Broadcast{},
	}
}

// Clone returns a deep copy. Accounts, transactions and broadcasts are plain
// value types, so copying the slices is sufficient.
func (d LedgerDocument) Clone() LedgerDocument {
	out := LedgerDocument{
		Accounts:     make([]Account, len(d.Accounts)),
		Transactions: make([]Transaction, len(d.Transactions)),
		Broadcasts:   make([]Broadcast, len(d.Broadcasts)),
	}
	copy(out.Accounts, d.Accounts)
	copy(out.Transactions, d.Transactions)
	copy(out.Broadcasts, d.Broadcasts)
	return out
}
