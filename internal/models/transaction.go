package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction records a completed transfer between two accounts.
// Records are immutable once appended; they are only ever removed when an
// account they reference is deleted.
type Transaction struct {
	ID        int64           `json:"id"` // strictly increasing within the document
	Sender    string          `json:"sender"`
	Receiver  string          `json:"receiver"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}
