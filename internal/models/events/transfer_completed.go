package events

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferCompleted is published after a transfer has been persisted.
type TransferCompleted struct {
	EventID    string          `json:"event_id"`
	Sender     string          `json:"sender"`
	Receiver   string          `json:"receiver"`
	Amount     decimal.Decimal `json:"amount"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// BroadcastPosted is published after an administrative broadcast is stored.
type BroadcastPosted struct {
	EventID    string    `json:"event_id"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}
