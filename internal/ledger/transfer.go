package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mybank/ledgerd/internal/models"
	"github.com/mybank/ledgerd/internal/models/events"
)

// MaxTransfer is the per-transaction cap. Transfers of exactly this amount
// are allowed; only amounts above it are rejected.
var MaxTransfer = decimal.NewFromInt(20)

// TopicTransferCompleted is the event stream for persisted transfers.
const TopicTransferCompleted = "transfer_completed"

// Transfer moves amount from one account to another. The debit, credit and
// audit record are applied in memory and persisted with a single save, so a
// transfer either happens entirely or not at all. Validation is ordered and
// short-circuits on the first failure:
//
//	missing fields        -> ErrInvalidRequest
//	amount <= 0           -> ErrInvalidRequest
//	from == to            -> ErrInvalidRequest
//	amount > MaxTransfer  -> ErrInvalidRequest
//	unknown account       -> ErrNotFound
//	frozen account        -> ErrForbidden
//	balance < amount      -> ErrInsufficientFunds
func (s *Service) Transfer(from, to string, amount decimal.Decimal) error {
	if from == "" || to == "" || amount.IsZero() {
		return fmt.Errorf("%w: from, to and amount required", ErrInvalidRequest)
	}
	if amount.Sign() <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidRequest)
	}
	if from == to {
		return fmt.Errorf("%w: cannot transfer to the same account", ErrInvalidRequest)
	}
	if amount.GreaterThan(MaxTransfer) {
		return fmt.Errorf("%w: max transaction is %s", ErrInvalidRequest, MaxTransfer)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load()
	if err != nil {
		return err
	}

	sender := findAccount(&doc, from)
	receiver := findAccount(&doc, to)
	if sender == nil || receiver == nil {
		return fmt.Errorf("%w: sender or receiver not found", ErrNotFound)
	}
	if sender.IsFrozen {
		return fmt.Errorf("%w: sender account frozen", ErrForbidden)
	}
	if receiver.IsFrozen {
		return fmt.Errorf("%w: receiver account frozen", ErrForbidden)
	}
	if sender.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}

	now := time.Now().UTC()
	sender.Balance = sender.Balance.Sub(amount)
	receiver.Balance = receiver.Balance.Add(amount)
	doc.Transactions = append(doc.Transactions, models.Transaction{
		ID:        nextTransactionID(doc.Transactions),
		Sender:    from,
		Receiver:  to,
		Amount:    amount,
		CreatedAt: now,
	})

	if err := s.store.Save(doc); err != nil {
		return err
	}

	s.publish(TopicTransferCompleted, events.TransferCompleted{
		EventID:    newEventID(),
		Sender:     from,
		Receiver:   to,
		Amount:     amount,
		OccurredAt: now,
	})
	return nil
}

// nextTransactionID returns max existing id + 1, or 1 for an empty log.
// Ids stay unique even after deletions purge earlier records.
func nextTransactionID(txs []models.Transaction) int64 {
	var max int64
	for _, tx := range txs {
		if tx.ID > max {
			max = tx.ID
		}
	}
	return max + 1
}
