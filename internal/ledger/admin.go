package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/mybank/ledgerd/internal/models"
	"github.com/mybank/ledgerd/internal/models/events"
)

// TopicBroadcastPosted is the event stream for administrative broadcasts.
const TopicBroadcastPosted = "broadcast_posted"

// AuthorizeAdmin checks the supplied credentials against the configured admin
// pair by plain equality. Every administrative operation calls this before
// any other validation or persistence.
func (s *Service) AuthorizeAdmin(auth Credentials) error {
	if auth.Username != s.admin.Username || auth.Password != s.admin.Password {
		return fmt.Errorf("%w: invalid admin credentials", ErrForbidden)
	}
	return nil
}

// AdminListAccounts returns the sanitized view of every account.
func (s *Service) AdminListAccounts(auth Credentials) ([]models.SanitizedAccount, error) {
	if err := s.AuthorizeAdmin(auth); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	out := make([]models.SanitizedAccount, 0, len(doc.Accounts))
	for _, a := range doc.Accounts {
		out = append(out, a.Sanitized())
	}
	return out, nil
}

// AdminCreateAccount creates an account with an explicit starting balance and
// admin flag.
func (s *Service) AdminCreateAccount(auth Credentials, username, password string, balance decimal.Decimal, isAdmin bool) error {
	if err := s.AuthorizeAdmin(auth); err != nil {
		return err
	}
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password required", ErrInvalidRequest)
	}
	if balance.Sign() < 0 {
		return fmt.Errorf("%w: balance cannot be negative", ErrInvalidRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load()
	if err != nil {
		return err
	}
	if findAccount(&doc, username) != nil {
		return ErrConflict
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	doc.Accounts = append(doc.Accounts, models.Account{
		Username:     username,
		PasswordHash: string(hash),
		Balance:      balance,
		IsAdmin:      isAdmin,
	})
	return s.store.Save(doc)
}

// AdminSetBalance overwrites an account's balance. This is an out-of-band
// correction: no transaction record is appended and no event is published.
func (s *Service) AdminSetBalance(auth Credentials, username string, balance decimal.Decimal) error {
	if err := s.AuthorizeAdmin(auth); err != nil {
		return err
	}
	if balance.Sign() < 0 {
		return fmt.Errorf("%w: balance cannot be negative", ErrInvalidRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load()
	if err != nil {
		return err
	}
	acct := findAccount(&doc, username)
	if acct == nil {
		return ErrNotFound
	}
	acct.Balance = balance
	return s.store.Save(doc)
}

// AdminSetFrozen freezes or unfreezes an account.
func (s *Service) AdminSetFrozen(auth Credentials, username string, frozen bool) error {
	if err := s.AuthorizeAdmin(auth); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load()
	if err != nil {
		return err
	}
	acct := findAccount(&doc, username)
	if acct == nil {
		return ErrNotFound
	}
	acct.IsFrozen = frozen
	return s.store.Save(doc)
}

// AdminDeleteAccount removes an account and purges every transaction record
// where it appears as sender or receiver. Records between other accounts are
// untouched.
func (s *Service) AdminDeleteAccount(auth Credentials, username string) error {
	if err := s.AuthorizeAdmin(auth); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load()
	if err != nil {
		return err
	}
	idx := -1
	for i := range doc.Accounts {
		if doc.Accounts[i].Username == username {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound
	}
	doc.Accounts = append(doc.Accounts[:idx], doc.Accounts[idx+1:]...)

	kept := doc.Transactions[:0]
	for _, tx := range doc.Transactions {
		if tx.Sender != username && tx.Receiver != username {
			kept = append(kept, tx)
		}
	}
	doc.Transactions = kept
	return s.store.Save(doc)
}

// AdminListTransactions returns the full transaction log, newest first.
func (s *Service) AdminListTransactions(auth Credentials) ([]models.Transaction, error) {
	if err := s.AuthorizeAdmin(auth); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return reversed(doc.Transactions), nil
}

// AdminBroadcast appends a system-wide message.
func (s *Service) AdminBroadcast(auth Credentials, message string) error {
	if err := s.AuthorizeAdmin(auth); err != nil {
		return err
	}
	if message == "" {
		return fmt.Errorf("%w: message required", ErrInvalidRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load()
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	doc.Broadcasts = append(doc.Broadcasts, models.Broadcast{Message: message, CreatedAt: now})
	if err := s.store.Save(doc); err != nil {
		return err
	}

	s.publish(TopicBroadcastPosted, events.BroadcastPosted{
		EventID:    newEventID(),
		Message:    message,
		OccurredAt: now,
	})
	return nil
}
