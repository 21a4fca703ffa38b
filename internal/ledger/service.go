// Package ledger implements the ledger's business rules: self-service
// registration and login, transfers under a per-transaction cap, and the
// administrative override operations.
//
// Every mutating operation runs one load → validate → mutate → save cycle
// against the document store under a single service-wide mutex. The coarse
// lock is the correctness mechanism: two concurrent transfers can never read
// the same stale balance and both commit. Validation failures never reach the
// save, so a failed operation leaves no partial effects. Reads take the same
// lock so they observe either the pre- or post-state of a mutation, never an
// interleaving.
package ledger

import (
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/mybank/ledgerd/internal/interfaces"
	"github.com/mybank/ledgerd/internal/models"
)

// Credentials is a username/password pair supplied by a caller.
type Credentials struct {
	Username string
	Password string
}

// Service owns the ledger document and applies all mutations to it.
type Service struct {
	mu     sync.Mutex
	store  interfaces.DocumentStore
	events interfaces.EventPublisher
	admin  Credentials // configured admin gate, compared by plain equality
}

// New creates a Service over the given store and event publisher. The admin
// credentials gate every administrative operation.
func New(store interfaces.DocumentStore, publisher interfaces.EventPublisher, admin Credentials) *Service {
	return &Service{store: store, events: publisher, admin: admin}
}

// EnsureAdmin seeds the configured admin account if it does not exist yet.
// It runs on every start and is a no-op when the account is already present.
func (s *Service) EnsureAdmin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load()
	if err != nil {
		return err
	}
	if findAccount(&doc, s.admin.Username) != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	doc.Accounts = append(doc.Accounts, models.Account{
		Username:     s.admin.Username,
		PasswordHash: string(hash),
		Balance:      decimal.Zero,
		IsAdmin:      true,
	})
	if err := s.store.Save(doc); err != nil {
		return err
	}
	log.Println("seeded admin user:", s.admin.Username)
	return nil
}

// Register creates a zero-balance account with a bcrypt-hashed credential.
func (s *Service) Register(username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password required", ErrInvalidRequest)
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
		Balance:      decimal.Zero,
	})
	return s.store.Save(doc)
}

// Login verifies a credential pair and returns the sanitized account.
// Unknown users and wrong passwords produce the same invalid-login error so
// the response does not reveal which half was wrong. Frozen accounts are
// rejected before the password is checked.
func (s *Service) Login(username, password string) (models.SanitizedAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load()
	if err != nil {
		return models.SanitizedAccount{}, err
	}
	acct := findAccount(&doc, username)
	if acct == nil {
		return models.SanitizedAccount{}, fmt.Errorf("%w: invalid login", ErrInvalidRequest)
	}
	if acct.IsFrozen {
		return models.SanitizedAccount{}, fmt.Errorf("%w: account frozen", ErrForbidden)
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return models.SanitizedAccount{}, fmt.Errorf("%w: invalid login", ErrInvalidRequest)
	}
	return acct.Sanitized(), nil
}

// Balance returns the current balance for an account.
func (s *Service) Balance(username string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load()
	if err != nil {
		return decimal.Zero, err
	}
	acct := findAccount(&doc, username)
	if acct == nil {
		return decimal.Zero, ErrNotFound
	}
	if acct.IsFrozen {
		return decimal.Zero, fmt.Errorf("%w: account frozen", ErrForbidden)
	}
	return acct.Balance, nil
}

// Broadcasts returns all broadcasts, newest first.
func (s *Service) Broadcasts() ([]models.Broadcast, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return reversed(doc.Broadcasts), nil
}

// findAccount returns a pointer into the document's account slice, or nil.
// Lookup is case-sensitive.
func findAccount(doc *models.LedgerDocument, username string) *models.Account {
	for i := range doc.Accounts {
		if doc.Accounts[i].Username == username {
			return &doc.Accounts[i]
		}
	}
	return nil
}

// reversed returns a copy of s in reverse (newest-first) order.
func reversed[T any](s []T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// publish emits a domain event, logging failures. Event delivery is best
// effort and never fails the ledger operation that produced it.
func (s *Service) publish(topic string, event any) {
	if err := s.events.Publish(topic, event); err != nil {
		log.Printf("publish %s event: %v", topic, err)
	}
}

// newEventID returns a unique id for an outgoing event.
func newEventID() string {
	return uuid.New().String()
}
