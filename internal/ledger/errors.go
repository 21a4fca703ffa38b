package ledger

import "errors"

// Domain error kinds. Handlers map these to HTTP statuses with errors.Is;
// detail messages wrap a kind via fmt.Errorf("%w: ...").
var (
	// ErrInvalidRequest covers malformed, missing or out-of-range input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrConflict means the username is already registered.
	ErrConflict = errors.New("user already exists")

	// ErrNotFound means a referenced account does not exist.
	ErrNotFound = errors.New("user not found")

	// ErrForbidden covers credential failures and frozen-account blocks.
	ErrForbidden = errors.New("forbidden")

	// ErrInsufficientFunds is a business-rule failure distinct from
	// ErrInvalidRequest: the request was well formed, the sender is broke.
	ErrInsufficientFunds = errors.New("insufficient funds")
)
