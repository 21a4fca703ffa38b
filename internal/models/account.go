package models

import "github.com/shopspring/decimal"

func init() {
	// Balances ride over the wire as plain JSON numbers, same as the stored document.
	decimal.MarshalJSONWithoutQuotes = true
}

// Account is a single ledger account. PasswordHash is a bcrypt hash and is
// persisted with the document but never returned to clients.
type Account struct {
	Username     string          `json:"username"`
	PasswordHash string          `json:"password_hash"`
	Balance      decimal.Decimal `json:"balance"`
	IsAdmin      bool            `json:"is_admin"`
	IsFrozen     bool            `json:"is_frozen"`
}

// SanitizedAccount is the client-facing view of an account.
type SanitizedAccount struct {
	Username string          `json:"username"`
	Balance  decimal.Decimal `json:"balance"`
	IsAdmin  bool            `json:"is_admin"`
	IsFrozen bool            `json:"is_frozen"`
}

// Sanitized strips the credential hash for client responses.
func (a Account) Sanitized() SanitizedAccount {
	return SanitizedAccount{
		Username: a.Username,
		Balance:  a.Balance,
		IsAdmin:  a.IsAdmin,
		IsFrozen: a.IsFrozen,
	}
}
