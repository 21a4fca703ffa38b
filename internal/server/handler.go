package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/mybank/ledgerd/internal/ledger"
	"github.com/mybank/ledgerd/internal/models"
)

// adminAuth is embedded in every administrative request body.
type adminAuth struct {
	AdminUsername string `json:"adminUsername"`
	AdminPassword string `json:"adminPassword"`
}

func (a adminAuth) credentials() ledger.Credentials {
	return ledger.Credentials{Username: a.AdminUsername, Password: a.AdminPassword}
}

// decode parses the JSON request body into v. A body that does not parse is
// the caller's fault, reported as an invalid request.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid request body", ledger.ErrInvalidRequest)
	}
	return nil
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := s.ledger.Register(req.Username, req.Password); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	user, err := s.ledger.Login(req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "user": user})
}

func (s *Server) balance(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	balance, err := s.ledger.Balance(req.Username)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]decimal.Decimal{"balance": balance})
}

func (s *Server) send(w http.ResponseWriter, r *http.Request) {
	var req struct {
		From   string          `json:"from"`
		To     string          `json:"to"`
		Amount decimal.Decimal `json:"amount"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := s.ledger.Transfer(req.From, req.To, req.Amount); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) adminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminAuth
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := s.ledger.AuthorizeAdmin(req.credentials()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) adminUsers(w http.ResponseWriter, r *http.Request) {
	var req adminAuth
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	accounts, err := s.ledger.AdminListAccounts(req.credentials())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}

func (s *Server) adminCreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		adminAuth
		Username string          `json:"username"`
		Password string          `json:"password"`
		Balance  decimal.Decimal `json:"balance"`
		IsAdmin  bool            `json:"is_admin"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := s.ledger.AdminCreateAccount(req.credentials(), req.Username, req.Password, req.Balance, req.IsAdmin); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) adminSetBalance(w http.ResponseWriter, r *http.Request) {
	var req struct {
		adminAuth
		Username string          `json:"username"`
		Balance  decimal.Decimal `json:"balance"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := s.ledger.AdminSetBalance(req.credentials(), req.Username, req.Balance); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) adminFreezeUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		adminAuth
		Username string `json:"username"`
		Freeze   bool   `json:"freeze"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := s.ledger.AdminSetFrozen(req.credentials(), req.Username, req.Freeze); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) adminDeleteUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		adminAuth
		Username string `json:"username"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := s.ledger.AdminDeleteAccount(req.credentials(), req.Username); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) adminTransactions(w http.ResponseWriter, r *http.Request) {
	var req adminAuth
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	txs, err := s.ledger.AdminListTransactions(req.credentials())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txs)
}

func (s *Server) adminBroadcast(w http.ResponseWriter, r *http.Request) {
	var req struct {
		adminAuth
		Message string `json:"message"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := s.ledger.AdminBroadcast(req.credentials(), req.Message); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) broadcasts(w http.ResponseWriter, r *http.Request) {
	list, err := s.ledger.Broadcasts()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// backup is the replication ingest endpoint: it overwrites the snapshot
// document with whatever account array the mirror pushed.
func (s *Server) backup(w http.ResponseWriter, r *http.Request) {
	var accounts []models.Account
	if err := decode(r, &accounts); err != nil {
		writeError(w, err)
		return
	}

	s.snapMu.Lock()
	err := s.snapshots.Save(accounts)
	s.snapMu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// restore serves the current snapshot; an absent snapshot is an empty array.
func (s *Server) restore(w http.ResponseWriter, r *http.Request) {
	s.snapMu.Lock()
	accounts, err := s.snapshots.Load()
	s.snapMu.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}
