package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/mybank/ledgerd/internal/ledger"
)

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a domain error kind to an HTTP status and emits
// {"error": "..."}. Unrecognized errors are storage or internal failures:
// they are logged and reported as 500 without leaking detail.
func writeError(w http.ResponseWriter, err error) {
	var code int
	switch {
	case errors.Is(err, ledger.ErrInvalidRequest), errors.Is(err, ledger.ErrInsufficientFunds):
		code = http.StatusBadRequest
	case errors.Is(err, ledger.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, ledger.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, ledger.ErrConflict):
		code = http.StatusConflict
	default:
		log.Printf("internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	writeJSON(w, code, map[string]string{"error": err.Error()})
}
