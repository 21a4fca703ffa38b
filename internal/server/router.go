package server

import (
	"net/http"

	"github.com/rs/cors"
)

// Router registers every endpoint and wraps the mux with a permissive CORS
// layer so browser clients on other origins can reach the API.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/createUser", s.createUser)
	mux.HandleFunc("POST /api/login", s.login)
	mux.HandleFunc("POST /api/balance", s.balance)
	mux.HandleFunc("POST /api/send", s.send)

	mux.HandleFunc("POST /api/admin/login", s.adminLogin)
	mux.HandleFunc("POST /api/admin/users", s.adminUsers)
	mux.HandleFunc("POST /api/admin/createUser", s.adminCreateUser)
	mux.HandleFunc("POST /api/admin/setBalance", s.adminSetBalance)
	mux.HandleFunc("POST /api/admin/freezeUser", s.adminFreezeUser)
	mux.HandleFunc("POST /api/admin/deleteUser", s.adminDeleteUser)
	mux.HandleFunc("POST /api/admin/transactions", s.adminTransactions)
	mux.HandleFunc("POST /api/admin/broadcast", s.adminBroadcast)

	mux.HandleFunc("GET /api/broadcasts", s.broadcasts)

	// Replication endpoints used by the mirror's sync loop.
	mux.HandleFunc("POST /backup", s.backup)
	mux.HandleFunc("GET /restore", s.restore)

	return cors.AllowAll().Handler(mux)
}
