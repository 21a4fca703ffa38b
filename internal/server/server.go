// Package server exposes the ledger over HTTP with JSON request and response
// bodies. Handlers stay thin: decode, call the ledger service, encode.
package server

import (
	"sync"

	"github.com/mybank/ledgerd/internal/interfaces"
	"github.com/mybank/ledgerd/internal/ledger"
)

// Server holds the ledger service and the replication snapshot store.
//
// The snapshot store has its own mutex: a replication push arriving while an
// admin operation runs must not corrupt either document, but the two stores
// are independent, so they do not share the ledger's lock.
type Server struct {
	ledger    *ledger.Service
	snapMu    sync.Mutex
	snapshots interfaces.SnapshotStore
}

// New wires a server over the given service and snapshot store.
func New(svc *ledger.Service, snapshots interfaces.SnapshotStore) *Server {
	return &Server{ledger: svc, snapshots: snapshots}
}
