// Package replication keeps the primary's account snapshot eventually
// consistent with a mirror's local snapshot.
//
// The protocol is deliberately simple: one pull from the primary when the
// mirror starts, then a one-directional push of the mirror's current local
// snapshot on a fixed interval. Every failure is swallowed and retried on the
// next tick; convergence within one interval of the mirror being reachable is
// the whole contract.
package replication

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/mybank/ledgerd/internal/interfaces"
	"github.com/mybank/ledgerd/internal/models"
)

// SyncLoop runs in the mirror process and converges the primary toward the
// mirror's locally cached snapshot.
type SyncLoop struct {
	local      interfaces.SnapshotStore
	primaryURL string
	interval   time.Duration
	client     *http.Client
}

// NewSyncLoop builds a loop pushing to primaryURL every interval. The HTTP
// timeout bounds each outbound call so a hung primary cannot stall the next
// tick; a missed tick is harmless.
func NewSyncLoop(local interfaces.SnapshotStore, primaryURL string, interval, timeout time.Duration) *SyncLoop {
	return &SyncLoop{
		local:      local,
		primaryURL: primaryURL,
		interval:   interval,
		client:     &http.Client{Timeout: timeout},
	}
}

// Run pulls once, then pushes on every tick until ctx is done.
func (s *SyncLoop) Run(ctx context.Context) {
	s.PullOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Push(ctx)
		}
	}
}

// PullOnce fetches the primary's snapshot and, if it is non-empty, replaces
// the local one. On any failure (network, malformed, empty) the local
// snapshot is kept as is: startup never blocks or fails because the primary
// is unreachable.
func (s *SyncLoop) PullOnce(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.primaryURL+"/restore", nil)
	if err != nil {
		return
	}
	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("replication: pull skipped: %v", err)
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("replication: pull skipped: status %d", resp.StatusCode)
		return
	}

	var accounts []models.Account
	if err := json.NewDecoder(resp.Body).Decode(&accounts); err != nil {
		log.Printf("replication: pull skipped: %v", err)
		return
	}
	if len(accounts) == 0 {
		return
	}
	if err := s.local.Save(accounts); err != nil {
		log.Printf("replication: pull not applied: %v", err)
	}
}

// Push reads the current local snapshot and posts it to the primary's ingest
// endpoint. The local file is re-read on every tick because another process
// may rewrite it between ticks. All failures are swallowed; the next tick
// retries with whatever the local snapshot holds then.
func (s *SyncLoop) Push(ctx context.Context) {
	accounts, err := s.local.Load()
	if err != nil {
		log.Printf("replication: push skipped: %v", err)
		return
	}
	body, err := json.Marshal(accounts)
	if err != nil {
		log.Printf("replication: push skipped: %v", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.primaryURL+"/backup", bytes.NewReader(body))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("replication: push failed: %v", err)
		return
	}
	resp.Body.Close()
}
