package replication

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mybank/ledgerd/internal/models"
	"github.com/mybank/ledgerd/internal/storage/jsonfile"
)

func newLocal(t *testing.T) *jsonfile.SnapshotStore {
	t.Helper()
	return jsonfile.NewSnapshotStore(filepath.Join(t.TempDir(), "users.json"))
}

func TestPullFailureKeepsLocalSnapshot(t *testing.T) {
	local := newLocal(t)

	// Point at a server that is already gone: the pull must be a silent no-op.
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	loop := NewSyncLoop(local, srv.URL, time.Minute, time.Second)
	loop.PullOnce(context.Background())

	accounts, err := local.Load()
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestPullReplacesLocalSnapshot(t *testing.T) {
	local := newLocal(t)
	require.NoError(t, local.Save([]models.Account{{Username: "stale"}}))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/restore", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]models.Account{
			{Username: "alice", Balance: decimal.NewFromInt(5)},
			{Username: "bob", Balance: decimal.NewFromInt(7)},
		})
	}))
	defer srv.Close()

	loop := NewSyncLoop(local, srv.URL, time.Minute, time.Second)
	loop.PullOnce(context.Background())

	accounts, err := local.Load()
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "alice", accounts[0].Username)
}

func TestPullEmptySnapshotDoesNotClobberLocal(t *testing.T) {
	local := newLocal(t)
	require.NoError(t, local.Save([]models.Account{{Username: "keeper"}}))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.Account{})
	}))
	defer srv.Close()

	loop := NewSyncLoop(local, srv.URL, time.Minute, time.Second)
	loop.PullOnce(context.Background())

	accounts, err := local.Load()
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "keeper", accounts[0].Username)
}

func TestPushSendsCurrentLocalSnapshot(t *testing.T) {
	local := newLocal(t)
	require.NoError(t, local.Save([]models.Account{
		{Username: "alice", Balance: decimal.NewFromInt(3)},
	}))

	var got []models.Account
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/backup", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
	}))
	defer srv.Close()

	loop := NewSyncLoop(local, srv.URL, time.Minute, time.Second)
	loop.Push(context.Background())

	require.Len(t, got, 1)
	assert.Equal(t, "alice", got[0].Username)
	assert.Equal(t, "3", got[0].Balance.String())
}

func TestPushFailureIsSwallowed(t *testing.T) {
	local := newLocal(t)
	require.NoError(t, local.Save([]models.Account{{Username: "alice"}}))

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	// Must not panic or error; the next tick simply retries.
	loop := NewSyncLoop(local, srv.URL, time.Minute, time.Second)
	loop.Push(context.Background())
}

func TestRunStopsOnContextCancel(t *testing.T) {
	local := newLocal(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.Account{})
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	loop := NewSyncLoop(local, srv.URL, 10*time.Millisecond, time.Second)
	go func() {
		loop.Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sync loop did not stop after cancel")
	}
}
