package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mybank/ledgerd/internal/models"
)

func TestLoadCreatesEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	store := NewStore(path)

	doc, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, doc.Accounts)
	assert.Empty(t, doc.Transactions)
	assert.Empty(t, doc.Broadcasts)

	// The empty document was persisted, not just returned.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"users": []`)
}

func TestDocumentRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	store := NewStore(path)

	doc := models.EmptyDocument()
	doc.Accounts = append(doc.Accounts, models.Account{
		Username:     "alice",
		PasswordHash: "$2a$10$x",
		Balance:      decimal.RequireFromString("12.5"),
		IsFrozen:     true,
	})
	doc.Broadcasts = append(doc.Broadcasts, models.Broadcast{Message: "hi"})
	require.NoError(t, store.Save(doc))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Accounts, 1)
	assert.Equal(t, "alice", loaded.Accounts[0].Username)
	assert.Equal(t, "12.5", loaded.Accounts[0].Balance.String())
	assert.True(t, loaded.Accounts[0].IsFrozen)
	require.Len(t, loaded.Broadcasts, 1)

	// No temp file left behind after a save.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestLoadMalformedDocumentFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"users": [tru`), 0o644))

	_, err := NewStore(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestSnapshotStoreMissingFileIsEmpty(t *testing.T) {
	store := NewSnapshotStore(filepath.Join(t.TempDir(), "users.json"))

	accounts, err := store.Load()
	require.NoError(t, err)
	assert.NotNil(t, accounts)
	assert.Empty(t, accounts)
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	store := NewSnapshotStore(path)

	in := []models.Account{
		{Username: "alice", Balance: decimal.NewFromInt(3)},
		{Username: "bob", Balance: decimal.NewFromInt(7), IsAdmin: true},
	}
	require.NoError(t, store.Save(in))

	out, err := store.Load()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "alice", out[0].Username)
	assert.Equal(t, "7", out[1].Balance.String())
	assert.True(t, out[1].IsAdmin)
}
