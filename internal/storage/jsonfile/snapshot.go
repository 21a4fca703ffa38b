package jsonfile

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/mybank/ledgerd/internal/interfaces"
	"github.com/mybank/ledgerd/internal/models"
)

// SnapshotStore is a file-backed store for the raw account snapshot array
// exchanged by the replication endpoints.
type SnapshotStore struct {
	path string
}

// NewSnapshotStore returns a snapshot store persisting to the given path.
func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

// Load reads the snapshot array. A missing file is an empty snapshot.
func (s *SnapshotStore) Load() ([]models.Account, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return []models.Account{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "open snapshot %s", s.path)
	}
	defer f.Close()

	var accounts []models.Account
	if err := json.NewDecoder(f).Decode(&accounts); err != nil {
		return nil, errors.Wrapf(err, "decode snapshot %s", s.path)
	}
	if accounts == nil {
		accounts = []models.Account{}
	}
	return accounts, nil
}

// Save overwrites the snapshot with the same atomic discipline as the
// document store.
func (s *SnapshotStore) Save(accounts []models.Account) error {
	if accounts == nil {
		accounts = []models.Account{}
	}
	return writeFileAtomic(s.path, accounts)
}

var _ interfaces.SnapshotStore = (*SnapshotStore)(nil)
