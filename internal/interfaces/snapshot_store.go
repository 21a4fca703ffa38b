package interfaces

import "github.com/mybank/ledgerd/internal/models"

// SnapshotStore persists the raw account snapshot array exchanged by the
// replication endpoints. A missing snapshot loads as an empty array, not an
// error.
type SnapshotStore interface {
	Load() ([]models.Account, error)
	Save(accounts []models.Account) error
}
