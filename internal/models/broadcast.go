package models

import "time"

// Broadcast is an append-only system-wide message. Broadcasts are never
// updated or deleted.
type Broadcast struct {
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
