package model

import (
	"time"
)

// List is a shared wish list. The share identifier is the list's whole
// identity: whoever holds it can read and write. There are no accounts.
type List struct {
	ID        string    `json:"id"`
	ShareID   string    `json:"share_id"`
	CreatedAt time.Time `json:"created_at"`
}
