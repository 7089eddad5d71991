package model

import (
	"time"
)

// Status represents the lifecycle state of an item
type Status string

const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
)

// Item represents a single wish-list entry. An item is created pending,
// may have its title and category edited any number of times, and moves
// to done exactly once. There is no transition back and no deletion.
type Item struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Status      Status     `json:"status,omitempty"`
	CreatedAt   time.Time  `json:"created_at,omitzero"`
	CompletedAt *time.Time `json:"completed_at,omitempty"` // set iff Status is done
	Comment     string     `json:"comment,omitempty"`      // meaningful only on done items
}

// IsDone returns true once the item has a completion timestamp
func (i *Item) IsDone() bool {
	return i.Status == StatusDone && i.CompletedAt != nil
}
