// Package group derives the date-bucketed pending view from a flat item
// collection.
package group

import (
	"sort"

	"github.com/dori/wisht/internal/model"
)

// Direction controls the ordering of items and, through them, buckets
type Direction int

const (
	NewestFirst Direction = iota
	OldestFirst
)

// Toggle returns the opposite direction
func (d Direction) Toggle() Direction {
	if d == NewestFirst {
		return OldestFirst
	}
	return NewestFirst
}

func (d Direction) String() string {
	if d == NewestFirst {
		return "newest first"
	}
	return "oldest first"
}

// DateLayout is the calendar-date key format, no time component
const DateLayout = "2006/01/02"

// Bucket is one calendar date's worth of items
type Bucket struct {
	Date  string
	Items []model.Item
}

// ByDate sorts items by creation time in the given direction, then folds
// them into per-date buckets. Bucket order is inherited from the first
// occurrence of each date in the sorted sequence, never re-sorted on its
// own, so flipping the direction flips both item order and bucket order.
// The sort is stable: equal timestamps keep their input relative order.
func ByDate(items []model.Item, dir Direction) []Bucket {
	sorted := append([]model.Item(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if dir == NewestFirst {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	var buckets []Bucket
	index := make(map[string]int)
	for _, item := range sorted {
		key := item.CreatedAt.Format(DateLayout)
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, Bucket{Date: key})
		}
		buckets[i].Items = append(buckets[i].Items, item)
	}
	return buckets
}
