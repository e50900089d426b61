// Package leaderboard keeps the in-memory high score table.
package leaderboard

import (
	"sort"
	"time"
)

// MaxEntries is the default table size.
const MaxEntries = 10

// Entry is one finished run.
type Entry struct {
	Name  string
	Score int
	Date  time.Time
}

// Board holds at most capacity entries sorted by descending score.
type Board struct {
	capacity int
	entries  []Entry
}

// New returns an empty board. A non-positive capacity falls back to MaxEntries.
func New(capacity int) *Board {
	if capacity <= 0 {
		capacity = MaxEntries
	}
	return &Board{capacity: capacity, entries: make([]Entry, 0, capacity+1)}
}

// Insert places e and returns its 0-based rank, or -1 when it fell off the
// table. Existing entries win ties.
func (b *Board) Insert(e Entry) int {
	b.entries = append(b.entries, e)
	idx := len(b.entries) - 1
	// walk the new entry up while it strictly beats its neighbour
	for idx > 0 && b.entries[idx-1].Score < e.Score {
		b.entries[idx-1], b.entries[idx] = b.entries[idx], b.entries[idx-1]
		idx--
	}
	if len(b.entries) > b.capacity {
		b.entries = b.entries[:b.capacity]
	}
	if idx >= b.capacity {
		return -1
	}
	return idx
}

// Entries returns a copy of the table.
func (b *Board) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len returns the number of entries.
func (b *Board) Len() int { return len(b.entries) }

// Sorted reports whether the table is in descending score order.
func (b *Board) Sorted() bool {
	return sort.SliceIsSorted(b.entries, func(i, j int) bool {
		return b.entries[i].Score > b.entries[j].Score
	})
}

// Qualifies reports whether score would place on the table.
func (b *Board) Qualifies(score int) bool {
	if len(b.entries) < b.capacity {
		return true
	}
	return score > b.entries[len(b.entries)-1].Score
}
