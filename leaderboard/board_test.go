package leaderboard

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertKeepsDescendingOrder(t *testing.T) {
	b := New(MaxEntries)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, b.Insert(Entry{Name: "a", Score: 100, Date: now}))
	assert.Equal(t, 0, b.Insert(Entry{Name: "b", Score: 300, Date: now}))
	assert.Equal(t, 1, b.Insert(Entry{Name: "c", Score: 200, Date: now}))

	names := []string{}
	for _, e := range b.Entries() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"b", "c", "a"}, names)
}

func TestInsertTiesKeepEarlierEntryFirst(t *testing.T) {
	b := New(MaxEntries)
	b.Insert(Entry{Name: "first", Score: 500})
	rank := b.Insert(Entry{Name: "second", Score: 500})

	assert.Equal(t, 1, rank)
	assert.Equal(t, "first", b.Entries()[0].Name)
}

func TestInsertTruncatesToCapacity(t *testing.T) {
	b := New(MaxEntries)
	for i := 1; i <= MaxEntries; i++ {
		b.Insert(Entry{Score: i * 10})
	}
	require.Equal(t, MaxEntries, b.Len())
	assert.False(t, b.Qualifies(10))

	assert.Equal(t, -1, b.Insert(Entry{Name: "low", Score: 5}))
	assert.Equal(t, MaxEntries, b.Len())

	assert.Equal(t, 0, b.Insert(Entry{Name: "high", Score: 1000}))
	assert.Equal(t, MaxEntries, b.Len())
	assert.Equal(t, 20, b.Entries()[MaxEntries-1].Score)
}

func TestRandomInsertsStaySortedAndBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := New(MaxEntries)
	for i := 0; i < 200; i++ {
		b.Insert(Entry{Score: rng.Intn(5000)})
		assert.LessOrEqual(t, b.Len(), MaxEntries)
		assert.True(t, b.Sorted())
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	b := New(3)
	b.Insert(Entry{Name: "x", Score: 1})
	got := b.Entries()
	got[0].Name = "mutated"
	assert.Equal(t, "x", b.Entries()[0].Name)
}
