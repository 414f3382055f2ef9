// Package scores keeps the sorted leaderboards of the scored game modes and
// persists them as fixed-layout binary files.
package scores

import (
	"sort"

	"github.com/samber/lo"
)

// Ordered is implemented by records that know their leaderboard order.
// Before must be a strict weak ordering.
type Ordered[T any] interface {
	Before(other T) bool
}

// Leaderboard is a sorted multiset of records. Records that compare equal keep
// their insertion order.
type Leaderboard[T Ordered[T]] struct {
	entries []T
}

func NewLeaderboard[T Ordered[T]](records ...T) *Leaderboard[T] {
	lb := &Leaderboard[T]{entries: make([]T, 0, len(records))}
	for _, r := range records {
		lb.Insert(r)
	}
	return lb
}

// Insert places r after every record that is not ordered after it and returns
// its 0-based position.
func (lb *Leaderboard[T]) Insert(r T) int {
	i := sort.Search(len(lb.entries), func(i int) bool {
		return r.Before(lb.entries[i])
	})
	var zero T
	lb.entries = append(lb.entries, zero)
	copy(lb.entries[i+1:], lb.entries[i:])
	lb.entries[i] = r
	return i
}

func (lb *Leaderboard[T]) Len() int {
	return len(lb.entries)
}

// Top returns a copy of the first n records in order.
func (lb *Leaderboard[T]) Top(n int) []T {
	if n < 0 {
		n = 0
	}
	return append([]T(nil), lo.Subset(lb.entries, 0, uint(n))...)
}

// All returns a copy of every record in order.
func (lb *Leaderboard[T]) All() []T {
	return lb.Top(len(lb.entries))
}
