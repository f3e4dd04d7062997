// Package history implements the in-memory most-recently-used store.
package history

import (
	"iter"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/mru/internal/core/domain"
	"go.trai.ch/zerr"
)

// Entry is a single tracked item.
type Entry[K comparable] struct {
	// Identity is the normalized key of the item.
	Identity K
	// LastUsedAt is the time of the most recent RecordUse, in UTC.
	LastUsedAt time.Time
	// UseCount counts RecordUse calls for the identity while it stayed in the store.
	UseCount uint64
}

// Store is an ordered, deduplicated collection of entries bounded by capacity.
//
// Order is recency of operations, most recent first. The tail is evicted when
// an insertion would exceed the capacity. Store is not safe for concurrent use;
// it is owned by a single invocation.
type Store[K comparable] struct {
	lru      *simplelru.LRU[K, Entry[K]]
	capacity int
	clock    clockwork.Clock
	// latest is the newest timestamp ever handed out; it keeps stamps
	// non-decreasing when the clock steps backwards.
	latest time.Time
}

// Option configures a Store.
type Option func(*options)

type options struct {
	clock clockwork.Clock
}

// WithClock sets the clock used to stamp entries.
func WithClock(c clockwork.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// New creates an empty store. A capacity below 1 is raised to 1.
func New[K comparable](capacity int, opts ...Option) *Store[K] {
	o := options{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(&o)
	}

	capacity = max(capacity, 1)
	// NewLRU only fails on a non-positive size.
	lru, _ := simplelru.NewLRU[K, Entry[K]](capacity, nil)

	return &Store[K]{
		lru:      lru,
		capacity: capacity,
		clock:    o.clock,
	}
}

// Restore builds a store from entries ordered most recent first, keeping their
// timestamps and counts. It fails when an identity repeats or when there are
// more entries than capacity.
func Restore[K comparable](capacity int, entries []Entry[K], opts ...Option) (*Store[K], error) {
	if len(entries) > max(capacity, 1) {
		err := zerr.With(zerr.Wrap(domain.ErrCapacityExceeded, "too many entries to restore"), "capacity", capacity)
		return nil, zerr.With(err, "entries", len(entries))
	}

	s := New[K](capacity, opts...)
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if s.lru.Contains(e.Identity) {
			return nil, zerr.With(zerr.Wrap(domain.ErrDuplicateIdentity, "identity repeats"), "identity", e.Identity)
		}
		s.lru.Add(e.Identity, e)
		if e.LastUsedAt.After(s.latest) {
			s.latest = e.LastUsedAt
		}
	}

	return s, nil
}

// RecordUse moves id to the front with a fresh timestamp, inserting it if
// absent, and evicts the least recently used entry when over capacity.
func (s *Store[K]) RecordUse(id K) Entry[K] {
	at := s.clock.Now().UTC().Round(0)
	if at.Before(s.latest) {
		at = s.latest
	}
	s.latest = at

	var count uint64
	if prev, ok := s.lru.Peek(id); ok {
		count = prev.UseCount
		s.lru.Remove(id)
	}

	e := Entry[K]{
		Identity:   id,
		LastUsedAt: at,
		UseCount:   count + 1,
	}
	s.lru.Add(id, e)

	return e
}

// Remove deletes id and reports whether it was present.
func (s *Store[K]) Remove(id K) bool {
	return s.lru.Remove(id)
}

// Contains reports whether id is tracked without changing its position.
func (s *Store[K]) Contains(id K) bool {
	return s.lru.Contains(id)
}

// Clear empties the store.
func (s *Store[K]) Clear() {
	s.lru.Purge()
}

// SetCapacity changes the capacity, evicting from the tail until the store
// fits. A capacity below 1 is raised to 1. It returns the number of evicted entries.
func (s *Store[K]) SetCapacity(n int) int {
	n = max(n, 1)
	s.capacity = n
	return s.lru.Resize(n)
}

// Capacity returns the maximum number of retained entries.
func (s *Store[K]) Capacity() int {
	return s.capacity
}

// Len returns the number of entries.
func (s *Store[K]) Len() int {
	return s.lru.Len()
}

// Newest returns the entry at position 0.
func (s *Store[K]) Newest() (Entry[K], bool) {
	keys := s.lru.Keys()
	if len(keys) == 0 {
		return Entry[K]{}, false
	}
	return s.lru.Peek(keys[len(keys)-1])
}

// All yields the entries most recent first. The sequence is read-only and
// can be ranged over any number of times; each range sees the store as it is
// when iteration starts.
func (s *Store[K]) All() iter.Seq[Entry[K]] {
	return func(yield func(Entry[K]) bool) {
		values := s.lru.Values()
		for i := len(values) - 1; i >= 0; i-- {
			if !yield(values[i]) {
				return
			}
		}
	}
}

// Entries returns the entries most recent first.
func (s *Store[K]) Entries() []Entry[K] {
	out := make([]Entry[K], 0, s.lru.Len())
	for e := range s.All() {
		out = append(out, e)
	}
	return out
}
