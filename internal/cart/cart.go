// Package cart holds the per-order quantity store over the catalog.
package cart

import "laundry-king/internal/catalog"

// Store maps catalog item ids to non-negative counts. Every catalog id is
// present from construction with count 0; decrement clamps at 0 and there is
// no upper bound. Not safe for concurrent use: all mutation happens on the
// single interaction goroutine.
type Store struct {
	catalog *catalog.Catalog
	counts  map[string]int
}

func NewStore(c *catalog.Catalog) *Store {
	s := &Store{
		catalog: c,
		counts:  make(map[string]int, c.Len()),
	}
	for _, item := range c.Items() {
		s.counts[item.ID] = 0
	}
	return s
}

// Increment adds one to the count for itemID. Unknown ids are a no-op; the
// UI is driven by the same fixed catalog, so this path is unreachable there.
func (s *Store) Increment(itemID string) {
	if _, ok := s.counts[itemID]; !ok {
		return
	}
	s.counts[itemID]++
}

// Decrement subtracts one from the count for itemID, clamping at 0.
func (s *Store) Decrement(itemID string) {
	count, ok := s.counts[itemID]
	if !ok || count == 0 {
		return
	}
	s.counts[itemID] = count - 1
}

// Reset returns every count to 0 for a fresh order cycle.
func (s *Store) Reset() {
	for id := range s.counts {
		s.counts[id] = 0
	}
}

// Count returns the current count for itemID.
func (s *Store) Count(itemID string) int {
	return s.counts[itemID]
}

// Counts returns a copy of the current quantity map.
func (s *Store) Counts() map[string]int {
	out := make(map[string]int, len(s.counts))
	for id, count := range s.counts {
		out[id] = count
	}
	return out
}

// Total recomputes the order total from the current counts and the catalog.
// Zero-count items contribute nothing, so iterating the full catalog matches
// a sum over only the selected items.
func (s *Store) Total() int {
	total := 0
	for _, item := range s.catalog.Items() {
		total += s.counts[item.ID] * item.Price
	}
	return total
}

// Catalog returns the catalog the store was built over.
func (s *Store) Catalog() *catalog.Catalog {
	return s.catalog
}
