package typewar

import (
	"sort"

	"github.com/vovakirdan/typewar/internal/core"
)

// Entity is a target glyph approaching the center.
type Entity struct {
	Text string   // What the player has to type
	Pos  core.Vec // Position relative to the play-area center
}

// Distance returns the entity's distance from the center.
func (e Entity) Distance() float64 {
	return e.Pos.Len()
}

// Store owns the live entities. Removal swaps the last element into the
// freed slot, so any removal invalidates indices and iteration order.
type Store struct {
	items []Entity
}

// Add appends an entity.
func (s *Store) Add(e Entity) {
	s.items = append(s.items, e)
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	return len(s.items)
}

// At returns a pointer to the i-th entity, valid until the next removal.
func (s *Store) At(i int) *Entity {
	return &s.items[i]
}

// All returns the live entities. The slice aliases the store.
func (s *Store) All() []Entity {
	return s.items
}

// SwapRemove removes the i-th entity by moving the last one into its place.
func (s *Store) SwapRemove(i int) {
	last := len(s.items) - 1
	s.items[i] = s.items[last]
	s.items[last] = Entity{}
	s.items = s.items[:last]
}

// RemoveIndices removes every listed index. Indices are removed from the
// highest down so a swapped-in element is never one still to be removed.
func (s *Store) RemoveIndices(idx []int) {
	sort.Sort(sort.Reverse(sort.IntSlice(idx)))
	prev := -1
	for _, i := range idx {
		if i == prev {
			continue
		}
		s.SwapRemove(i)
		prev = i
	}
}
