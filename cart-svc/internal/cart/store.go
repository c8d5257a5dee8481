// Package cart owns the in-memory cart line collection and the checkout
// payload projection. All operations are synchronous and never perform I/O;
// the caller provides the single-writer boundary when the store is shared.
package cart

import (
	"math"

	"foodbites/cart-svc/internal/domain"
)

const (
	MinQuantity = 1
	MaxQuantity = 99
)

// Store holds cart lines in first-add order, at most one line per food
// identifier.
type Store struct {
	lines []domain.CartLine
}

func NewStore() *Store {
	return &Store{}
}

// Add merges into an existing line for the same identifier, otherwise appends
// a new line. Quantities are clamped, never rejected.
func (s *Store) Add(item domain.FoodItem, quantity int) {
	for i := range s.lines {
		if s.lines[i].Item.ID == item.ID {
			s.lines[i].Quantity = clamp(s.lines[i].Quantity + quantity)
			return
		}
	}
	s.lines = append(s.lines, domain.CartLine{Item: item, Quantity: clamp(quantity)})
}

// Remove drops the line for id. Removing an absent id is a no-op, not an
// error.
func (s *Store) Remove(id string) {
	for i := range s.lines {
		if s.lines[i].Item.ID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// UpdateQuantity clamps and sets the line's quantity; unknown ids are
// ignored. Reaching the floor never removes the line; removal is always an
// explicit Remove.
func (s *Store) UpdateQuantity(id string, quantity int) {
	for i := range s.lines {
		if s.lines[i].Item.ID == id {
			s.lines[i].Quantity = clamp(quantity)
			return
		}
	}
}

func (s *Store) Clear() {
	s.lines = nil
}

// Total sums price × quantity over all lines. Rounding to two places happens
// here, at the read point, so repeated reads never compound rounding error.
func (s *Store) Total() float64 {
	var total float64
	for _, line := range s.lines {
		total += line.Item.Price * float64(line.Quantity)
	}
	return round2(total)
}

// Size is the count of distinct lines, not the summed quantities; badge
// counters reflect this number.
func (s *Store) Size() int {
	return len(s.lines)
}

// Lines returns a copy of the cart in insertion order.
func (s *Store) Lines() []domain.CartLine {
	snapshot := make([]domain.CartLine, len(s.lines))
	copy(snapshot, s.lines)
	return snapshot
}

func clamp(quantity int) int {
	if quantity < MinQuantity {
		return MinQuantity
	}
	if quantity > MaxQuantity {
		return MaxQuantity
	}
	return quantity
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
