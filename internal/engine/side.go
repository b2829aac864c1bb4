package engine

import "github.com/tidwall/btree"

// BookSide is a price-indexed collection of price levels, sorted by
// priority: descending price for bids (best bid = highest), ascending
// price for asks (best ask = lowest). Backed by a B-tree so that
// best-of-side lookup and level insert/delete are logarithmic in the
// number of distinct prices (spec §9), the same container the teacher
// codebase uses for its own price-level index.
type BookSide struct {
	side Side
	tree *btree.BTreeG[*PriceLevel]
}

func newBookSide(side Side) *BookSide {
	var less func(a, b *PriceLevel) bool
	if side == Buy {
		less = func(a, b *PriceLevel) bool { return a.Price > b.Price } // highest bid first
	} else {
		less = func(a, b *PriceLevel) bool { return a.Price < b.Price } // lowest ask first
	}
	return &BookSide{side: side, tree: btree.NewBTreeG(less)}
}

// levelAt returns the mutable price level at price, if one exists.
func (s *BookSide) levelAt(price int16) (*PriceLevel, bool) {
	return s.tree.GetMut(&PriceLevel{Price: price})
}

// best returns the top-of-book level for this side.
func (s *BookSide) best() (*PriceLevel, bool) {
	return s.tree.MinMut()
}

// insert rests o on this side, appending to the tail of its price level
// (creating the level if it does not yet exist).
func (s *BookSide) insert(o *Order) {
	if lvl, ok := s.levelAt(o.Price); ok {
		lvl.append(o)
		return
	}
	s.tree.Set(newPriceLevel(o.Price, o))
}

// dropIfEmpty removes lvl from the side if it has no resting orders left.
// Empty price levels must never be retained (spec §3/§5).
func (s *BookSide) dropIfEmpty(lvl *PriceLevel) {
	if len(lvl.Orders) == 0 {
		s.tree.Delete(lvl)
	}
}

// Levels returns every resting price level on this side, in priority order
// (best first), for rendering and for tests.
func (s *BookSide) Levels() []*PriceLevel {
	levels := make([]*PriceLevel, 0, s.tree.Len())
	s.tree.Scan(func(lvl *PriceLevel) bool {
		levels = append(levels, lvl)
		return true
	})
	return levels
}

// Len reports the number of distinct price levels resting on this side.
func (s *BookSide) Len() int {
	return s.tree.Len()
}
