package engine

import "testing"

func TestBookSideOrdering(t *testing.T) {
	bids := newBookSide(Buy)
	o1 := NewLimitOrder(1, 99, Buy, 10)
	o2 := NewLimitOrder(2, 101, Buy, 10)
	o3 := NewLimitOrder(3, 100, Buy, 10)
	bids.insert(&o1)
	bids.insert(&o2)
	bids.insert(&o3)

	levels := bids.Levels()
	if len(levels) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(levels))
	}
	if levels[0].Price != 101 || levels[1].Price != 100 || levels[2].Price != 99 {
		t.Fatalf("expected bids sorted descending, got %v", priceList(levels))
	}

	asks := newBookSide(Sell)
	a1 := NewLimitOrder(4, 102, Sell, 10)
	a2 := NewLimitOrder(5, 100, Sell, 10)
	asks.insert(&a1)
	asks.insert(&a2)

	aLevels := asks.Levels()
	if aLevels[0].Price != 100 || aLevels[1].Price != 102 {
		t.Fatalf("expected asks sorted ascending, got %v", priceList(aLevels))
	}
}

func TestBookSideDropIfEmpty(t *testing.T) {
	side := newBookSide(Buy)
	o := NewLimitOrder(1, 100, Buy, 10)
	side.insert(&o)

	lvl, ok := side.levelAt(100)
	if !ok {
		t.Fatal("expected level to exist")
	}
	lvl.Orders = nil
	side.dropIfEmpty(lvl)

	if side.Len() != 0 {
		t.Fatalf("expected level to be dropped, got %d levels", side.Len())
	}
}

func priceList(levels []*PriceLevel) []int16 {
	out := make([]int16, len(levels))
	for i, l := range levels {
		out[i] = l.Price
	}
	return out
}
