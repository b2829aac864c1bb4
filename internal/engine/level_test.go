package engine

import "testing"

func TestTradeAtPriceReplenishedIcebergLosesPriority(t *testing.T) {
	// Scenario 5: iceberg id=7 (peak 100, total 500) then plain id=9
	// (qty 100), both resting at price 100. Aggressor buys 150.
	iceberg := NewIcebergOrder(7, 100, Sell, 500, 100)
	plain := NewLimitOrder(9, 100, Sell, 100)
	lvl := &PriceLevel{Price: 100, Orders: []*Order{&iceberg, &plain}}

	aggressor := NewLimitOrder(10, 100, Buy, 150)
	agg := newTradeAggregator()
	var removed []int32
	lvl.tradeAtPrice(&aggressor, agg, func(o *Order) { removed = append(removed, o.ID) })

	trades := agg.trades(Buy, 10)
	if len(trades) != 2 {
		t.Fatalf("expected 2 aggregated trades, got %d", len(trades))
	}
	if trades[0].SellID != 7 || trades[0].Quantity != 100 {
		t.Fatalf("expected first trade against id 7 qty 100, got %+v", trades[0])
	}
	if trades[1].SellID != 9 || trades[1].Quantity != 50 {
		t.Fatalf("expected second trade against id 9 qty 50, got %+v", trades[1])
	}

	if len(lvl.Orders) != 2 {
		t.Fatalf("expected 2 resting orders left, got %d", len(lvl.Orders))
	}
	if lvl.Orders[0].ID != 9 || lvl.Orders[1].ID != 7 {
		t.Fatalf("expected order 9 ahead of refreshed order 7, got ids %d,%d", lvl.Orders[0].ID, lvl.Orders[1].ID)
	}
	if lvl.Orders[0].Visible != 50 {
		t.Fatalf("expected order 9 visible 50, got %d", lvl.Orders[0].Visible)
	}
	if lvl.Orders[1].Visible != 100 || lvl.Orders[1].Hidden != 300 {
		t.Fatalf("expected refreshed order 7 visible 100 hidden 300, got visible=%d hidden=%d",
			lvl.Orders[1].Visible, lvl.Orders[1].Hidden)
	}
	if len(removed) != 0 {
		t.Fatalf("expected no orders removed, got %v", removed)
	}

	// Next aggressor must hit the untouched remainder of id 9 first.
	aggressor2 := NewLimitOrder(11, 100, Buy, 50)
	agg2 := newTradeAggregator()
	lvl.tradeAtPrice(&aggressor2, agg2, func(o *Order) { removed = append(removed, o.ID) })
	trades2 := agg2.trades(Buy, 11)
	if len(trades2) != 1 || trades2[0].SellID != 9 {
		t.Fatalf("expected second aggressor to hit id 9 first, got %+v", trades2)
	}
}

func TestTradeAtPriceDropsFullyConsumedOrderWithoutReserve(t *testing.T) {
	a := NewLimitOrder(1, 100, Sell, 10)
	b := NewLimitOrder(2, 100, Sell, 5)
	c := NewLimitOrder(3, 100, Sell, 5)
	lvl := &PriceLevel{Price: 100, Orders: []*Order{&a, &b, &c}}

	aggressor := NewLimitOrder(4, 100, Buy, 12)
	agg := newTradeAggregator()
	var removed []int32
	lvl.tradeAtPrice(&aggressor, agg, func(o *Order) { removed = append(removed, o.ID) })

	if len(removed) != 1 || removed[0] != 1 {
		t.Fatalf("expected order 1 removed, got %v", removed)
	}
	if len(lvl.Orders) != 2 || lvl.Orders[0].ID != 2 || lvl.Orders[1].ID != 3 {
		t.Fatalf("expected [2,3] remaining in original order, got %v", ids(lvl.Orders))
	}
	if lvl.Orders[0].Visible != 3 {
		t.Fatalf("expected order 2 partially filled to visible 3, got %d", lvl.Orders[0].Visible)
	}
}

func ids(orders []*Order) []int32 {
	out := make([]int32, len(orders))
	for i, o := range orders {
		out[i] = o.ID
	}
	return out
}
