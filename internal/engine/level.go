package engine

// PriceLevel is an ordered, restartable sequence of resting orders at a
// single price. Order within the level reflects time priority: the order
// at index 0 has earliest arrival (or, for a replenished iceberg, earliest
// arrival among the orders that have not lost priority this pass).
type PriceLevel struct {
	Price  int16
	Orders []*Order
}

func newPriceLevel(price int16, first *Order) *PriceLevel {
	return &PriceLevel{Price: price, Orders: []*Order{first}}
}

// append adds an order to the tail of the level (used both for a newly
// resting order and, conceptually, for a replenished iceberg slice that
// loses its former time priority — see tradeAtPrice).
func (lvl *PriceLevel) append(o *Order) {
	lvl.Orders = append(lvl.Orders, o)
}

// tradeAtPrice runs the aggressor against this single level until either
// the level is drained or the aggressor's remaining quantity reaches zero,
// recording every fill in agg keyed by resting order id (§4.4). onRemove is
// invoked for every resting order whose total remaining hits zero this
// call, so the caller can drop it from any book-wide bookkeeping (e.g. an
// id-uniqueness index).
//
// Per spec §4.3/§9, within a single head-to-tail walk an order is either:
//   - left untouched (kept at its current position),
//   - partially filled without exhausting its visible slice (this can only
//     be the walk's final order, the one that exhausted the aggressor —
//     it also keeps its position),
//   - fully consumed with no hidden reserve (dropped), or
//   - fully consumed and replenished from its hidden reserve (moved behind
//     every order visited this pass, since a refreshed slice is a new
//     disclosure that loses time priority — but it still precedes any
//     order that arrives later).
//
// This is the "equivalent implementation" §9 permits in place of literal
// left-rotation: untouched/partially-filled orders never move, and only a
// replenished slice is relocated, straight to the tail.
func (lvl *PriceLevel) tradeAtPrice(aggressor *Order, agg *tradeAggregator, onRemove func(*Order)) {
	for len(lvl.Orders) > 0 && aggressor.Remaining() > 0 {
		kept := lvl.Orders[:0:0]
		var replenished []*Order
		exhausted := false

		for _, resting := range lvl.Orders {
			if exhausted {
				kept = append(kept, resting)
				continue
			}

			visibleBefore := resting.Visible
			amount := aggressor.match(resting)
			if amount == 0 {
				panicInvariant("match produced a zero fill while both sides had remaining quantity")
			}
			agg.record(resting.ID, lvl.Price, amount)

			switch {
			case amount < visibleBefore:
				// Partially filled; this is necessarily the order that
				// exhausted the aggressor. Keeps its position.
				kept = append(kept, resting)
			case resting.Remaining() == 0:
				if onRemove != nil {
					onRemove(resting)
				}
			default:
				replenished = append(replenished, resting)
			}

			if aggressor.Remaining() == 0 {
				exhausted = true
			}
		}

		lvl.Orders = append(kept, replenished...)
	}
}
