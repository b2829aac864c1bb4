package engine

// OrderBook is a pair of book sides for a single venue/symbol (spec
// Non-goals: no multi-symbol support). Top-of-book is the first entry of
// each side's sorted view.
type OrderBook struct {
	Bids *BookSide
	Asks *BookSide

	resting map[int32]struct{} // ids currently resting, either side
}

// NewOrderBook constructs an empty book.
func NewOrderBook() *OrderBook {
	return &OrderBook{
		Bids:    newBookSide(Buy),
		Asks:    newBookSide(Sell),
		resting: make(map[int32]struct{}),
	}
}

func (book *OrderBook) side(s Side) *BookSide {
	if s == Buy {
		return book.Bids
	}
	return book.Asks
}

// crosses reports whether an opposite-side level at oppPrice crosses with
// an aggressor of side aggSide resting at aggPrice (spec §4.2 step 2).
func crosses(aggSide Side, aggPrice, oppPrice int16) bool {
	if aggSide == Buy {
		return oppPrice <= aggPrice
	}
	return oppPrice >= aggPrice
}

// Submit processes one incoming order end to end: cross-matching against
// the opposite side in price-time priority, then resting any remainder on
// the order's own side. Returns the trades produced by this one dispatch,
// in first-fill order (spec §4.2–§4.4).
func (book *OrderBook) Submit(o Order) ([]Trade, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if _, dup := book.resting[o.ID]; dup {
		return nil, ErrDuplicateID
	}

	agg := newTradeAggregator()
	aggressor := o
	opp := book.side(o.Side.Opposite())

	for aggressor.Remaining() > 0 {
		lvl, ok := opp.best()
		if !ok {
			break
		}
		if !crosses(aggressor.Side, aggressor.Price, lvl.Price) {
			break
		}

		lvl.tradeAtPrice(&aggressor, agg, book.untrack)
		opp.dropIfEmpty(lvl)
	}

	if aggressor.Remaining() > 0 {
		own := book.side(aggressor.Side)
		own.insert(&aggressor)
		book.track(aggressor.ID)
	}

	return agg.trades(o.Side, o.ID), nil
}

func (book *OrderBook) track(id int32)   { book.resting[id] = struct{}{} }
func (book *OrderBook) untrack(o *Order) { delete(book.resting, o.ID) }
