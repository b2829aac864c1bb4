package engine

// Trade reports one aggregated fill. BuyID always identifies the buy-side
// participant and SellID the sell-side, regardless of which side was
// aggressing (spec §3).
type Trade struct {
	BuyID    int32
	SellID   int32
	Price    int16
	Quantity int32
}

// tradeAggregator merges consecutive fills against the same resting
// counterparty (at one price, within one aggressor dispatch) into a single
// record, preserving first-touch order (spec §4.4). It is scoped to one
// call to OrderBook.Submit and discarded afterwards.
type tradeAggregator struct {
	ids     []int32
	amounts map[int32]int32
	prices  map[int32]int16
}

func newTradeAggregator() *tradeAggregator {
	return &tradeAggregator{
		amounts: make(map[int32]int32),
		prices:  make(map[int32]int16),
	}
}

// record adds a fill against restingID at price. Aggregation is keyed by
// restingID alone: an order only ever rests at one price at a time, so a
// second record for the same id within one dispatch is always at the same
// price.
func (agg *tradeAggregator) record(restingID int32, price int16, amount int32) {
	if _, seen := agg.amounts[restingID]; !seen {
		agg.ids = append(agg.ids, restingID)
		agg.prices[restingID] = price
	}
	agg.amounts[restingID] += amount
}

// trades renders the aggregated fills into Trade records, ordered by
// first-touch, with buy/sell ids assigned according to the aggressor's
// side (spec §4.4/§4.5).
func (agg *tradeAggregator) trades(aggressorSide Side, aggressorID int32) []Trade {
	if len(agg.ids) == 0 {
		return nil
	}
	out := make([]Trade, len(agg.ids))
	for i, restingID := range agg.ids {
		t := Trade{
			Price:    agg.prices[restingID],
			Quantity: agg.amounts[restingID],
		}
		if aggressorSide == Buy {
			t.BuyID = aggressorID
			t.SellID = restingID
		} else {
			t.BuyID = restingID
			t.SellID = aggressorID
		}
		out[i] = t
	}
	return out
}
