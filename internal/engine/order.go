package engine

import "fmt"

// Order is the unit of intent to trade: either a plain limit order or an
// iceberg that discloses only a fixed peak while holding hidden reserve
// quantity. See types.go for the Kind tag.
type Order struct {
	ID    int32
	Price int16
	Side  Side
	Kind  Kind

	// Visible is the currently displayed (matchable) quantity. For a Limit
	// order this is the whole remaining quantity; for an Iceberg it is the
	// currently disclosed slice (<= Peak).
	Visible int32

	// Hidden is the undisclosed reserve quantity of an Iceberg. Always 0
	// for a Limit order.
	Hidden int32

	// Peak is the maximum slice an Iceberg discloses at a time. Unused
	// (zero) for a Limit order.
	Peak int32
}

// NewLimitOrder constructs a resting/incoming plain limit order.
func NewLimitOrder(id int32, price int16, side Side, quantity int32) Order {
	return Order{ID: id, Price: price, Side: side, Kind: Limit, Visible: quantity}
}

// NewIcebergOrder constructs an incoming iceberg order with the given total
// quantity and peak disclosure size. The initial visible slice is
// min(peak, total).
func NewIcebergOrder(id int32, price int16, side Side, total, peak int32) Order {
	visible := peak
	if total < peak {
		visible = total
	}
	return Order{
		ID:      id,
		Price:   price,
		Side:    side,
		Kind:    Iceberg,
		Peak:    peak,
		Visible: visible,
		Hidden:  total - visible,
	}
}

// Remaining reports the order's total remaining quantity: visible + hidden.
// An order whose Remaining is 0 is fully consumed and must never rest.
func (o *Order) Remaining() int32 {
	return o.Visible + o.Hidden
}

// Validate checks the invariants from spec §3: visible >= 0, and for an
// iceberg 0 < peak and visible <= peak.
func (o *Order) Validate() error {
	if o.ID == 0 || o.Price <= 0 {
		return ErrInvalidOrder
	}
	if o.Visible < 0 || o.Hidden < 0 {
		return ErrInvalidOrder
	}
	if o.Kind == Iceberg && (o.Peak <= 0 || o.Visible > o.Peak) {
		return ErrInvalidOrder
	}
	return nil
}

// match is invoked on the aggressor (the newly arrived order) with the
// head-of-queue resting order as against. It computes the fill amount,
// reduces the aggressor's own remaining, applies requestTrade to against,
// and returns the amount filled.
//
// For a Limit aggressor the fill is bounded by its own Visible (its
// remaining quantity has no hidden component). For an Iceberg aggressor
// that has not yet rested, the fill is bounded by its *total* remaining
// (visible+hidden), per spec §4.1/§9: a large incoming iceberg must not
// stall against a deep opposite side just because its currently-disclosed
// peak is small.
func (a *Order) match(against *Order) int32 {
	var budget int32
	if a.Kind == Iceberg {
		budget = a.Remaining()
	} else {
		budget = a.Visible
	}

	amount := min(budget, against.Visible)
	if amount == 0 {
		return 0
	}

	switch a.Kind {
	case Iceberg:
		total := a.Remaining() - amount
		if total < 0 {
			panicInvariant("iceberg aggressor remaining went negative")
		}
		if a.Peak < total {
			a.Visible = a.Peak
		} else {
			a.Visible = total
		}
		a.Hidden = total - a.Visible
	default:
		a.Visible -= amount
	}

	against.requestTrade(amount)
	return amount
}

// requestTrade applies a fill of amount to a resting order. Precondition:
// amount <= Visible. If this exhausts the visible slice of a resting
// iceberg and hidden reserve remains, a new slice is disclosed
// (replenishment): Visible <- min(Peak, Hidden); Hidden -= Visible.
func (o *Order) requestTrade(amount int32) {
	if amount > o.Visible {
		panicInvariant(fmt.Sprintf("requestTrade amount %d exceeds visible %d for order %d", amount, o.Visible, o.ID))
	}
	o.Visible -= amount

	if o.Visible == 0 && o.Hidden > 0 {
		if o.Peak < o.Hidden {
			o.Visible = o.Peak
		} else {
			o.Visible = o.Hidden
		}
		o.Hidden -= o.Visible
	}
}
