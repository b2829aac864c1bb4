package engine

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Engine is the matching engine for a single venue. It owns the book and
// is the only thing that mutates it; per spec §5 there is no global state
// and no aliasing — testing constructs a fresh instance and feeds it a
// scripted sequence of orders.
type Engine struct {
	book      *OrderBook
	sessionID uuid.UUID
	log       zerolog.Logger
}

// New constructs an engine with a fresh book, tagging every log line it
// emits with a freshly minted session id so a run's diagnostics can be
// correlated back to one engine instance.
func New(logger zerolog.Logger) *Engine {
	id := uuid.New()
	return &Engine{
		book:      NewOrderBook(),
		sessionID: id,
		log:       logger.With().Str("session_id", id.String()).Logger(),
	}
}

// SessionID returns the engine's session identifier.
func (e *Engine) SessionID() uuid.UUID {
	return e.sessionID
}

// Submit processes one incoming order, logging and then re-panicking on an
// InvariantViolation so the caller's process can fail fast per spec §7 —
// an invariant violation indicates a matching-engine bug, never a
// recoverable input condition.
func (e *Engine) Submit(o Order) (trades []Trade, err error) {
	defer func() {
		if r := recover(); r != nil {
			if iv, ok := r.(*InvariantViolation); ok {
				e.log.Error().
					Int32("order_id", o.ID).
					Str("side", o.Side.String()).
					Msg(iv.Error())
			}
			panic(r)
		}
	}()

	trades, err = e.book.Submit(o)
	if err != nil {
		e.log.Warn().
			Int32("order_id", o.ID).
			Err(err).
			Msg("order rejected")
		return nil, err
	}

	e.log.Debug().
		Int32("order_id", o.ID).
		Str("side", o.Side.String()).
		Int("trades", len(trades)).
		Msg("order processed")
	return trades, nil
}

// Bids returns the resting bid-side price levels, best first.
func (e *Engine) Bids() []*PriceLevel { return e.book.Bids.Levels() }

// Asks returns the resting ask-side price levels, best first.
func (e *Engine) Asks() []*PriceLevel { return e.book.Asks.Levels() }

// String renders a short human summary, in the vein of the teacher
// codebase's Order/Trade String() methods, for ad hoc debugging.
func (e *Engine) String() string {
	return fmt.Sprintf("Engine{session=%s, bids=%d levels, asks=%d levels}",
		e.sessionID, e.book.Bids.Len(), e.book.Asks.Len())
}
