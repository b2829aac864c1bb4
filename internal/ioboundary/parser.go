package ioboundary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/saiputravu/icebook/internal/engine"
)

// Parse turns one input line into an order ready for submission to the
// engine, per the grammar in spec §6:
//
//	<B|S>,<id:int32>,<price:int16>,<quantity:int32>[,<peak:int32>]
//
// Empty lines and lines whose first character is not 'B' or 'S' return
// ErrIgnorable. Anything else that fails to parse returns ErrMalformed
// wrapping the underlying reason.
func Parse(line string) (engine.Order, error) {
	if line == "" {
		return engine.Order{}, ErrIgnorable
	}
	switch line[0] {
	case 'B', 'S':
	default:
		return engine.Order{}, ErrIgnorable
	}

	fields := strings.Split(line, ",")
	if len(fields) != 4 && len(fields) != 5 {
		return engine.Order{}, fmt.Errorf("%w: expected 4 or 5 comma-separated fields, got %d", ErrMalformed, len(fields))
	}

	side := engine.Buy
	if fields[0] == "S" {
		side = engine.Sell
	}

	id, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		return engine.Order{}, fmt.Errorf("%w: id: %v", ErrMalformed, err)
	}
	price, err := strconv.ParseInt(fields[2], 10, 16)
	if err != nil {
		return engine.Order{}, fmt.Errorf("%w: price: %v", ErrMalformed, err)
	}
	quantity, err := strconv.ParseInt(fields[3], 10, 32)
	if err != nil {
		return engine.Order{}, fmt.Errorf("%w: quantity: %v", ErrMalformed, err)
	}

	if len(fields) == 5 {
		peak, err := strconv.ParseInt(fields[4], 10, 32)
		if err != nil {
			return engine.Order{}, fmt.Errorf("%w: peak: %v", ErrMalformed, err)
		}
		return engine.NewIcebergOrder(int32(id), int16(price), side, int32(quantity), int32(peak)), nil
	}

	return engine.NewLimitOrder(int32(id), int16(price), side, int32(quantity)), nil
}
