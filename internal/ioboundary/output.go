package ioboundary

import (
	"fmt"
	"io"

	"github.com/saiputravu/icebook/internal/engine"
)

// WriteTrade emits one trade line in the bare-decimal form required by
// spec §6: "<buy_id>,<sell_id>,<price>,<quantity>\n". Unlike the snapshot
// table, trade lines never use thousands separators.
func WriteTrade(w io.Writer, t engine.Trade) (int, error) {
	return fmt.Fprintf(w, "%d,%d,%d,%d\n", t.BuyID, t.SellID, t.Price, t.Quantity)
}
