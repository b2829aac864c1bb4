package ioboundary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/saiputravu/icebook/internal/engine"
)

const (
	borderRow    = "+-----------------------------------------------------------------+"
	separatorRow = "+----------+-------------+-------+-------+-------------+----------+"
)

// Render produces the fixed-width ASCII snapshot of the resting book
// described in spec §4.5/§6: a 67-column table with the bid side on the
// left (best/highest price first) and the ask side on the right
// (best/lowest price first), one row per pair of parallel entries from the
// longer of the two sides. For icebergs only the currently visible slice is
// shown, never the hidden reserve.
func Render(bids, asks []*engine.PriceLevel) string {
	buyRows := flatten(bids)
	sellRows := flatten(asks)

	var b strings.Builder
	b.WriteString(borderRow)
	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("|%-32s|%-32s|", " BUY", " SELL"))
	b.WriteByte('\n')
	b.WriteString(colHeaderRow())
	b.WriteByte('\n')
	b.WriteString(separatorRow)
	b.WriteByte('\n')

	n := len(buyRows)
	if len(sellRows) > n {
		n = len(sellRows)
	}
	for i := 0; i < n; i++ {
		var buy, sell tableEntry
		if i < len(buyRows) {
			buy = buyRows[i]
		}
		if i < len(sellRows) {
			sell = sellRows[i]
		}
		b.WriteString(dataRow(buy, sell))
		b.WriteByte('\n')
	}

	b.WriteString(borderRow)
	b.WriteByte('\n')
	return b.String()
}

// tableEntry is one resting order's rendered fields; the zero value
// renders as a blank cell (used to pad the shorter side).
type tableEntry struct {
	present bool
	id      int32
	volume  int32
	price   int16
}

func flatten(levels []*engine.PriceLevel) []tableEntry {
	var rows []tableEntry
	for _, lvl := range levels {
		for _, o := range lvl.Orders {
			rows = append(rows, tableEntry{present: true, id: o.ID, volume: o.Visible, price: lvl.Price})
		}
	}
	return rows
}

func colHeaderRow() string {
	return "|" + rjust("ID", 10) +
		"|" + rjust("VOLUME", 13) +
		"|" + rjust("PRICE", 7) +
		"|" + rjust("PRICE", 7) +
		"|" + rjust("VOLUME", 13) +
		"|" + rjust("ID", 10) + "|"
}

func dataRow(buy, sell tableEntry) string {
	return "|" + rjust(idCell(buy), 10) +
		"|" + rjust(volumeCell(buy), 13) +
		"|" + rjust(priceCell(buy), 7) +
		"|" + rjust(priceCell(sell), 7) +
		"|" + rjust(volumeCell(sell), 13) +
		"|" + rjust(idCell(sell), 10) + "|"
}

func idCell(e tableEntry) string {
	if !e.present {
		return ""
	}
	return strconv.FormatInt(int64(e.id), 10)
}

func volumeCell(e tableEntry) string {
	if !e.present {
		return ""
	}
	return withThousands(int64(e.volume))
}

func priceCell(e tableEntry) string {
	if !e.present {
		return ""
	}
	return withThousands(int64(e.price))
}

func rjust(s string, width int) string {
	return fmt.Sprintf("%*s", width, s)
}

// withThousands inserts a comma every three digits, US-locale style. No
// library in the retrieved example pack is used directly for this in an
// orderbook context (see DESIGN.md); it is small enough to carry on the
// standard library rather than pull in a formatting dependency for one
// helper.
func withThousands(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)

	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)

	out := strings.Join(groups, ",")
	if neg {
		out = "-" + out
	}
	return out
}
