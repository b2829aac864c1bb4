package ioboundary

import (
	"errors"
	"testing"

	"github.com/saiputravu/icebook/internal/engine"
)

func TestParseLimitOrder(t *testing.T) {
	o, err := Parse("B,1,99,100")
	if err != nil {
		t.Fatal(err)
	}
	if o.ID != 1 || o.Price != 99 || o.Side != engine.Buy || o.Visible != 100 || o.Kind != engine.Limit {
		t.Fatalf("unexpected order: %+v", o)
	}
}

func TestParseIcebergOrder(t *testing.T) {
	o, err := Parse("S,7,100,1000,100")
	if err != nil {
		t.Fatal(err)
	}
	if o.Kind != engine.Iceberg || o.Visible != 100 || o.Hidden != 900 || o.Peak != 100 {
		t.Fatalf("unexpected iceberg order: %+v", o)
	}
}

func TestParseIgnoresEmptyAndUnrecognizedLines(t *testing.T) {
	for _, line := range []string{"", "# comment", "X,1,2,3"} {
		if _, err := Parse(line); !errors.Is(err, ErrIgnorable) {
			t.Fatalf("line %q: expected ErrIgnorable, got %v", line, err)
		}
	}
}

func TestParseRejectsMalformedFields(t *testing.T) {
	for _, line := range []string{"B,x,99,100", "B,1,99", "B,1,99,100,200,300"} {
		if _, err := Parse(line); !errors.Is(err, ErrMalformed) {
			t.Fatalf("line %q: expected ErrMalformed, got %v", line, err)
		}
	}
}
