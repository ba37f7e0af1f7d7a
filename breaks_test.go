package histo_test

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
	"github.com/vearutop/histo-go"
)

func TestBreaksFromRangeAndBins(t *testing.T) {
	require.Equal(t,
		[]float64{0, 2, 4, 6, 8, 10, 12, 14, 16, 18, 20},
		histo.BreaksFromRangeAndBins(0.0, 20.0, 10))

	require.Equal(t, []float64{-2, 0, 2}, histo.BreaksFromRangeAndBins(-2.0, 2.0, 2))
	require.Equal(t, []float32{0, 0.5, 1}, histo.BreaksFromRangeAndBins[float32](0, 1, 2))
}

func TestBreaksFromRangeAndWidth(t *testing.T) {
	require.Equal(t, []float64{0, 1, 2, 3, 4}, histo.BreaksFromRangeAndWidth(0.0, 4.0, 1.0))
	require.Equal(t, []float64{0, 1, 2, 3, 4, 5}, histo.BreaksFromRangeAndWidth(0.0, 4.5, 1.0))
	require.Equal(t, []float64{-3, -1, 1, 3}, histo.BreaksFromRangeAndWidth(-3.0, 2.0, 2.0))
	require.Nil(t, histo.BreaksFromRangeAndWidth(0.0, 4.0, 0.0))
	require.Nil(t, histo.BreaksFromRangeAndWidth(0.0, 4.0, -1.0))
}

func TestBalanceBreaks(t *testing.T) {
	datadriven.RunTest(t, "testdata/balance", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "balance":
			low := scanFloatArg(t, d, "low")
			high := scanFloatArg(t, d, "high")

			var breaks []float64

			for _, f := range strings.Fields(d.Input) {
				v, err := strconv.ParseFloat(f, 64)
				if err != nil {
					d.Fatalf(t, "bad break %q: %v", f, err)
				}

				breaks = append(breaks, v)
			}

			balanced, changed, err := histo.BalanceBreaks(breaks, low, high)
			if err != nil {
				return fmt.Sprintf("error: %v\n", err)
			}

			var sb strings.Builder

			for i, b := range balanced {
				if i > 0 {
					sb.WriteString(" ")
				}

				sb.WriteString(strconv.FormatFloat(b, 'g', -1, 64))
			}

			fmt.Fprintf(&sb, "\nchanged=%t\n", changed)

			return sb.String()
		default:
			d.Fatalf(t, "unknown command %q", d.Cmd)

			return ""
		}
	})
}

func scanFloatArg(t *testing.T, d *datadriven.TestData, key string) float64 {
	t.Helper()

	var s string

	d.ScanArgs(t, key, &s)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		d.Fatalf(t, "bad %s: %v", key, err)
	}

	return v
}

// Balanced breaks land on the target range, stay strictly increasing, and
// never lose the bins needed to cover it, whatever the starting layout.
func TestBalanceBreaksPostcondition(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 500; i++ {
		low := r.Float64()*20 - 10
		high := low + r.Float64()*30 + 1e-3
		width := r.Float64()*5 + 1e-3
		offset := r.Float64()*4 - 2

		raw := histo.BreaksFromRangeAndWidth(low+offset, high+offset, width)

		breaks, _, err := histo.BalanceBreaks(raw, low, high)
		require.NoError(t, err)

		require.InDelta(t, low, breaks[0], 1e-9)
		require.InDelta(t, high, breaks[len(breaks)-1], 1e-9)

		for j := 1; j < len(breaks); j++ {
			require.Greater(t, breaks[j], breaks[j-1])
		}
	}
}
