package holdings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastPrice(t *testing.T) {
	t.Parallel()

	p := LastPrice(SecurityRow{ParValue: 200, MarketValue: 150})
	require.True(t, p.Valid)
	assert.InDelta(t, 75.0, p.Value, 1e-12)
	assert.Equal(t, "75.0000", p.String())
}

func TestLastPriceUndefinedOnZeroPar(t *testing.T) {
	t.Parallel()

	// Cash-like lines carry zero par; the price is undefined, not a fault.
	p := LastPrice(SecurityRow{ParValue: 0, MarketValue: -1234.56})
	assert.False(t, p.Valid)
	assert.Equal(t, "-", p.String())
}

func TestSortedNames(t *testing.T) {
	t.Parallel()

	s := Snapshot{
		"C": {Name: "C"},
		"A": {Name: "A"},
		"B": {Name: "B"},
	}
	assert.Equal(t, []string{"A", "B", "C"}, s.SortedNames())
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	want := Day(2025, time.July, 28)

	cases := []string{
		"2025-07-28",
		"7/28/2025",
		"07/28/2025",
		"28-Jul-2025",
		"Jul 28, 2025",
		"July 28, 2025",
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			got, err := ParseDate(in)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	_, err := ParseDate("not a date")
	assert.Error(t, err)
}
