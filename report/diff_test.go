package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundwatch/holdings"
)

func row(name string, par, mv float64) holdings.SecurityRow {
	return holdings.SecurityRow{
		Name:        name,
		AssetType:   "Non-AOS",
		ParValue:    par,
		MarketValue: mv,
	}
}

func snap(rows ...holdings.SecurityRow) holdings.Snapshot {
	s := holdings.Snapshot{}
	for _, r := range rows {
		s[r.Name] = r
	}
	return s
}

var (
	dPrev = holdings.Day(2026, time.January, 15)
	dCurr = holdings.Day(2026, time.January, 16)
)

func TestDiffPairNewAsset(t *testing.T) {
	t.Parallel()

	prev := snap(row("A", 100, 99))
	curr := snap(row("A", 100, 99), row("B", 200, 201))

	d := diffPair(dPrev, dCurr, prev, curr)

	require.Len(t, d.News, 1)
	assert.Equal(t, "B", d.News[0].Name)
	assert.Equal(t, dCurr, d.News[0].Date)
	assert.True(t, d.News[0].LastPrice.Valid)
	assert.InDelta(t, 201.0/200.0*100, d.News[0].LastPrice.Value, 1e-12)
	assert.Empty(t, d.Removals)
	assert.Empty(t, d.ParChanges)
}

func TestDiffPairRemovedAssetDatedAndPricedFromPrev(t *testing.T) {
	t.Parallel()

	prev := snap(row("A", 100, 99), row("B", 200, 150))
	curr := snap(row("A", 100, 99))

	d := diffPair(dPrev, dCurr, prev, curr)

	require.Len(t, d.Removals, 1)
	assert.Equal(t, "B", d.Removals[0].Name)
	// A removal is dated the last day the security was held.
	assert.Equal(t, dPrev, d.Removals[0].Date)
	assert.InDelta(t, 75.0, d.Removals[0].LastPrice.Value, 1e-12)
	assert.Empty(t, d.News)
}

func TestDiffPairParChange(t *testing.T) {
	t.Parallel()

	prev := snap(row("A", 1000, 990))
	curr := snap(row("A", 1500, 990))

	d := diffPair(dPrev, dCurr, prev, curr)

	require.Len(t, d.ParChanges, 1)
	assert.Equal(t, "A", d.ParChanges[0].Name)
	assert.Equal(t, dCurr, d.ParChanges[0].Date)
	assert.Equal(t, 500.0, d.ParChanges[0].ParDelta)
}

func TestDiffPairNoFalseParChange(t *testing.T) {
	t.Parallel()

	prev := snap(row("A", 1000, 990))
	curr := snap(row("A", 1000, 985)) // market value moves, par does not

	d := diffPair(dPrev, dCurr, prev, curr)

	assert.Empty(t, d.ParChanges)
	assert.Empty(t, d.News)
	assert.Empty(t, d.Removals)
}

func TestDiffPairExactFloatComparison(t *testing.T) {
	t.Parallel()

	// Any nonzero delta is a reported move, however small.
	prev := snap(row("A", 1000, 990))
	curr := snap(row("A", 1000.0000001, 990))

	d := diffPair(dPrev, dCurr, prev, curr)
	require.Len(t, d.ParChanges, 1)
}

func TestDiffPairAssetTypeChangeIsNotAnEvent(t *testing.T) {
	t.Parallel()

	a := row("A", 1000, 990)
	a.AssetType = "Non-AOS"
	b := a
	b.AssetType = "AOS Asset Backed Finance"

	d := diffPair(dPrev, dCurr, snap(a), snap(b))

	assert.Empty(t, d.News)
	assert.Empty(t, d.Removals)
	assert.Empty(t, d.ParChanges)
}

func TestDiffPairUndefinedPriceOnZeroPar(t *testing.T) {
	t.Parallel()

	prev := snap()
	curr := snap(row("CASH OFFSET", 0, -1234.56))

	d := diffPair(dPrev, dCurr, prev, curr)

	require.Len(t, d.News, 1)
	assert.False(t, d.News[0].LastPrice.Valid)
	assert.Equal(t, "-", d.News[0].LastPrice.String())
}

// Conservation law: for any single pairwise diff,
// len(new) - len(removed) == len(curr) - len(prev).
func TestDiffPairConservation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		prev holdings.Snapshot
		curr holdings.Snapshot
	}{
		{"both empty", snap(), snap()},
		{"all new", snap(), snap(row("A", 1, 1), row("B", 2, 2))},
		{"all removed", snap(row("A", 1, 1), row("B", 2, 2)), snap()},
		{"overlap", snap(row("A", 1, 1), row("B", 2, 2)), snap(row("B", 3, 2), row("C", 4, 4))},
		{"identical", snap(row("A", 1, 1)), snap(row("A", 1, 1))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := diffPair(dPrev, dCurr, tc.prev, tc.curr)
			assert.Equal(t, len(tc.curr)-len(tc.prev), len(d.News)-len(d.Removals))
		})
	}
}
