package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundwatch/holdings"
)

// End-to-end fixture reproducing a real PRSD reporting week: trading
// dates 2026-01-09 through 2026-01-16, one addition, one removal, and
// thirty par moves spread over the week.
const (
	carnival   = "CARNIVAL CORP 4 08/01/2028"
	occidental = "OCCIDENTAL PETROLEUM CORPORATION 8.5 07/15/2027"

	prsdMarketValue = 75247354.45
	prsdParValue    = 79660877.29

	baseMarketValue = 600000.0
	baseParValue    = 650000.0
)

// buildPRSD populates src with ten trading dates (2026-01-05..01-16,
// weekdays). 113 base securities are held throughout; OCCIDENTAL is
// held through 01-09 only and CARNIVAL appears on 01-16. Securities
// 1..30 bump par by 1000 on one date each, six per day from 01-12 to
// 01-16.
func buildPRSD(src *memSource) []time.Time {
	dates := tradingDays(10) // 01-05..01-09, 01-12..01-16

	changeDay := map[int]time.Time{} // security index -> par bump date
	for i := 0; i < 30; i++ {
		changeDay[i+1] = dates[5+i/6]
	}

	carnivalMV := prsdMarketValue - 113*baseMarketValue
	carnivalPar := prsdParValue - 113*baseParValue

	for di, on := range dates {
		s := holdings.Snapshot{}

		for i := 1; i <= 113; i++ {
			name := fmt.Sprintf("BASE SECURITY %03d", i)
			par := baseParValue
			if bump, ok := changeDay[i]; ok && on.Before(bump) {
				par = baseParValue - 1000
			}
			s[name] = holdings.SecurityRow{
				Name:        name,
				AssetType:   "Non-AOS",
				ParValue:    par,
				MarketValue: baseMarketValue,
			}
		}

		if di <= 4 { // held through 2026-01-09
			s[occidental] = holdings.SecurityRow{
				Name:        occidental,
				AssetType:   "Non-AOS",
				ParValue:    250000,
				MarketValue: 260000,
			}
		}
		if di == 9 { // appears 2026-01-16
			s[carnival] = holdings.SecurityRow{
				Name:        carnival,
				AssetType:   "Non-AOS",
				ParValue:    carnivalPar,
				MarketValue: carnivalMV,
			}
		}

		src.add("PRSD", on, s)
	}
	return dates
}

func TestEnginePRSDWeek(t *testing.T) {
	t.Parallel()

	src := newMemSource()
	dates := buildPRSD(src)

	rep, err := NewEngine(src).Run("PRSD", 5)
	require.NoError(t, err)

	assert.Equal(t, holdings.Day(2026, time.January, 9), rep.StartDate)
	assert.Equal(t, holdings.Day(2026, time.January, 16), rep.EndDate)

	assert.Equal(t, 114, rep.Summary.SecuritiesCount)
	assert.InDelta(t, prsdMarketValue, rep.Summary.TotalMarketValue, 1e-6)
	assert.InDelta(t, prsdParValue, rep.Summary.TotalParValue, 1e-6)

	require.Len(t, rep.NewAssets, 1)
	assert.Equal(t, carnival, rep.NewAssets[0].Name)
	assert.Equal(t, holdings.Day(2026, time.January, 16), rep.NewAssets[0].Date)

	require.Len(t, rep.RemovedAssets, 1)
	assert.Equal(t, occidental, rep.RemovedAssets[0].Name)
	assert.Equal(t, holdings.Day(2026, time.January, 9), rep.RemovedAssets[0].Date)

	require.Len(t, rep.ParChanges, 30)
	first, last := dates[5], dates[9] // 2026-01-12 .. 2026-01-16
	for _, pc := range rep.ParChanges {
		assert.Equal(t, 1000.0, pc.ParDelta)
		assert.False(t, pc.Date.Before(first), "par change before window changes start")
		assert.False(t, pc.Date.After(last), "par change after window end")
	}
	// Newest changes first.
	assert.Equal(t, last, rep.ParChanges[0].Date)
	assert.Equal(t, first, rep.ParChanges[29].Date)

	assert.Equal(t, 1, rep.Summary.NewAssetsCount)
	assert.Equal(t, 1, rep.Summary.RemovedAssetsCount)
	assert.Equal(t, 30, rep.Summary.ParChangesCount)
}
