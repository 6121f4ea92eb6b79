// Package holdings holds the shared domain types for fund holdings
// snapshots: one row per security per fund per trading date.
package holdings

import (
	"sort"
	"strconv"
	"time"
)

// DateLayout is the canonical on-disk and on-wire date format.
const DateLayout = "2006-01-02"

// SecurityRow is one security's state on one date for one fund.
//
// Only Name, AssetType, ParValue and MarketValue participate in change
// detection; the remaining columns are carried through from the source
// filings untouched.
type SecurityRow struct {
	Name          string
	Identifier    string
	Sedol         string
	AssetType     string
	Coupon        string
	Maturity      string
	LocalCurrency string
	Weight        float64
	ParValue      float64
	MarketValue   float64
}

// Snapshot is one fund's holdings on one trading date, keyed by
// security name. Snapshots are owned by the store and treated as
// read-only by everything downstream.
type Snapshot map[string]SecurityRow

// SortedNames returns the snapshot's security names in ascending
// order. Aggregates computed over a snapshot iterate in this order so
// results are deterministic.
func (s Snapshot) SortedNames() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Price is a last-price quote. Valid is false when the price is
// undefined (zero par value), which is expected for cash-like lines.
type Price struct {
	Value float64
	Valid bool
}

// LastPrice derives the last price of a row as
// market_value / par_value * 100. Rows with zero par value have no
// defined price.
func LastPrice(r SecurityRow) Price {
	if r.ParValue == 0 {
		return Price{}
	}
	return Price{Value: r.MarketValue / r.ParValue * 100, Valid: true}
}

func (p Price) String() string {
	if !p.Valid {
		return "-"
	}
	return strconv.FormatFloat(p.Value, 'f', 4, 64)
}

// Day returns the given calendar day at midnight UTC. All snapshot
// dates are day-granular.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a date string in any of the formats seen in source
// filings and normalizes it to midnight UTC.
func ParseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return Day(t.Date()), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// dateLayouts covers the formats the upstream fund files have shipped
// with over time.
var dateLayouts = []string{
	DateLayout, // 2025-07-28
	"1/2/2006", // 7/28/2025
	"01/02/2006",
	"2-Jan-2006", // 28-Jul-2025
	"Jan 2, 2006",
	"January 2, 2006",
}
