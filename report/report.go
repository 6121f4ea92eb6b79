// Package report turns a fund's daily holdings snapshots into a change
// report: securities added, securities removed, and par value moves
// over a lookback window measured in trading days.
package report

import (
	"time"

	"fundwatch/holdings"
)

// SnapshotSource is the read-only view of the snapshot store the
// engine needs. Any date returned by DistinctDates must be resolvable
// by Snapshot.
type SnapshotSource interface {
	// DistinctDates returns every trading date with a persisted
	// snapshot for the fund, ascending.
	DistinctDates(fund string) ([]time.Time, error)

	// Snapshot returns the fund's holdings on the given date, keyed by
	// security name. It fails if no snapshot exists for that date.
	Snapshot(fund string, on time.Time) (holdings.Snapshot, error)
}

// NewAsset records a security present on Date that was absent the
// trading day before.
type NewAsset struct {
	Date      time.Time
	Name      string
	LastPrice holdings.Price
	AssetType string
}

// RemovedAsset records a security absent on the trading day after
// Date. Date is the last day the security was held, and LastPrice is
// computed from that day's row.
type RemovedAsset struct {
	Date      time.Time
	Name      string
	LastPrice holdings.Price
	AssetType string
}

// ParChange records a security whose par value moved between
// consecutive trading days. Date is the later day and ParDelta is
// current minus previous.
type ParChange struct {
	Date      time.Time
	Name      string
	ParDelta  float64
	AssetType string
}

// Summary aggregates the end-of-window snapshot plus the event counts.
// The totals and count come straight from the end-date snapshot, not
// from the events.
type Summary struct {
	TotalMarketValue   float64
	TotalParValue      float64
	SecuritiesCount    int
	NewAssetsCount     int
	RemovedAssetsCount int
	ParChangesCount    int
}

// Report is the engine's output for one (fund, lookback) request.
// It is a plain value: built once, never mutated afterwards.
//
// Each event slice is ordered by date descending, then name ascending.
// A security may appear more than once across the window (removed then
// re-added, or repeated par moves); the report is a ledger of
// consecutive-day transitions, never a netted start-vs-end comparison.
type Report struct {
	Fund      string
	StartDate time.Time
	EndDate   time.Time
	Summary   Summary

	NewAssets     []NewAsset
	RemovedAssets []RemovedAsset
	ParChanges    []ParChange
}
