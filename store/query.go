package store

import (
	"fmt"
	"time"

	"fundwatch/holdings"
)

// DistinctDates returns every trading date with a snapshot for the
// fund, ascending. ISO date strings sort lexically, so the ORDER BY is
// chronological.
func (s *Store) DistinctDates(fund string) ([]time.Time, error) {
	rows, err := s.db.Query(`
		SELECT DISTINCT date FROM financial_data
		WHERE source_identifier = ?
		ORDER BY date ASC`, fund)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		on, err := time.Parse(holdings.DateLayout, day)
		if err != nil {
			return nil, fmt.Errorf("bad date %q for fund %s: %w", day, fund, err)
		}
		dates = append(dates, on)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return dates, nil
}

// Snapshot returns the fund's holdings on the given date keyed by
// security name. It fails when no snapshot exists for that day.
func (s *Store) Snapshot(fund string, on time.Time) (holdings.Snapshot, error) {
	rows, err := s.db.Query(`
		SELECT name, identifier, sedol, weight, coupon, par_value, market_value, local_currency, maturity, asset_breakdown
		FROM financial_data
		WHERE source_identifier = ? AND date = ?`,
		fund, on.Format(holdings.DateLayout))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	snap := holdings.Snapshot{}
	for rows.Next() {
		var r holdings.SecurityRow
		if err := rows.Scan(
			&r.Name, &r.Identifier, &r.Sedol, &r.Weight, &r.Coupon,
			&r.ParValue, &r.MarketValue, &r.LocalCurrency, &r.Maturity, &r.AssetType,
		); err != nil {
			return nil, err
		}
		snap[r.Name] = r
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(snap) == 0 {
		return nil, fmt.Errorf("no snapshot for fund %q on %s", fund, on.Format(holdings.DateLayout))
	}
	return snap, nil
}

// HasDate reports whether a snapshot already exists for the fund on
// the given date. The ingester uses it to skip duplicate days.
func (s *Store) HasDate(fund string, on time.Time) (bool, error) {
	var n int
	err := s.db.QueryRow(`
		SELECT COUNT(1) FROM financial_data
		WHERE source_identifier = ? AND date = ?`,
		fund, on.Format(holdings.DateLayout)).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Funds returns every fund symbol with at least one snapshot.
func (s *Store) Funds() ([]string, error) {
	rows, err := s.db.Query(`
		SELECT DISTINCT source_identifier FROM financial_data
		ORDER BY source_identifier ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var funds []string
	for rows.Next() {
		var f string
		if err := rows.Scan(&f); err != nil {
			return nil, err
		}
		funds = append(funds, f)
	}
	return funds, rows.Err()
}
