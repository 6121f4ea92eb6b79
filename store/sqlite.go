// Package store persists daily holdings snapshots in SQLite, one row
// per security per fund per trading date, append-only by date.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"fundwatch/holdings"
)

// Store is a SQLite-backed snapshot store. It satisfies
// report.SnapshotSource for reads and accepts whole-day inserts from
// the ingester.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the snapshot database at path and
// ensures the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// InsertSnapshot writes one fund's complete holdings for one date in a
// single transaction, together with its ingest_runs audit row. A
// report never observes a half-written day.
func (s *Store) InsertSnapshot(fund string, on time.Time, rows []holdings.SecurityRow, runID, sourceFile string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO financial_data
		(date, source_identifier, name, identifier, sedol, weight, coupon, par_value, market_value, local_currency, maturity, asset_breakdown)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	day := on.Format(holdings.DateLayout)
	for _, r := range rows {
		if _, err := stmt.Exec(
			day, fund, r.Name, r.Identifier, r.Sedol, r.Weight, r.Coupon,
			r.ParValue, r.MarketValue, r.LocalCurrency, r.Maturity, r.AssetType,
		); err != nil {
			return fmt.Errorf("insert %q: %w", r.Name, err)
		}
	}

	if _, err := tx.Exec(`
		INSERT INTO ingest_runs (run_id, source_file, fund, snapshot_date, rows, ingested_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		runID, sourceFile, fund, day, len(rows), time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("record ingest run: %w", err)
	}

	return tx.Commit()
}
