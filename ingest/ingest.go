// Package ingest loads daily holdings files into the snapshot store.
//
// It accepts plain CSV files, xz-compressed CSVs, and zip archives of
// daily CSVs. Dates already present for a fund are skipped, never
// re-inserted, so re-running an ingest is harmless.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ulikunitz/xz"
	"github.com/xyproto/unzip"
	"go.uber.org/zap"

	"fundwatch/holdings"
	"fundwatch/id"
	"fundwatch/store"
)

// Ingestor writes holdings files into a store.
type Ingestor struct {
	Store *store.Store
	Log   *zap.SugaredLogger
}

// Result describes what one ingested snapshot day became.
type Result struct {
	RunID      string
	Fund       string
	Date       time.Time
	Rows       int
	SourceFile string
	Skipped    bool // date already present, nothing written
}

// File ingests one holdings file for the given fund. If on is zero the
// snapshot date is taken from the file's date column; a file may carry
// several dates, each of which becomes its own snapshot. Supported
// inputs: .csv, .csv.xz (or .xz), .zip.
func (ing *Ingestor) File(path, fund string, on time.Time) ([]Result, error) {
	switch {
	case strings.EqualFold(filepath.Ext(path), ".zip"):
		return ing.archive(path, fund, on)
	case strings.EqualFold(filepath.Ext(path), ".xz"):
		return ing.compressed(path, fund, on)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		rows, err := parseCSV(f)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return ing.insert(rows, path, fund, on)
	}
}

// compressed ingests an xz-compressed CSV.
func (ing *Ingestor) compressed(path, fund string, on time.Time) ([]Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := xz.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("open xz stream %s: %w", path, err)
	}

	rows, err := parseCSV(r)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return ing.insert(rows, path, fund, on)
}

// archive extracts a zip of daily CSVs to a scratch directory and
// ingests each one.
func (ing *Ingestor) archive(path, fund string, on time.Time) ([]Result, error) {
	dir, err := os.MkdirTemp("", "fundwatch-ingest-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	if err := unzip.Extract(path, dir); err != nil {
		return nil, fmt.Errorf("extract %s: %w", path, err)
	}

	var csvs []string
	err = filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(p), ".csv") {
			csvs = append(csvs, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(csvs)

	var results []Result
	for _, p := range csvs {
		f, err := os.Open(p)
		if err != nil {
			return nil, err
		}
		rows, err := parseCSV(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("parse %s (from %s): %w", filepath.Base(p), path, err)
		}
		res, err := ing.insert(rows, filepath.Base(p), fund, on)
		if err != nil {
			return nil, err
		}
		results = append(results, res...)
	}
	return results, nil
}

// insert groups rows by snapshot date and writes one transaction per
// day, skipping days the store already has.
func (ing *Ingestor) insert(rows []csvRow, source, fund string, on time.Time) ([]Result, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: no holdings rows", source)
	}

	byDate := map[time.Time][]holdings.SecurityRow{}
	for i, r := range rows {
		day := on
		if day.IsZero() {
			if r.Date == "" {
				return nil, fmt.Errorf("%s row %d: no date column and no explicit date given", source, i+1)
			}
			parsed, err := holdings.ParseDate(r.Date)
			if err != nil {
				return nil, fmt.Errorf("%s row %d: bad date %q: %w", source, i+1, r.Date, err)
			}
			day = parsed
		}
		byDate[day] = append(byDate[day], r.security())
	}

	days := make([]time.Time, 0, len(byDate))
	for day := range byDate {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	var results []Result
	for _, day := range days {
		secs := byDate[day]

		exists, err := ing.Store.HasDate(fund, day)
		if err != nil {
			return nil, err
		}
		if exists {
			ing.Log.Infow("snapshot already present, skipping",
				"fund", fund, "date", day.Format(holdings.DateLayout), "source", source)
			results = append(results, Result{
				Fund: fund, Date: day, SourceFile: source, Skipped: true,
			})
			continue
		}

		runID := id.NewRunID()
		if err := ing.Store.InsertSnapshot(fund, day, secs, runID, source); err != nil {
			return nil, fmt.Errorf("insert snapshot %s %s: %w", fund, day.Format(holdings.DateLayout), err)
		}

		ing.Log.Infow("snapshot ingested",
			"fund", fund, "date", day.Format(holdings.DateLayout),
			"rows", len(secs), "run_id", runID, "source", source)
		results = append(results, Result{
			RunID: runID, Fund: fund, Date: day, Rows: len(secs), SourceFile: source,
		})
	}
	return results, nil
}
