package report

import (
	"fmt"
	"sort"
	"time"

	"fundwatch/holdings"
)

// Engine computes change reports from a snapshot source. It holds no
// state of its own: every Run is an independent pass over the store,
// so one Engine may serve concurrent requests.
type Engine struct {
	Source SnapshotSource
}

// NewEngine returns an engine reading from src.
func NewEngine(src SnapshotSource) *Engine {
	return &Engine{Source: src}
}

// Run builds the change report for fund over the last lookback trading
// days. It either returns a complete report or an error; there are no
// partial results. Failures worth matching on are *UnknownFundError
// and *InsufficientDataError.
func (e *Engine) Run(fund string, lookback int) (Report, error) {
	if lookback < 1 {
		return Report{}, fmt.Errorf("lookback must be at least 1 trading day, got %d", lookback)
	}

	dates, err := e.Source.DistinctDates(fund)
	if err != nil {
		return Report{}, fmt.Errorf("list dates for %s: %w", fund, err)
	}

	window, err := selectWindow(fund, dates, lookback)
	if err != nil {
		return Report{}, err
	}

	snaps := make([]holdings.Snapshot, len(window))
	for i, on := range window {
		snaps[i], err = e.Source.Snapshot(fund, on)
		if err != nil {
			return Report{}, fmt.Errorf("snapshot %s on %s: %w", fund, on.Format(holdings.DateLayout), err)
		}
	}

	rep := Report{
		Fund:      fund,
		StartDate: window[0],
		EndDate:   window[len(window)-1],
	}

	for i := 1; i < len(window); i++ {
		d := diffPair(window[i-1], window[i], snaps[i-1], snaps[i])
		rep.NewAssets = append(rep.NewAssets, d.News...)
		rep.RemovedAssets = append(rep.RemovedAssets, d.Removals...)
		rep.ParChanges = append(rep.ParChanges, d.ParChanges...)
	}

	sortEvents(&rep)
	rep.Summary = summarize(snaps[len(snaps)-1], &rep)

	return rep, nil
}

// sortEvents orders each event slice by date descending, name
// ascending, so reports are stable and read newest-first.
func sortEvents(rep *Report) {
	sort.Slice(rep.NewAssets, func(i, j int) bool {
		return eventLess(rep.NewAssets[i].Date, rep.NewAssets[i].Name, rep.NewAssets[j].Date, rep.NewAssets[j].Name)
	})
	sort.Slice(rep.RemovedAssets, func(i, j int) bool {
		return eventLess(rep.RemovedAssets[i].Date, rep.RemovedAssets[i].Name, rep.RemovedAssets[j].Date, rep.RemovedAssets[j].Name)
	})
	sort.Slice(rep.ParChanges, func(i, j int) bool {
		return eventLess(rep.ParChanges[i].Date, rep.ParChanges[i].Name, rep.ParChanges[j].Date, rep.ParChanges[j].Name)
	})
}

func eventLess(di time.Time, ni string, dj time.Time, nj string) bool {
	if !di.Equal(dj) {
		return di.After(dj)
	}
	return ni < nj
}

// summarize aggregates the end-date snapshot. Rows are summed in
// sorted name order so float accumulation is reproducible.
func summarize(end holdings.Snapshot, rep *Report) Summary {
	s := Summary{
		SecuritiesCount:    len(end),
		NewAssetsCount:     len(rep.NewAssets),
		RemovedAssetsCount: len(rep.RemovedAssets),
		ParChangesCount:    len(rep.ParChanges),
	}
	for _, name := range end.SortedNames() {
		row := end[name]
		s.TotalMarketValue += row.MarketValue
		s.TotalParValue += row.ParValue
	}
	return s
}
