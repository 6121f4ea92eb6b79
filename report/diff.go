package report

import (
	"time"

	"fundwatch/holdings"
)

// pairDiff holds the events from one consecutive date pair.
type pairDiff struct {
	News       []NewAsset
	Removals   []RemovedAsset
	ParChanges []ParChange
}

// diffPair compares the snapshots of two consecutive trading days.
// It is a pure function of its inputs:
//
//   - names in curr but not prev become NewAsset dated dCurr
//   - names in prev but not curr become RemovedAsset dated dPrev,
//     priced from the prev row (the last day the security was held)
//   - names in both with differing par value become ParChange dated
//     dCurr with delta curr - prev
//
// Par comparison is exact float inequality: the source filings carry
// no tolerance, so any nonzero delta is a reported move. A row whose
// asset type changes without a par move produces no event.
func diffPair(dPrev, dCurr time.Time, prev, curr holdings.Snapshot) pairDiff {
	var d pairDiff

	for name, row := range curr {
		prevRow, held := prev[name]
		if !held {
			d.News = append(d.News, NewAsset{
				Date:      dCurr,
				Name:      name,
				LastPrice: holdings.LastPrice(row),
				AssetType: row.AssetType,
			})
			continue
		}
		if row.ParValue != prevRow.ParValue {
			d.ParChanges = append(d.ParChanges, ParChange{
				Date:      dCurr,
				Name:      name,
				ParDelta:  row.ParValue - prevRow.ParValue,
				AssetType: row.AssetType,
			})
		}
	}

	for name, row := range prev {
		if _, held := curr[name]; !held {
			d.Removals = append(d.Removals, RemovedAsset{
				Date:      dPrev,
				Name:      name,
				LastPrice: holdings.LastPrice(row),
				AssetType: row.AssetType,
			})
		}
	}

	return d
}
