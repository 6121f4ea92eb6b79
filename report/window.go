package report

import "time"

// selectWindow picks the diff chain for a lookback of N trading days:
// the last N+1 dates. dates must be ascending; any date with a
// persisted snapshot counts as a trading day, calendar gaps are
// irrelevant.
func selectWindow(fund string, dates []time.Time, lookback int) ([]time.Time, error) {
	if len(dates) == 0 {
		return nil, &UnknownFundError{Fund: fund}
	}
	need := lookback + 1
	if len(dates) < need {
		return nil, &InsufficientDataError{Fund: fund, Need: need, Have: len(dates)}
	}
	return dates[len(dates)-need:], nil
}
