package report

import "fmt"

// UnknownFundError reports a fund with no snapshots at all.
type UnknownFundError struct {
	Fund string
}

func (e *UnknownFundError) Error() string {
	return fmt.Sprintf("fund %q has no snapshots", e.Fund)
}

// InsufficientDataError reports a fund with too few trading dates to
// form the requested window. The caller may reduce the lookback and
// retry; the engine never silently truncates.
type InsufficientDataError struct {
	Fund string
	Need int // trading dates required (lookback + 1)
	Have int // trading dates available
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("fund %q has %d trading dates, need %d for the requested window", e.Fund, e.Have, e.Need)
}
