// Package render writes finished change reports as CSV, Markdown, or
// HTML. It formats, never computes: every number comes straight off
// the report value.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fundwatch/holdings"
	"fundwatch/report"
)

const disclosure = "All information displayed here is public and is not in any way to be construed as " +
	"investment advice or solicitation. Data is sourced from public filings and we make no claims to " +
	"veracity or accuracy of the data. It is presented for academic and research purposes only."

func day(t time.Time) string {
	return t.Format(holdings.DateLayout)
}

// money renders a currency amount with thousands separators, e.g.
// $75,247,354.45. Nothing in the dependency set groups digits, so the
// grouping is done here.
func money(v float64) string {
	return "$" + groupDigits(strconv.FormatFloat(v, 'f', 2, 64))
}

// signedDelta renders a par change with an explicit sign: +1,500.00.
func signedDelta(v float64) string {
	s := groupDigits(strconv.FormatFloat(v, 'f', 2, 64))
	if v > 0 {
		return "+" + s
	}
	return s
}

func groupDigits(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String()
	if hasFrac {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

// summaryRows returns the summary block as label/value pairs in
// display order, shared by every output format.
func summaryRows(rep *report.Report) [][2]string {
	return [][2]string{
		{"Total Market Value", money(rep.Summary.TotalMarketValue)},
		{"Total Par Value", money(rep.Summary.TotalParValue)},
		{"Securities Count", strconv.Itoa(rep.Summary.SecuritiesCount)},
		{"New Assets", strconv.Itoa(rep.Summary.NewAssetsCount)},
		{"Removed Assets", strconv.Itoa(rep.Summary.RemovedAssetsCount)},
		{"Par Value Changes", strconv.Itoa(rep.Summary.ParChangesCount)},
	}
}

func periodLine(rep *report.Report) string {
	return fmt.Sprintf("%s to %s", day(rep.StartDate), day(rep.EndDate))
}
