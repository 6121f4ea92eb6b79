package ingest

import (
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"fundwatch/holdings"
)

func init() {
	// Source files ship headers like "Par Value" or "PAR VALUE"; match
	// them against the lowercase underscore tags below.
	gocsv.SetHeaderNormalizer(func(h string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), " ", "_")
	})
}

// csvRow mirrors one line of a daily holdings file.
type csvRow struct {
	Date          string       `csv:"date"`
	Name          string       `csv:"name"`
	Identifier    string       `csv:"identifier"`
	Sedol         string       `csv:"sedol"`
	Weight        coercedFloat `csv:"weight"`
	Coupon        string       `csv:"coupon"`
	ParValue      coercedFloat `csv:"par_value"`
	MarketValue   coercedFloat `csv:"market_value"`
	LocalCurrency string       `csv:"local_currency"`
	Maturity      string       `csv:"maturity"`
	AssetType     string       `csv:"asset_breakdown"`
}

func (r csvRow) security() holdings.SecurityRow {
	return holdings.SecurityRow{
		Name:          strings.TrimSpace(r.Name),
		Identifier:    strings.TrimSpace(r.Identifier),
		Sedol:         strings.TrimSpace(r.Sedol),
		AssetType:     strings.TrimSpace(r.AssetType),
		Coupon:        strings.TrimSpace(r.Coupon),
		Maturity:      strings.TrimSpace(r.Maturity),
		LocalCurrency: strings.TrimSpace(r.LocalCurrency),
		Weight:        float64(r.Weight),
		ParValue:      float64(r.ParValue),
		MarketValue:   float64(r.MarketValue),
	}
}

// coercedFloat parses numeric columns the way the filings actually
// arrive: thousands separators, dollar signs, and placeholder values
// like "-" or "N/A". Unparseable values coerce to zero rather than
// failing the whole file.
type coercedFloat float64

func (f *coercedFloat) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	if s == "" || s == "-" || strings.EqualFold(s, "n/a") {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = coercedFloat(v)
	return nil
}

func parseCSV(r io.Reader) ([]csvRow, error) {
	var rows []csvRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
