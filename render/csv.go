package render

import (
	"encoding/csv"
	"fmt"
	"os"

	"fundwatch/report"
)

var (
	assetHeader = []string{"Date", "Name", "Last Price", "Asset Type"}
	parHeader   = []string{"Date", "Name", "Par Change", "Asset Type"}
)

// WriteCSV writes the report as CSV: one file per non-empty event
// section plus a combined file with a summary header block. It returns
// the paths created.
func WriteCSV(rep *report.Report, prefix string) ([]string, error) {
	stamp := day(rep.EndDate)
	var created []string

	if len(rep.NewAssets) > 0 {
		path := fmt.Sprintf("%s_%s_new_assets_%s.csv", prefix, rep.Fund, stamp)
		if err := writeRecords(path, assetHeader, newAssetRecords(rep)); err != nil {
			return nil, err
		}
		created = append(created, path)
	}
	if len(rep.RemovedAssets) > 0 {
		path := fmt.Sprintf("%s_%s_removed_assets_%s.csv", prefix, rep.Fund, stamp)
		if err := writeRecords(path, assetHeader, removedAssetRecords(rep)); err != nil {
			return nil, err
		}
		created = append(created, path)
	}
	if len(rep.ParChanges) > 0 {
		path := fmt.Sprintf("%s_%s_par_changes_%s.csv", prefix, rep.Fund, stamp)
		if err := writeRecords(path, parHeader, parChangeRecords(rep)); err != nil {
			return nil, err
		}
		created = append(created, path)
	}

	combined := fmt.Sprintf("%s_%s_combined_%s.csv", prefix, rep.Fund, stamp)
	if err := writeCombined(rep, combined); err != nil {
		return nil, err
	}
	created = append(created, combined)

	return created, nil
}

func newAssetRecords(rep *report.Report) [][]string {
	var out [][]string
	for _, e := range rep.NewAssets {
		out = append(out, []string{day(e.Date), e.Name, e.LastPrice.String(), e.AssetType})
	}
	return out
}

func removedAssetRecords(rep *report.Report) [][]string {
	var out [][]string
	for _, e := range rep.RemovedAssets {
		out = append(out, []string{day(e.Date), e.Name, e.LastPrice.String(), e.AssetType})
	}
	return out
}

func parChangeRecords(rep *report.Report) [][]string {
	var out [][]string
	for _, e := range rep.ParChanges {
		out = append(out, []string{day(e.Date), e.Name, signedDelta(e.ParDelta), e.AssetType})
	}
	return out
}

func writeRecords(path string, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeCombined emits the report as one file: commented summary block
// followed by each section.
func writeCombined(rep *report.Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "# Change Report for %s\n", rep.Fund)
	fmt.Fprintf(f, "# Report Period: %s\n\n", periodLine(rep))

	fmt.Fprintln(f, "# SUMMARY")
	for _, row := range summaryRows(rep) {
		fmt.Fprintf(f, "%s,%s\n", row[0], row[1])
	}
	fmt.Fprintln(f)

	sections := []struct {
		title   string
		header  []string
		records [][]string
	}{
		{"# NEW ASSETS", assetHeader, newAssetRecords(rep)},
		{"# REMOVED ASSETS", assetHeader, removedAssetRecords(rep)},
		{"# PAR VALUE CHANGES", parHeader, parChangeRecords(rep)},
	}

	w := csv.NewWriter(f)
	for _, sec := range sections {
		if len(sec.records) == 0 {
			continue
		}
		fmt.Fprintln(f, sec.title)
		if err := w.Write(sec.header); err != nil {
			return err
		}
		if err := w.WriteAll(sec.records); err != nil {
			return err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return err
		}
		fmt.Fprintln(f)
	}

	return nil
}
