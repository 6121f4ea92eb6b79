package render

import (
	"fmt"
	"os"
	"strings"

	"fundwatch/report"
)

// Markdown renders the report as a Markdown document with a summary
// table and one table per event section.
func Markdown(rep *report.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s Change Report\n\n", rep.Fund)
	fmt.Fprintf(&b, "**Report Period:** %s\n\n", periodLine(rep))

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n|--------|-------|\n")
	for _, row := range summaryRows(rep) {
		fmt.Fprintf(&b, "| %s | %s |\n", row[0], row[1])
	}
	b.WriteString("\n---\n\n")

	writeSection(&b, "New Assets", assetHeader, newAssetRecords(rep), "No new assets this period")
	writeSection(&b, "Removed Assets", assetHeader, removedAssetRecords(rep), "No removed assets this period")
	writeSection(&b, "Par Value Changes", parHeader, parChangeRecords(rep), "No par value changes this period")

	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "**Disclosure:** %s\n", disclosure)

	return b.String()
}

// WriteMarkdown writes the Markdown rendering to path.
func WriteMarkdown(rep *report.Report, path string) error {
	return os.WriteFile(path, []byte(Markdown(rep)), 0644)
}

func writeSection(b *strings.Builder, title string, header []string, records [][]string, empty string) {
	fmt.Fprintf(b, "## %s\n\n", title)
	if len(records) == 0 {
		fmt.Fprintf(b, "*%s*\n\n", empty)
		return
	}

	fmt.Fprintf(b, "| %s |\n", strings.Join(header, " | "))
	b.WriteString("|" + strings.Repeat("--------|", len(header)) + "\n")
	for _, rec := range records {
		fmt.Fprintf(b, "| %s |\n", strings.Join(escapePipes(rec), " | "))
	}
	b.WriteString("\n")
}

func escapePipes(rec []string) []string {
	out := make([]string, len(rec))
	for i, s := range rec {
		out[i] = strings.ReplaceAll(s, "|", "\\|")
	}
	return out
}
