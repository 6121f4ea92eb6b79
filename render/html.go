package render

import (
	"html/template"
	"os"

	"fundwatch/report"
)

// htmlPage is the publish-ready document: self-contained styling so it
// can be pasted into a newsletter as-is.
var htmlPage = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<title>Change Report - {{.Fund}}</title>
	<style>
		body { font-family: -apple-system, "Segoe UI", Roboto, Arial, sans-serif; max-width: 900px; margin: 40px auto; padding: 0 20px; color: #333; line-height: 1.6; }
		h1 { color: #2c3e50; border-bottom: 3px solid #3498db; padding-bottom: 10px; }
		h2 { color: #34495e; margin-top: 30px; border-bottom: 2px solid #ecf0f1; padding-bottom: 8px; }
		.summary { background-color: #f8f9fa; border-left: 4px solid #3498db; padding: 15px 20px; margin: 20px 0; }
		table { width: 100%; border-collapse: collapse; margin: 20px 0; }
		th { background-color: #3498db; color: white; padding: 12px; text-align: left; }
		td { padding: 10px 12px; border-bottom: 1px solid #ecf0f1; }
		.no-data { color: #95a5a6; font-style: italic; padding: 20px; text-align: center; }
		.footer { margin-top: 40px; padding-top: 20px; border-top: 1px solid #ecf0f1; font-size: 0.9em; color: #7f8c8d; }
	</style>
</head>
<body>
	<h1>{{.Fund}} Change Report</h1>

	<div class="summary">
		<strong>Report Period:</strong> {{.Period}}
		<table>
			{{- range .Summary}}
			<tr><td>{{index . 0}}</td><td><strong>{{index . 1}}</strong></td></tr>
			{{- end}}
		</table>
	</div>
	{{- range .Sections}}

	<h2>{{.Title}}</h2>
	{{- if .Records}}
	<table>
		<thead>
			<tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr>
		</thead>
		<tbody>
			{{- range .Records}}
			<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
			{{- end}}
		</tbody>
	</table>
	{{- else}}
	<div class="no-data">{{.Empty}}</div>
	{{- end}}
	{{- end}}

	<div class="footer">
		<strong>Disclosure:</strong> {{.Disclosure}}
	</div>
</body>
</html>
`))

type htmlSection struct {
	Title   string
	Header  []string
	Records [][]string
	Empty   string
}

type htmlData struct {
	Fund       string
	Period     string
	Summary    [][2]string
	Sections   []htmlSection
	Disclosure string
}

// WriteHTML writes the report as a standalone HTML document at path.
func WriteHTML(rep *report.Report, path string) error {
	data := htmlData{
		Fund:       rep.Fund,
		Period:     periodLine(rep),
		Summary:    summaryRows(rep),
		Disclosure: disclosure,
		Sections: []htmlSection{
			{"New Assets", assetHeader, newAssetRecords(rep), "No new assets this period"},
			{"Removed Assets", assetHeader, removedAssetRecords(rep), "No removed assets this period"},
			{"Par Value Changes", parHeader, parChangeRecords(rep), "No par value changes this period"},
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := htmlPage.Execute(f, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
