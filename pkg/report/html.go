package report

import (
	"html/template"
	"io"

	"github.com/epreport/epreport/pkg/finding"
	"github.com/epreport/epreport/pkg/rules"
)

// reportHTML holds both HTML report pages plus the partials they
// share. The head partial references the bundled assets by the names
// CopyAssets writes them under.
const reportHTML = `{{define "head"}}<head>
<meta charset="UTF-8">
<link rel="stylesheet" href="errorprone.css">
<script src="sorttable.js"></script>
</head>{{end}}

{{define "location"}}<td class="file_name"><a href="{{.SourceURL}}" target="codeWin">{{.Location}}</a></td>{{end}}

{{define "description"}}<td class="desc">{{.Message}}{{if .HasExtra}}<hr>{{if .HasReplacement}}Did you mean <br><code>{{.Replacement}}</code>{{else}}{{.Extra}}{{end}}{{end}}</td>{{end}}

{{define "flat"}}<!DOCTYPE html>
<html>
{{template "head"}}
<body>
<h1>{{.Title}}</h1>
<table class="sortable">
<thead>
<tr>
<th>File and line number</th>
<th>Severity</th>
<th>Issue type</th>
<th>Message</th>
</tr>
</thead>
{{range .Rows -}}
<tr>
{{template "location" .}}
<td class="severity_{{.Severity}}">{{.Severity}}</td>
<td class="tag">{{if .DocURL}}<a href="{{.DocURL}}" target="errWin">{{.Type}}</a>{{else}}<a target="errWin">{{.Type}}</a>{{end}}{{if .Tags}}<span class="tags"> {{.Tags}}</span>{{end}}</td>
{{template "description" .}}
</tr>
{{end -}}
</table>
</body>
</html>
{{end}}

{{define "grouped"}}<!DOCTYPE html>
<html>
{{template "head"}}
<body>
<h1>{{.Title}}</h1>
<div>
<h2>Summary</h2>
{{range .Groups -}}
<h3>{{.Level}}</h3>
<p>
{{- range $i, $e := .Entries}}{{if $i}} • {{end}}<a href="#name_{{$e.Type}}" class="severity_{{$e.Severity}}"><span class="tag">{{$e.Type}}</span></a>{{if $e.Tags}}<span class="tags"> {{$e.Tags}}</span>{{end}} ({{$e.Count}})
{{end -}}
</p>
{{end -}}
</div>
<hr>
<h2>Detailed report</h2>
{{range .Sections -}}
<h3 id="name_{{.Type}}">[{{.Severity}}] <span class="tag">{{.Type}}</span>{{if .Tags}}<span class="tags"> {{.Tags}}</span>{{end}} ({{.Count}}) {{if .DocURL}}<a href="{{.DocURL}}" target="errWin">🔗</a>{{end}}</h3>
<table class="sortable">
<thead>
<tr>
<th>File and line number</th>
<th>Message</th>
</tr>
</thead>
{{range .Rows -}}
<tr>
{{template "location" .}}
{{template "description" .}}
</tr>
{{end -}}
</table>
{{end -}}
</body>
</html>
{{end}}`

var htmlTemplates = template.Must(template.New("report").Parse(reportHTML))

// row is the per-finding view model shared by both HTML reports.
// SourceURL and DocURL are typed template.URL so configured link
// prefixes pass through verbatim instead of being filtered.
type row struct {
	Location       string
	SourceURL      template.URL
	Severity       string
	Type           string
	Tags           string
	DocURL         template.URL
	Message        string
	Extra          string
	HasExtra       bool
	Replacement    string
	HasReplacement bool
}

func newRow(baseURL string, f finding.Finding, docURL, tags string) row {
	r := row{
		Location:  f.Location(),
		SourceURL: template.URL(sourceURL(baseURL, f)),
		Severity:  f.Severity,
		Type:      f.Type,
		Tags:      tags,
		DocURL:    template.URL(docURL),
		Message:   f.Message,
		Extra:     f.Extra,
		HasExtra:  f.Extra != "",
	}
	if replacement, ok := f.DidYouMean(); ok {
		r.Replacement = replacement
		r.HasReplacement = true
	}
	return r
}

type flatPage struct {
	Title string
	Rows  []row
}

type groupedPage struct {
	Title    string
	Groups   []summaryGroup
	Sections []typeSection
}

// summaryGroup is one severity level of the summary. Levels with no
// findings are not rendered at all.
type summaryGroup struct {
	Level   string
	Entries []summaryEntry
}

type summaryEntry struct {
	Type     string
	Severity string
	Tags     string
	Count    int
}

// typeSection is one issue type of the detailed report.
type typeSection struct {
	Type     string
	Severity string
	Tags     string
	Count    int
	DocURL   template.URL
	Rows     []row
}

// HTMLWriter renders the flat report: one sortable table with a row
// per finding, issue types in first-seen order and findings in
// insertion order within each type.
type HTMLWriter struct {
	BaseURL  string
	Resolver rules.Resolver
	Title    string
}

var _ Writer = (*HTMLWriter)(nil)

// Filename returns the flat report filename.
func (w *HTMLWriter) Filename() string { return FlatHTMLFile }

// Render writes the flat HTML report. The severity cell and the issue
// type link use what the finding itself carries; only the tags come
// from the catalog.
func (w *HTMLWriter) Render(out io.Writer, data *finding.ReportData) error {
	page := flatPage{Title: w.Title}
	for _, issueType := range data.Types() {
		rule := resolve(w.Resolver, issueType)
		for _, f := range data.Findings(issueType) {
			page.Rows = append(page.Rows, newRow(w.BaseURL, f, f.URL, rule.Tags))
		}
	}
	return htmlTemplates.ExecuteTemplate(out, "flat", page)
}

// GroupedHTMLWriter renders the grouped report: a summary of issue
// types per severity level, then one detailed section per type.
type GroupedHTMLWriter struct {
	BaseURL  string
	Resolver rules.Resolver
	Title    string
}

var _ Writer = (*GroupedHTMLWriter)(nil)

// Filename returns the grouped report filename.
func (w *GroupedHTMLWriter) Filename() string { return GroupedHTMLFile }

// Render writes the grouped HTML report. Severity, tags and the
// documentation link all come from the catalog here, so the grouping
// stays stable even when individual findings disagree with it.
func (w *GroupedHTMLWriter) Render(out io.Writer, data *finding.ReportData) error {
	page := groupedPage{Title: w.Title}

	for _, level := range w.Resolver.Levels() {
		group := summaryGroup{Level: level}
		for _, issueType := range data.Types() {
			rule := resolve(w.Resolver, issueType)
			if rule.Severity != level {
				continue
			}
			group.Entries = append(group.Entries, summaryEntry{
				Type:     issueType,
				Severity: rule.Severity,
				Tags:     rule.Tags,
				Count:    len(data.Findings(issueType)),
			})
		}
		if len(group.Entries) > 0 {
			page.Groups = append(page.Groups, group)
		}
	}

	for _, issueType := range data.Types() {
		rule := resolve(w.Resolver, issueType)
		fs := data.Findings(issueType)
		section := typeSection{
			Type:     issueType,
			Severity: rule.Severity,
			Tags:     rule.Tags,
			Count:    len(fs),
			DocURL:   template.URL(rule.URL),
		}
		for _, f := range fs {
			section.Rows = append(section.Rows, newRow(w.BaseURL, f, f.URL, rule.Tags))
		}
		page.Sections = append(page.Sections, section)
	}

	return htmlTemplates.ExecuteTemplate(out, "grouped", page)
}
