// Package report renders analyzer findings into the fixed report
// artifacts written to an output directory.
//
// The package is organized by artifact across multiple files:
//
// # Generator (report.go)
//
// Generator, Config, Writer. Generate copies the static assets into
// the output directory and then writes every artifact in a fixed
// order: flat HTML, grouped HTML, TSV, Markdown, and any configured
// custom templates. Filenames are fixed so reruns overwrite in place.
//
// # HTML Reports (html.go)
//
// HTMLWriter renders one sortable table with a row per finding.
// GroupedHTMLWriter renders a severity summary followed by one
// detailed section per issue type.
//
// # Aggregate Formats (tsv.go, markdown.go)
//
// TSVWriter renders one tab-separated row per issue type.
// MarkdownWriter renders a pipe table with a row per finding;
// EscapeMarkdown is its escaping helper.
//
// # Custom Templates (template.go)
//
// TemplateWriter, TemplateSpec, TemplateContext. Extra artifacts are
// rendered through user-supplied text/template bodies with the sprig
// function map plus report helpers.
//
// All writers consume the same finding.ReportData and preserve its
// order; none of them mutate it. Output is deterministic: generating
// twice from the same data produces byte-identical files, except for
// the timestamp in the HTML titles.
package report
