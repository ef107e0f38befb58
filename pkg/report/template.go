package report

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/epreport/epreport/pkg/bufpool"
	"github.com/epreport/epreport/pkg/finding"
	"github.com/epreport/epreport/pkg/jsonutil"
	"github.com/epreport/epreport/pkg/rules"
)

// Compile-time interface check.
var _ Writer = (*TemplateWriter)(nil)

// TemplateSpec configures one extra artifact rendered through a user
// template.
type TemplateSpec struct {
	// Filename is the output filename inside the output directory.
	Filename string

	// Path is the path to a template file on disk.
	Path string

	// Text is an inline template body (alternative to Path).
	Text string

	// BuiltIn is the name of a bundled template: "summary-text" or
	// "types-csv".
	BuiltIn string
}

// builtInTemplates contains pre-defined templates for common extra
// artifacts.
var builtInTemplates = map[string]string{
	"summary-text": `{{ .Title }}

Findings: {{ .Total }} across {{ len .Types }} issue types
{{ range .Types }}[{{ .Severity }}] {{ .Name }}{{ if .Tags }} {{ .Tags }}{{ end }}: {{ .Count }}
{{ end }}`,

	"types-csv": `Issue type,Count,Severity,URL
{{- range .Types }}
{{ .Name }},{{ .Count }},{{ .Severity }},{{ .URL }}
{{- end }}
`,
}

// TemplateContext is the data a user template renders from.
type TemplateContext struct {
	// Title is the report title including the generation timestamp.
	Title string

	// Total is the number of findings across all issue types.
	Total int

	// Types lists every issue type in first-seen order.
	Types []TemplateType
}

// TemplateType is one issue type with its catalog rule and findings.
type TemplateType struct {
	Name     string
	Severity string
	Tags     string
	URL      string
	Count    int
	Findings []finding.Finding
}

// TemplateWriter renders one TemplateSpec using Go templates.
// Sprig functions and report-specific functions are available in
// template bodies.
type TemplateWriter struct {
	Spec     TemplateSpec
	BaseURL  string
	Resolver rules.Resolver
	Title    string
}

// Filename returns the filename the spec was configured with.
func (w *TemplateWriter) Filename() string { return w.Spec.Filename }

// Render parses the template from whichever source the spec sets and
// executes it against the TemplateContext. The output is buffered so a
// failing template does not leave a half-written artifact behind.
func (w *TemplateWriter) Render(out io.Writer, data *finding.ReportData) error {
	text, err := w.Spec.body()
	if err != nil {
		return err
	}

	tmpl, err := template.New(w.Spec.Filename).Funcs(w.funcMap()).Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", w.Spec.Filename, err)
	}

	buf := bufpool.Get()
	defer bufpool.Put(buf)
	if err := tmpl.Execute(buf, w.context(data)); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", w.Spec.Filename, err)
	}

	_, err = buf.WriteTo(out)
	return err
}

// body returns the template text from the configured source.
func (s TemplateSpec) body() (string, error) {
	switch {
	case s.Path != "":
		b, err := os.ReadFile(s.Path)
		if err != nil {
			return "", fmt.Errorf("failed to read template file: %w", err)
		}
		return string(b), nil

	case s.Text != "":
		return s.Text, nil

	case s.BuiltIn != "":
		text, ok := builtInTemplates[s.BuiltIn]
		if !ok {
			return "", fmt.Errorf("unknown built-in template: %s (available: summary-text, types-csv)", s.BuiltIn)
		}
		return text, nil

	default:
		return "", fmt.Errorf("template %s: no source set, want Path, Text or BuiltIn", s.Filename)
	}
}

// funcMap builds the template function map: sprig plus report helpers.
func (w *TemplateWriter) funcMap() template.FuncMap {
	funcMap := sprig.TxtFuncMap()
	funcMap["escapeMd"] = EscapeMarkdown
	funcMap["location"] = finding.Finding.Location
	funcMap["sourceURL"] = func(f finding.Finding) string { return sourceURL(w.BaseURL, f) }
	funcMap["json"] = tmplToJSON
	funcMap["prettyJSON"] = tmplPrettyJSON
	return funcMap
}

// context flattens the report data for template access.
func (w *TemplateWriter) context(data *finding.ReportData) *TemplateContext {
	ctx := &TemplateContext{Title: w.Title, Total: data.Total()}
	for _, issueType := range data.Types() {
		rule := resolve(w.Resolver, issueType)
		fs := data.Findings(issueType)
		ctx.Types = append(ctx.Types, TemplateType{
			Name:     issueType,
			Severity: rule.Severity,
			Tags:     rule.Tags,
			URL:      rule.URL,
			Count:    len(fs),
			Findings: fs,
		})
	}
	return ctx
}

// Template helper functions

// tmplToJSON converts a value to a JSON string.
func tmplToJSON(v any) string {
	b, err := jsonutil.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

// tmplPrettyJSON converts a value to an indented JSON string.
func tmplPrettyJSON(v any) string {
	b, err := jsonutil.MarshalIndent(v, "  ")
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}
