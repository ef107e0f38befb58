package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/epreport/epreport/pkg/finding"
	"github.com/epreport/epreport/pkg/rules"
)

// TSVWriter renders the per-type aggregate report as tab-separated
// values, one row per issue type in first-seen order.
type TSVWriter struct {
	Resolver rules.Resolver
}

var _ Writer = (*TSVWriter)(nil)

// Filename returns the TSV report filename.
func (w *TSVWriter) Filename() string { return TSVFile }

// Render writes a header row followed by one row per issue type: the
// type name with catalog tags appended, the finding count, the catalog
// severity and the documentation URL. Types with no catalog URL get an
// empty last field.
func (w *TSVWriter) Render(out io.Writer, data *finding.ReportData) error {
	cw := csv.NewWriter(out)
	cw.Comma = '\t'

	if err := cw.Write([]string{"Issue type", "Count", "Severity", "URL"}); err != nil {
		return err
	}
	for _, issueType := range data.Types() {
		rule := resolve(w.Resolver, issueType)
		name := issueType
		if rule.Tags != "" {
			name += " " + rule.Tags
		}
		count := strconv.Itoa(len(data.Findings(issueType)))
		if err := cw.Write([]string{name, count, rule.Severity, rule.URL}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
