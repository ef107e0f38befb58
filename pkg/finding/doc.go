// Package finding provides the core data types shared by the build-log
// parser and every report writer: a single analyzer result and the
// ordered collection that reports are rendered from.
//
// Findings are immutable once parsed; ReportData preserves insertion
// order because it determines rendering order across all outputs.
//
// Usage:
//
//	data := finding.NewReportData()
//	data.Add(finding.Finding{
//	    Path: "Foo.java", Line: 10, Column: 5,
//	    Severity: "ERROR", Type: "NullAway", Message: "x may be null",
//	})
//	for _, issueType := range data.Types() {
//	    for _, f := range data.Findings(issueType) {
//	        fmt.Println(f.Location())
//	    }
//	}
package finding
