package finding

// ReportData is an ordered mapping from issue type to the findings of
// that type. Types iterate in first-seen order and findings keep their
// insertion order; the writers never resort, so this order is the
// rendering order in every report.
type ReportData struct {
	order    []string
	findings map[string][]Finding
}

// NewReportData returns an empty ReportData.
func NewReportData() *ReportData {
	return &ReportData{findings: make(map[string][]Finding)}
}

// Add appends f under its issue type, registering the type on first use.
func (d *ReportData) Add(f Finding) {
	if _, seen := d.findings[f.Type]; !seen {
		d.order = append(d.order, f.Type)
	}
	d.findings[f.Type] = append(d.findings[f.Type], f)
}

// Types returns the issue types in first-seen order. The slice is
// shared; callers must not modify it.
func (d *ReportData) Types() []string {
	return d.order
}

// Findings returns the findings recorded for issueType in insertion
// order, or nil if the type was never added.
func (d *ReportData) Findings(issueType string) []Finding {
	return d.findings[issueType]
}

// Len returns the number of distinct issue types.
func (d *ReportData) Len() int {
	return len(d.order)
}

// Total returns the number of findings across all issue types.
func (d *ReportData) Total() int {
	n := 0
	for _, fs := range d.findings {
		n += len(fs)
	}
	return n
}
