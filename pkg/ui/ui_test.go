package ui

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/epreport/epreport/pkg/finding"
	"github.com/epreport/epreport/pkg/rules"
)

// ansiPattern matches any ANSI CSI escape sequence:
//
//	ESC[ ... final_byte   (cursor movement, colors, erase)
var ansiPattern = regexp.MustCompile(`\x1b\[[\x30-\x3f]*[\x20-\x2f]*[\x40-\x7e]`)

// assertNoANSI fails the test if buf contains any ANSI escape sequence.
// Test runner output is piped, so nothing here may emit color codes.
func assertNoANSI(t *testing.T, label string, buf *bytes.Buffer) {
	t.Helper()
	if loc := ansiPattern.FindIndex(buf.Bytes()); loc != nil {
		// Show a snippet around the match for context.
		start := loc[0] - 20
		if start < 0 {
			start = 0
		}
		end := loc[1] + 20
		if end > buf.Len() {
			end = buf.Len()
		}
		t.Errorf("%s: ANSI escape at byte %d: %q", label, loc[0], buf.Bytes()[start:end])
	}
}

func testCatalog() *rules.Catalog {
	c := rules.NewCatalog(rules.SeverityError, rules.SeverityWarning, rules.SeveritySuggestion, rules.SeverityUnknown)
	c.Set("NullAway", rules.Rule{Severity: rules.SeverityError, Tags: "[Nullness]"})
	c.Set("StringSplitter", rules.Rule{Severity: rules.SeverityWarning})
	c.Set("BadImport", rules.Rule{Severity: rules.SeverityWarning, Tags: "[Style]"})
	return c
}

func testFindings() *finding.ReportData {
	data := finding.NewReportData()
	data.Add(finding.Finding{Type: "StringSplitter", Path: "a.java", Line: 1, Column: 1, Severity: "WARNING"})
	data.Add(finding.Finding{Type: "NullAway", Path: "b.java", Line: 2, Column: 1, Severity: "ERROR"})
	data.Add(finding.Finding{Type: "NullAway", Path: "c.java", Line: 3, Column: 1, Severity: "ERROR"})
	data.Add(finding.Finding{Type: "Mystery", Path: "d.java", Line: 4, Column: 1, Severity: "WARNING"})
	return data
}

// TestBuildSummary tests per-level tallies over the catalog order
func TestBuildSummary(t *testing.T) {
	s := BuildSummary(testFindings(), testCatalog(), []string{"out/errorprone1.html"})

	if s.Total != 4 {
		t.Errorf("Total = %d, want 4", s.Total)
	}
	if s.Types != 3 {
		t.Errorf("Types = %d, want 3", s.Types)
	}

	want := []LevelCount{
		{Level: rules.SeverityError, Types: 1, Findings: 2},
		{Level: rules.SeverityWarning, Types: 1, Findings: 1},
		{Level: rules.SeverityUnknown, Types: 1, Findings: 1},
	}
	if len(s.Levels) != len(want) {
		t.Fatalf("got %d levels, want %d: %+v", len(s.Levels), len(want), s.Levels)
	}
	for i, lc := range s.Levels {
		if lc != want[i] {
			t.Errorf("Levels[%d] = %+v, want %+v", i, lc, want[i])
		}
	}
}

// TestBuildSummaryOmitsEmptyLevels tests that SUGGESTION (no findings) is skipped
func TestBuildSummaryOmitsEmptyLevels(t *testing.T) {
	s := BuildSummary(testFindings(), testCatalog(), nil)
	for _, lc := range s.Levels {
		if lc.Level == rules.SeveritySuggestion {
			t.Errorf("expected SUGGESTION level to be omitted, got %+v", lc)
		}
	}
}

// TestBuildSummaryUncatalogued tests that unknown issue types count as UNKNOWN
func TestBuildSummaryUncatalogued(t *testing.T) {
	data := finding.NewReportData()
	data.Add(finding.Finding{Type: "Mystery", Path: "d.java", Line: 4, Column: 1, Severity: "WARNING"})

	s := BuildSummary(data, testCatalog(), nil)
	if len(s.Levels) != 1 {
		t.Fatalf("got %d levels, want 1: %+v", len(s.Levels), s.Levels)
	}
	if s.Levels[0].Level != rules.SeverityUnknown {
		t.Errorf("level = %q, want %q", s.Levels[0].Level, rules.SeverityUnknown)
	}
}

// TestBuildSummaryNilData tests the nil-data guard
func TestBuildSummaryNilData(t *testing.T) {
	s := BuildSummary(nil, testCatalog(), []string{"out/errorprone.tsv"})
	if s.Total != 0 || s.Types != 0 || len(s.Levels) != 0 {
		t.Errorf("expected empty summary for nil data, got %+v", s)
	}
	if len(s.ReportPaths) != 1 {
		t.Errorf("expected report paths to be kept, got %v", s.ReportPaths)
	}
}

// TestSummaryPrint tests the summary box content
func TestSummaryPrint(t *testing.T) {
	SetNoColor(true)

	var buf bytes.Buffer
	s := BuildSummary(testFindings(), testCatalog(), []string{"out/errorprone1.html", "out/errorprone.tsv"})
	s.Writer = &buf
	PrintSummary(s)

	out := buf.String()
	for _, want := range []string{
		"Findings:",
		"Issue types:",
		"ERROR:",
		"2 in 1 types",
		"out/errorprone1.html",
		"out/errorprone.tsv",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output missing %q:\n%s", want, out)
		}
	}
	assertNoANSI(t, "Summary.Print", &buf)
}

// TestSummaryPrintAlignment tests that every box line has the same width
func TestSummaryPrintAlignment(t *testing.T) {
	SetNoColor(true)

	var buf bytes.Buffer
	s := BuildSummary(testFindings(), testCatalog(), nil)
	s.Writer = &buf
	PrintSummary(s)

	for _, line := range strings.Split(buf.String(), "\n") {
		if !strings.HasPrefix(line, "  |") && !strings.HasPrefix(line, "  +") {
			continue
		}
		if n := len([]rune(line)); n != 52 {
			t.Errorf("box line width = %d, want 52: %q", n, line)
		}
	}
}

// TestSummaryPrintNoFindings tests the degenerate box for an empty run
func TestSummaryPrintNoFindings(t *testing.T) {
	SetNoColor(true)

	var buf bytes.Buffer
	s := BuildSummary(finding.NewReportData(), testCatalog(), nil)
	s.Writer = &buf
	PrintSummary(s)

	out := buf.String()
	if !strings.Contains(out, "Findings:") {
		t.Errorf("expected totals row even with no findings:\n%s", out)
	}
	if strings.Contains(out, "ERROR:") {
		t.Errorf("expected no per-level rows for an empty run:\n%s", out)
	}
	if strings.Contains(out, "Reports:") {
		t.Errorf("expected no report list without paths:\n%s", out)
	}
}

// TestSummaryPrintSilent tests that silent mode suppresses the box
func TestSummaryPrintSilent(t *testing.T) {
	SetSilent(true)
	defer SetSilent(false)

	var buf bytes.Buffer
	s := BuildSummary(testFindings(), testCatalog(), nil)
	s.Writer = &buf
	PrintSummary(s)

	if buf.Len() != 0 {
		t.Errorf("expected no output in silent mode, got %q", buf.String())
	}
}

// TestSilentToggle tests SetSilent/IsSilent round trip
func TestSilentToggle(t *testing.T) {
	SetSilent(true)
	if !IsSilent() {
		t.Error("expected IsSilent true after SetSilent(true)")
	}
	SetSilent(false)
	if IsSilent() {
		t.Error("expected IsSilent false after SetSilent(false)")
	}
}

// TestNoColorFlag tests SetNoColor/IsNoColor
func TestNoColorFlag(t *testing.T) {
	SetNoColor(true)
	if !IsNoColor() {
		t.Error("expected IsNoColor true after SetNoColor(true)")
	}
}

// TestSeverityStyle tests severity style mapping
func TestSeverityStyle(t *testing.T) {
	levels := []string{
		rules.SeverityError,
		rules.SeverityWarning,
		rules.SeveritySuggestion,
		rules.SeverityUnknown,
		"bogus",
	}
	for _, level := range levels {
		// Should not panic for any level
		_ = SeverityStyle(level)
	}
}

// TestPrintHelpers tests the stderr helpers
func TestPrintHelpers(t *testing.T) {
	// These should not panic
	PrintSection("Reports")
	PrintSuccess("wrote errorprone1.html")
	PrintError("cannot open output dir")
	PrintWarning("catalog entry missing")
	PrintInfo("4 findings across 3 issue types")
	PrintDivider()
}
