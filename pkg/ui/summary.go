package ui

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/epreport/epreport/pkg/finding"
	"github.com/epreport/epreport/pkg/rules"
)

// LevelCount is one severity level's share of a run.
type LevelCount struct {
	Level    string
	Types    int
	Findings int
}

// Summary aggregates one analyzer run for console display.
type Summary struct {
	Total       int          // findings across all issue types
	Types       int          // distinct issue types
	Levels      []LevelCount // per-severity tallies in catalog order
	ReportPaths []string     // files the generator wrote
	Writer      io.Writer    // defaults to os.Stderr
}

// BuildSummary tallies findings per severity level the same way the
// grouped report's summary section does: the catalog decides the
// level, and uncatalogued types count as UNKNOWN. Levels with no
// findings are omitted.
func BuildSummary(data *finding.ReportData, res rules.Resolver, reportPaths []string) Summary {
	s := Summary{ReportPaths: reportPaths}
	if data == nil {
		return s
	}
	s.Total = data.Total()
	s.Types = data.Len()

	for _, level := range res.Levels() {
		lc := LevelCount{Level: level}
		for _, issueType := range data.Types() {
			severity := rules.SeverityUnknown
			if r, ok := res.Lookup(issueType); ok {
				severity = r.Severity
			}
			if severity != level {
				continue
			}
			lc.Types++
			lc.Findings += len(data.Findings(issueType))
		}
		if lc.Types > 0 {
			s.Levels = append(s.Levels, lc)
		}
	}
	return s
}

// PrintSummary writes the summary box to the configured writer (stderr
// by default). Silent mode suppresses it entirely.
func PrintSummary(s Summary) {
	if IsSilent() {
		return
	}
	w := s.Writer
	if w == nil {
		w = os.Stderr
	}

	// Simple fixed-width ASCII box to avoid Unicode width issues.
	const boxWidth = 50
	border := "+" + strings.Repeat("-", boxWidth-2) + "+"

	// Simple row format: "|  Label:          Value                    |"
	printRow := func(label, value string, valueStyle lipgloss.Style) {
		const labelW = 18
		const totalInner = 46 // boxWidth - 4 for borders and spaces

		labelPadded := label
		for len(labelPadded) < labelW {
			labelPadded += " "
		}

		valueW := totalInner - labelW
		valuePadded := value
		for len([]rune(valuePadded)) < valueW {
			valuePadded += " "
		}

		fmt.Fprintf(w, "  |  %s%s|\n",
			StatLabelStyle.Render(labelPadded),
			valueStyle.Render(valuePadded),
		)
	}

	fmt.Fprintln(w, BracketStyle.Render("  "+border))
	printRow("Findings:", strconv.Itoa(s.Total), StatValueStyle)
	printRow("Issue types:", strconv.Itoa(s.Types), StatValueStyle)
	fmt.Fprintln(w, BracketStyle.Render("  "+border))

	for _, lc := range s.Levels {
		printRow(lc.Level+":", fmt.Sprintf("%d in %d types", lc.Findings, lc.Types), SeverityStyle(lc.Level))
	}
	if len(s.Levels) > 0 {
		fmt.Fprintln(w, BracketStyle.Render("  "+border))
	}

	if len(s.ReportPaths) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %s\n", StatLabelStyle.Render("Reports:"))
		for _, path := range s.ReportPaths {
			fmt.Fprintf(w, "    %s %s\n", Icon("•", "-"), URLStyle.Render(path))
		}
	}
}
