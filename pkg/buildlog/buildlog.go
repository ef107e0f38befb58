package buildlog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/epreport/epreport/pkg/finding"
)

// findingLine matches the analyzer lines Maven prints during compilation:
//
//	[WARNING] /abs/path/Foo.java:[697,30] [StringSplitter] String.split(String) has surprising behavior
var findingLine = regexp.MustCompile(`^\[(ERROR|WARNING)\] (.+?):\[(\d+),(\d+)\] \[([A-Za-z0-9_.]+)\] (.*)$`)

// seeLine matches the indented documentation pointer printed under a finding:
//
//	  (see https://errorprone.info/bugpattern/StringSplitter)
var seeLine = regexp.MustCompile(`^\s+\(see (\S+)\)\s*$`)

// Options controls parsing.
type Options struct {
	// RootDir is the absolute project path stripped from finding paths
	// so reports carry repository-relative locations. Empty keeps paths
	// as printed.
	RootDir string
}

// ParseFile parses the build log at path.
func ParseFile(path string, opts Options) (*finding.ReportData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open build log: %w", err)
	}
	defer f.Close()

	return Parse(f, opts)
}

// Parse reads a Maven build log and collects analyzer findings in
// encounter order. Lines that are not findings or their continuations
// are skipped; a finding ends at the first line that is neither.
func Parse(r io.Reader, opts Options) (*finding.ReportData, error) {
	data := finding.NewReportData()
	var current *finding.Finding

	flush := func() {
		if current != nil {
			data.Add(*current)
			current = nil
		}
	}

	sc := bufio.NewScanner(r)
	// javac can emit very long message lines; the default 64K token
	// limit is not enough for generated sources.
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		line := sc.Text()

		if m := findingLine.FindStringSubmatch(line); m != nil {
			flush()
			lineNo, _ := strconv.Atoi(m[3])
			colNo, _ := strconv.Atoi(m[4])
			current = &finding.Finding{
				Severity: m[1],
				Path:     relativize(m[2], opts.RootDir),
				Line:     lineNo,
				Column:   colNo,
				Type:     m[5],
				Message:  m[6],
			}
			continue
		}

		if current == nil {
			continue
		}

		if m := seeLine.FindStringSubmatch(line); m != nil {
			current.URL = m[1]
			continue
		}

		if isContinuation(line) {
			text := strings.TrimSpace(line)
			if current.Extra == "" {
				current.Extra = text
			} else {
				current.Extra += " " + text
			}
			continue
		}

		flush()
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read build log: %w", err)
	}
	flush()

	return data, nil
}

// isContinuation reports whether line belongs to the finding above it.
// Maven prints the analyzer's multi-line messages indented, without a
// level prefix.
func isContinuation(line string) bool {
	if line == "" {
		return false
	}
	return line[0] == ' ' || line[0] == '\t'
}

// relativize strips the project root from an absolute source path and
// normalizes separators, so the same build produces the same report
// regardless of checkout location.
func relativize(path, rootDir string) string {
	path = strings.ReplaceAll(path, `\`, "/")
	if rootDir == "" {
		return path
	}
	root := strings.TrimSuffix(strings.ReplaceAll(rootDir, `\`, "/"), "/")
	return strings.TrimPrefix(path, root+"/")
}
