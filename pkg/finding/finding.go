package finding

import (
	"fmt"
	"strings"
)

// Finding is one static-analysis result as reported by the analyzer
// during a build. Path is relative to the project root; Severity is
// the label the analyzer printed (e.g. "ERROR", "WARNING"), kept
// verbatim. Extra carries a free-text continuation, typically a
// suggested fix. URL is the documentation link captured from the
// analyzer output, if it printed one.
type Finding struct {
	Path     string `json:"path"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Type     string `json:"type"`
	Message  string `json:"message"`
	Extra    string `json:"extra,omitempty"`
	URL      string `json:"url,omitempty"`
}

// Location returns the visible source location, "<path>:[<line>,<column>]".
func (f Finding) Location() string {
	return fmt.Sprintf("%s:[%d,%d]", f.Path, f.Line, f.Column)
}

const (
	didYouMeanPrefix = "Did you mean '"
	didYouMeanSuffix = "'?"
)

// DidYouMean extracts the bare replacement when Extra has the exact
// form "Did you mean '<replacement>'?". It reports false for any other
// Extra, including strings too short to hold both delimiters, so a
// malformed hint is rendered verbatim instead of failing.
func (f Finding) DidYouMean() (replacement string, ok bool) {
	if len(f.Extra) < len(didYouMeanPrefix)+len(didYouMeanSuffix) {
		return "", false
	}
	if !strings.HasPrefix(f.Extra, didYouMeanPrefix) || !strings.HasSuffix(f.Extra, didYouMeanSuffix) {
		return "", false
	}
	return f.Extra[len(didYouMeanPrefix) : len(f.Extra)-len(didYouMeanSuffix)], true
}
