package report

import (
	"io"
	"strings"

	"github.com/epreport/epreport/pkg/finding"
	"github.com/epreport/epreport/pkg/rules"
)

// markdownEscaper backslash-escapes every character with Markdown
// meaning. Single-character rules run in one pass over the input, so
// escaping already-escaped text doubles the backslashes instead of
// producing a longer escape chain.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`_`, `\_`,
	`|`, `\|`,
	`#`, `\#`,
	"`", "\\`",
	`[`, `\[`,
	`]`, `\]`,
	`{`, `\{`,
	`}`, `\}`,
	`(`, `\(`,
	`)`, `\)`,
	`<`, `\<`,
	`>`, `\>`,
	`+`, `\+`,
	`-`, `\-`,
	`.`, `\.`,
	`!`, `\!`,
)

// EscapeMarkdown backslash-escapes characters that could be read as
// Markdown structure. It is applied to message, extra and tag text,
// never to code spans or to the table syntax the writer emits itself.
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// MarkdownWriter renders the per-finding report as a Markdown pipe
// table.
type MarkdownWriter struct {
	Resolver rules.Resolver
}

var _ Writer = (*MarkdownWriter)(nil)

// Filename returns the Markdown report filename.
func (w *MarkdownWriter) Filename() string { return MarkdownFile }

// Render writes the table header and one row per finding. The issue
// type cell links to the catalog URL when there is one and carries the
// escaped catalog tags; the severity is the finding's own.
func (w *MarkdownWriter) Render(out io.Writer, data *finding.ReportData) error {
	var sb strings.Builder
	sb.WriteString("| Issue type | Severity | Location | Message |\n")
	sb.WriteString("| ---------- | -------- | -------- | ------- |\n")

	for _, issueType := range data.Types() {
		rule := resolve(w.Resolver, issueType)

		typeCell := "`" + issueType + "`"
		if rule.URL != "" {
			typeCell = "[" + typeCell + "](" + rule.URL + ")"
		}
		if rule.Tags != "" {
			typeCell += " " + EscapeMarkdown(rule.Tags)
		}

		for _, f := range data.Findings(issueType) {
			sb.WriteString("| ")
			sb.WriteString(typeCell)
			sb.WriteString(" | ")
			sb.WriteString(f.Severity)
			sb.WriteString(" | `")
			sb.WriteString(f.Location())
			sb.WriteString("` | ")
			writeMarkdownDescription(&sb, f)
			sb.WriteString(" |\n")
		}
	}

	_, err := io.WriteString(out, sb.String())
	return err
}

// writeMarkdownDescription renders the message plus the optional extra
// hint after a literal <hr> separator. A recognized replacement hint
// becomes a code span; any other extra text is escaped like the
// message.
func writeMarkdownDescription(sb *strings.Builder, f finding.Finding) {
	sb.WriteString(EscapeMarkdown(f.Message))
	if f.Extra == "" {
		return
	}
	sb.WriteString("<hr>")
	if replacement, ok := f.DidYouMean(); ok {
		sb.WriteString("Did you mean <br> `")
		sb.WriteString(replacement)
		sb.WriteString("`")
		return
	}
	sb.WriteString(EscapeMarkdown(f.Extra))
}
