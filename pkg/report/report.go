package report

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/epreport/epreport/assets"
	"github.com/epreport/epreport/pkg/bufpool"
	"github.com/epreport/epreport/pkg/finding"
	"github.com/epreport/epreport/pkg/rules"
)

// Fixed artifact filenames, written into the output directory.
const (
	FlatHTMLFile    = "errorprone1.html"
	GroupedHTMLFile = "errorprone2.html"
	TSVFile         = "errorprone.tsv"
	MarkdownFile    = "errorprone.md"
)

// titleLayout formats the timestamp appended to the HTML report title.
const titleLayout = "2006-January-02, 15:04:05 -07:00"

// Writer renders one report artifact from finding data.
type Writer interface {
	// Filename returns the fixed name of the file this writer produces.
	Filename() string

	// Render writes the complete artifact to w.
	Render(w io.Writer, data *finding.ReportData) error
}

// Config configures a Generator.
type Config struct {
	// BaseURL is the source-browsing prefix for location links. It is
	// used verbatim: <BaseURL>/<path>#L<line>.
	BaseURL string

	// Resolver supplies severity, tags and documentation URL per issue
	// type. Defaults to rules.Default().
	Resolver rules.Resolver

	// Title heads both HTML reports; the generation timestamp is
	// appended to it. Defaults to "ErrorProne report".
	Title string

	// Logger receives one line per generated file. Defaults to
	// slog.Default().
	Logger *slog.Logger

	// Now supplies the title timestamp. Defaults to time.Now.
	Now func() time.Time

	// Templates lists extra artifacts rendered through user templates,
	// written after the four fixed reports.
	Templates []TemplateSpec
}

// Generator writes the report artifacts for one analyzer run.
type Generator struct {
	cfg Config
}

// New creates a Generator, filling in defaults for unset Config fields.
func New(cfg Config) *Generator {
	if cfg.Resolver == nil {
		cfg.Resolver = rules.Default()
	}
	if cfg.Title == "" {
		cfg.Title = "ErrorProne report"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Generator{cfg: cfg}
}

// Generate copies the static assets into outDir and writes every
// report artifact. Existing files are overwritten; the directory must
// already exist. The first failure aborts the remaining artifacts and
// is returned.
func (g *Generator) Generate(data *finding.ReportData, outDir string) error {
	if data == nil {
		return ErrNoData
	}
	if err := CopyAssets(outDir); err != nil {
		return err
	}
	for _, w := range g.writers() {
		if err := g.writeReport(outDir, w, data); err != nil {
			return err
		}
	}
	return nil
}

// writers returns the artifact writers in generation order. The title
// timestamp is taken once so both HTML reports carry the same one.
func (g *Generator) writers() []Writer {
	title := g.cfg.Title + ", " + g.cfg.Now().Format(titleLayout)

	ws := []Writer{
		&HTMLWriter{BaseURL: g.cfg.BaseURL, Resolver: g.cfg.Resolver, Title: title},
		&GroupedHTMLWriter{BaseURL: g.cfg.BaseURL, Resolver: g.cfg.Resolver, Title: title},
		&TSVWriter{Resolver: g.cfg.Resolver},
		&MarkdownWriter{Resolver: g.cfg.Resolver},
	}
	for _, spec := range g.cfg.Templates {
		ws = append(ws, &TemplateWriter{
			Spec:     spec,
			BaseURL:  g.cfg.BaseURL,
			Resolver: g.cfg.Resolver,
			Title:    title,
		})
	}
	return ws
}

// writeReport renders the artifact fully in memory before creating the
// file, so a failed render never leaves a truncated report behind.
func (g *Generator) writeReport(outDir string, w Writer, data *finding.ReportData) (retErr error) {
	buf := bufpool.Get()
	defer bufpool.Put(buf)

	if err := w.Render(buf, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", w.Filename(), err)
	}

	path := filepath.Join(outDir, w.Filename())
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", w.Filename(), err)
	}
	defer func() {
		if err := f.Close(); err != nil && retErr == nil {
			retErr = fmt.Errorf("failed to close %s: %w", w.Filename(), err)
		}
	}()

	if _, err := buf.WriteTo(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", w.Filename(), err)
	}

	g.cfg.Logger.Info("report generated", "path", path)
	return nil
}

// CopyAssets copies the bundled sort script and stylesheet into outDir,
// overwriting existing files.
func CopyAssets(outDir string) error {
	for _, name := range assets.Names() {
		if err := copyAsset(outDir, name); err != nil {
			return err
		}
	}
	return nil
}

func copyAsset(outDir, name string) (retErr error) {
	src, err := assets.FS.Open(name)
	if err != nil {
		return fmt.Errorf("failed to open bundled asset %s: %w", name, err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(outDir, name))
	if err != nil {
		return fmt.Errorf("failed to create asset %s: %w", name, err)
	}
	defer func() {
		if err := dst.Close(); err != nil && retErr == nil {
			retErr = fmt.Errorf("failed to close asset %s: %w", name, err)
		}
	}()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to copy asset %s: %w", name, err)
	}
	return nil
}

// resolve returns the catalog rule for an issue type. Uncatalogued
// types fall back to an UNKNOWN-severity rule so they still appear in
// the grouped and aggregate reports.
func resolve(res rules.Resolver, issueType string) rules.Rule {
	if r, ok := res.Lookup(issueType); ok {
		return r
	}
	return rules.Rule{Severity: rules.SeverityUnknown}
}

// sourceURL builds the source-browsing link for a finding.
func sourceURL(baseURL string, f finding.Finding) string {
	return fmt.Sprintf("%s/%s#L%d", baseURL, f.Path, f.Line)
}
