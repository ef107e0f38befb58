package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epreport/epreport/pkg/finding"
)

func TestTSVWriterOutput(t *testing.T) {
	t.Parallel()

	w := &TSVWriter{Resolver: testResolver()}
	var buf bytes.Buffer
	require.NoError(t, w.Render(&buf, testData()))

	want := "Issue type\tCount\tSeverity\tURL\n" +
		"StringSplitter\t1\tWARNING\thttps://errorprone.info/bugpattern/StringSplitter\n" +
		"NullAway [Nullness]\t1\tERROR\thttps://github.com/uber/NullAway/wiki/Error-Messages\n" +
		"FutureIdea\t1\tUNKNOWN\t\n" +
		"BadImport [Style]\t1\tWARNING\thttps://errorprone.info/bugpattern/BadImport\n"
	assert.Equal(t, want, buf.String())
}

func TestTSVWriterCountsPerType(t *testing.T) {
	t.Parallel()

	data := finding.NewReportData()
	for i := 1; i <= 3; i++ {
		data.Add(finding.Finding{
			Path: "A.java", Line: i, Column: 1,
			Severity: "WARNING", Type: "StringSplitter", Message: "m",
		})
	}

	w := &TSVWriter{Resolver: testResolver()}
	var buf bytes.Buffer
	require.NoError(t, w.Render(&buf, data))

	assert.Contains(t, buf.String(), "StringSplitter\t3\tWARNING\t")
}

func TestTSVWriterUsesCatalogSeverity(t *testing.T) {
	t.Parallel()

	// The finding claims ERROR but the catalog says WARNING; the
	// aggregate reports follow the catalog.
	data := finding.NewReportData()
	data.Add(finding.Finding{
		Path: "A.java", Line: 1, Column: 1,
		Severity: "ERROR", Type: "StringSplitter", Message: "m",
	})

	w := &TSVWriter{Resolver: testResolver()}
	var buf bytes.Buffer
	require.NoError(t, w.Render(&buf, data))

	assert.Contains(t, buf.String(), "StringSplitter\t1\tWARNING\t")
	assert.NotContains(t, buf.String(), "\tERROR\t")
}

func TestTSVWriterFilename(t *testing.T) {
	t.Parallel()

	w := &TSVWriter{Resolver: testResolver()}
	assert.Equal(t, "errorprone.tsv", w.Filename())
}
