// Package assets embeds the static files shipped next to every report:
// the stylesheet and the client-side table sorter. The generator copies
// them byte-for-byte into the output directory so the HTML reports work
// from a plain file:// open with no network access.
package assets

import "embed"

// Asset filenames, as referenced from the generated HTML.
const (
	SortScript = "sorttable.js"
	Stylesheet = "errorprone.css"
)

//go:embed sorttable.js errorprone.css
var FS embed.FS

// Names returns the asset filenames in copy order.
func Names() []string {
	return []string{SortScript, Stylesheet}
}
