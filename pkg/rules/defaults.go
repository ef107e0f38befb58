package rules

import (
	"bytes"
	_ "embed"
	"sync"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog of ErrorProne bug patterns,
// parsed once from the embedded database. The returned catalog is
// shared and must be treated as read-only.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(bytes.NewReader(defaultCatalogYAML), "catalog.yaml")
		if err != nil {
			// The embedded database ships with the binary; failing to
			// parse it means the build itself is broken.
			panic("rules: embedded catalog is invalid: " + err.Error())
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
