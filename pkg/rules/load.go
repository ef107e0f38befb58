package rules

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/epreport/epreport/pkg/jsonutil"
)

// catalogFile is the on-disk catalog shape, shared by YAML and JSON.
type catalogFile struct {
	Levels []string        `json:"levels" yaml:"levels"`
	Rules  map[string]Rule `json:"rules" yaml:"rules"`
}

// LoadFromFile loads a catalog from a YAML or JSON file.
func LoadFromFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	return Load(f, path)
}

// Load loads a catalog from a reader. The filename selects the format:
// ".json" parses as JSON, everything else as YAML.
func Load(r io.Reader, filename string) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var cf catalogFile
	if strings.HasSuffix(filename, ".json") {
		if err := jsonutil.Unmarshal(data, &cf); err != nil {
			return nil, fmt.Errorf("failed to parse JSON catalog: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cf); err != nil {
			return nil, fmt.Errorf("failed to parse YAML catalog: %w", err)
		}
	}

	c := NewCatalog(cf.Levels...)
	for name, rule := range cf.Rules {
		c.Set(name, rule)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
