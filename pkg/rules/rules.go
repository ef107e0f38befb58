package rules

import "fmt"

// Severity levels used by the built-in catalog. Levels are plain
// strings so user-supplied catalogs can define their own buckets.
const (
	SeverityError      = "ERROR"
	SeverityWarning    = "WARNING"
	SeveritySuggestion = "SUGGESTION"

	// SeverityUnknown is the fallback for issue types missing from the
	// catalog. It is last in the default level list so uncatalogued
	// types still show up in the grouped summary.
	SeverityUnknown = "UNKNOWN"
)

// Rule is the display metadata for one issue type. Tags is a short
// bracketed annotation string (e.g. "[Style]"); empty means absent.
// URL is the documentation link; empty means the type name is rendered
// without a hyperlink.
type Rule struct {
	Severity string `json:"severity" yaml:"severity"`
	Tags     string `json:"tags,omitempty" yaml:"tags,omitempty"`
	URL      string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Resolver resolves issue types to their display metadata. Implementations
// must be safe for concurrent reads and must not mutate state on Lookup.
type Resolver interface {
	// Lookup returns the rule for an issue type and whether it is known.
	Lookup(issueType string) (Rule, bool)

	// Levels returns the severity levels to summarize, in priority order.
	Levels() []string
}

// Compile-time interface check.
var _ Resolver = (*Catalog)(nil)

// Catalog is a map-backed Resolver.
type Catalog struct {
	levels []string
	rules  map[string]Rule
}

// NewCatalog creates an empty catalog with the given severity levels in
// priority order.
func NewCatalog(levels ...string) *Catalog {
	return &Catalog{levels: levels, rules: make(map[string]Rule)}
}

// Set registers or replaces the rule for an issue type.
func (c *Catalog) Set(issueType string, r Rule) {
	c.rules[issueType] = r
}

// Lookup returns the rule for an issue type and whether it is known.
func (c *Catalog) Lookup(issueType string) (Rule, bool) {
	r, ok := c.rules[issueType]
	return r, ok
}

// Levels returns the severity levels in priority order. The slice is
// shared; callers must not modify it.
func (c *Catalog) Levels() []string {
	return c.levels
}

// Len returns the number of registered issue types.
func (c *Catalog) Len() int {
	return len(c.rules)
}

// Validate checks internal consistency: at least one severity level,
// and every rule severity present in the level list. A rule whose
// severity is outside the level list would silently vanish from the
// grouped summary, so that is rejected here instead.
func (c *Catalog) Validate() error {
	if len(c.levels) == 0 {
		return fmt.Errorf("%w: no severity levels", ErrInvalidCatalog)
	}
	known := make(map[string]bool, len(c.levels))
	for _, level := range c.levels {
		known[level] = true
	}
	for name, r := range c.rules {
		if r.Severity == "" {
			return fmt.Errorf("%w: rule %q has no severity", ErrInvalidCatalog, name)
		}
		if !known[r.Severity] {
			return fmt.Errorf("%w: rule %q severity %q not in levels", ErrInvalidCatalog, name, r.Severity)
		}
	}
	return nil
}
