// Package rules maps issue-type identifiers to display metadata:
// severity level, tag annotations, and documentation URL. The report
// writers consume it through the read-only Resolver interface so tests
// can inject fixtures.
//
// A built-in catalog of ErrorProne bug patterns ships embedded
// (Default); alternative catalogs load from YAML or JSON files.
package rules
