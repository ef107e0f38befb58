// Package jsonutil wraps github.com/go-json-experiment/json behind the
// familiar encoding/json function shapes, so the rest of the module has
// a single import to switch when the experiment graduates into the
// standard library.
package jsonutil

import (
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Unmarshal parses the JSON-encoded data and stores the result in v.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Marshal returns the JSON encoding of v.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// MarshalIndent returns the JSON encoding of v, indented with indent.
// Unlike encoding/json there is no prefix parameter; go-json-experiment
// expresses indentation through jsontext options.
func MarshalIndent(v any, indent string) ([]byte, error) {
	return json.Marshal(v, jsontext.WithIndent(indent))
}
