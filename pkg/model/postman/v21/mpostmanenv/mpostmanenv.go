// Package mpostmanenv models a Postman environment export.
package mpostmanenv

type Environment struct {
	Name   string  `json:"name,omitempty"`
	Values []Value `json:"values"`
}

type Value struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Enabled *bool  `json:"enabled,omitempty"`
}

// IsEnabled treats a missing enabled flag as true, matching the export
// format's default.
func (v Value) IsEnabled() bool {
	return v.Enabled == nil || *v.Enabled
}
