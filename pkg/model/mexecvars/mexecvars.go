// Package mexecvars models the per-mapping variable catalog: business
// template variables, their current runtime values, and merge bookkeeping.
package mexecvars

import "time"

const (
	UpdatedBy = "qa-catalog-importer"
	Version   = "1.0"
)

type Catalog struct {
	Variables     map[string]string `json:"variables"`
	RuntimeValues map[string]string `json:"runtime_values"`
	Metadata      Metadata          `json:"metadata"`
}

type Metadata struct {
	LastUpdated string `json:"last_updated"`
	UpdatedBy   string `json:"updated_by"`
	Version     string `json:"version"`
}

func New() Catalog {
	return Catalog{
		Variables:     make(map[string]string),
		RuntimeValues: make(map[string]string),
	}
}

// Merge folds incoming into existing: variable names accumulate by set
// union, runtime values overwrite only the keys incoming carries, and the
// metadata records the merge time. Neither input is mutated.
func Merge(existing, incoming Catalog, now time.Time) Catalog {
	merged := New()
	for k, v := range existing.Variables {
		merged.Variables[k] = v
	}
	for k, v := range incoming.Variables {
		merged.Variables[k] = v
	}
	for k, v := range existing.RuntimeValues {
		merged.RuntimeValues[k] = v
	}
	for k, v := range incoming.RuntimeValues {
		merged.RuntimeValues[k] = v
	}
	merged.Metadata = Metadata{
		LastUpdated: now.UTC().Format(time.RFC3339),
		UpdatedBy:   UpdatedBy,
		Version:     Version,
	}
	return merged
}
