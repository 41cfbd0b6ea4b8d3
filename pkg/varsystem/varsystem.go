// Package varsystem handles {{name}} template variable references: finding
// them in request text, classifying infrastructure names that encode
// deployment topology, and accumulating the business variables into a
// catalog draft.
package varsystem

import (
	"regexp"
	"strings"

	"qa-catalog/pkg/model/mexecvars"
)

const (
	Prefix = "{{"
	Suffix = "}}"
)

// Pattern matches one {{ name }} reference; the capture group is the bare
// variable name.
var Pattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_\-\.]+)\s*\}\}`)

// infrastructureNames are variable names that encode deployment topology
// (base URL, environment, country/region). They are stripped from paths and
// never enter the variable catalog. Comparison is case-insensitive.
var infrastructureNames = map[string]struct{}{
	"ENV":         {},
	"ENVIRONMENT": {},
	"COUNTRY":     {},
	"REGION":      {},
	"BASE_URL":    {},
	"BASEURL":     {},
	"API_URL":     {},
	"HOST":        {},
}

func IsInfrastructure(name string) bool {
	_, ok := infrastructureNames[strings.ToUpper(name)]
	return ok
}

// Placeholder renders a variable name back to its template form.
func Placeholder(name string) string {
	return Prefix + name + Suffix
}

// Harvest accumulates business variables found across one import. Scanning
// has set semantics: registering the same name twice is a no-op, so
// re-harvesting identical text yields an identical draft.
type Harvest struct {
	variables     map[string]string
	runtimeValues map[string]string
}

func NewHarvest() *Harvest {
	return &Harvest{
		variables:     make(map[string]string),
		runtimeValues: make(map[string]string),
	}
}

// ScanText registers every non-infrastructure {{name}} reference in text.
func (h *Harvest) ScanText(text string) {
	if text == "" {
		return
	}
	for _, match := range Pattern.FindAllStringSubmatch(text, -1) {
		name := match[1]
		if IsInfrastructure(name) {
			continue
		}
		h.variables[name] = Placeholder(name)
	}
}

// AddDeclared registers a collection- or environment-level variable
// declaration. A concrete (non-template) value is recorded as the variable's
// runtime value as well.
func (h *Harvest) AddDeclared(name, value string) {
	if name == "" || IsInfrastructure(name) {
		return
	}
	h.variables[name] = Placeholder(name)
	if value != "" && !Pattern.MatchString(value) {
		h.runtimeValues[name] = value
	}
}

func (h *Harvest) Len() int {
	return len(h.variables)
}

// Catalog snapshots the harvest as a variable catalog draft.
func (h *Harvest) Catalog() mexecvars.Catalog {
	catalog := mexecvars.New()
	for k, v := range h.variables {
		catalog.Variables[k] = v
	}
	for k, v := range h.runtimeValues {
		catalog.RuntimeValues[k] = v
	}
	return catalog
}
