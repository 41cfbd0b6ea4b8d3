// Package mmapping models the Application+Environment+Country triad record
// that owns base URL, default headers, auth config and the variable catalog.
package mmapping

import (
	"strings"
	"time"

	"qa-catalog/pkg/idwrap"
)

const (
	DefaultProtocol = "https"

	// PlaceholderBaseURL is used when the environment export carries no
	// BASE_URL entry; the real value is expected to be set later by an
	// operator.
	PlaceholderBaseURL = "https://api.example.com"
)

type Mapping struct {
	ID             idwrap.IDWrap
	ApplicationID  idwrap.IDWrap
	EnvironmentID  idwrap.IDWrap
	CountryID      idwrap.IDWrap
	BaseURL        string
	Protocol       string
	DefaultHeaders map[string]string
	AuthConfig     map[string]string
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// reservedHeaderKeys are environment variable keys folded into default
// headers even without "header" in their name.
var reservedHeaderKeys = map[string]struct{}{
	"authorization": {},
	"content-type":  {},
	"accept":        {},
}

// IsHeaderKey reports whether an environment variable key should be stored
// as a default header.
func IsHeaderKey(key string) bool {
	lower := strings.ToLower(key)
	if strings.Contains(lower, "header") {
		return true
	}
	_, ok := reservedHeaderKeys[lower]
	return ok
}

// HeadersFromEnv extracts the header-like entries from an environment
// variable set.
func HeadersFromEnv(envVars map[string]string) map[string]string {
	headers := make(map[string]string)
	for key, value := range envVars {
		if IsHeaderKey(key) {
			headers[key] = value
		}
	}
	return headers
}

// BaseURLFromEnv picks the seed base URL for a new mapping.
func BaseURLFromEnv(envVars map[string]string) string {
	if v, ok := envVars["BASE_URL"]; ok && v != "" {
		return v
	}
	if v, ok := envVars["baseUrl"]; ok && v != "" {
		return v
	}
	return PlaceholderBaseURL
}

// MergeHeaders merges incoming headers over existing ones key by key.
// Existing keys absent from incoming are untouched; neither input map is
// mutated.
func MergeHeaders(existing, incoming map[string]string) map[string]string {
	merged := make(map[string]string, len(existing)+len(incoming))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range incoming {
		merged[k] = v
	}
	return merged
}
