// Package pathnorm rewrites raw request URLs into canonical, host-free
// endpoint paths. Deployment topology (base URL, environment, country)
// belongs to the mapping record, so every trace of it is stripped here.
package pathnorm

import (
	"net/url"
	"regexp"
	"strings"

	"qa-catalog/pkg/varsystem"
)

// DefaultPath is the sentinel for requests whose URL normalizes to nothing.
const DefaultPath = "/default"

// colonParam matches Postman's :param path parameter style.
var colonParam = regexp.MustCompile(`:([A-Za-z0-9_]+)`)

// infraPatterns are the infrastructure template references removed from
// relative paths, in declared priority order: base URL forms, then
// environment, then country/region, then the hyphen-joined environment
// suffix. A compound like {{BASE_URL}}-{{ENV}} degrades to an orphaned dash
// that the cleanup below removes.
var infraPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\{\{BASE_URL\}\}`),
	regexp.MustCompile(`(?i)\{\{BASEURL\}\}`),
	regexp.MustCompile(`(?i)\{\{API_URL\}\}`),
	regexp.MustCompile(`(?i)\{\{HOST\}\}`),
	regexp.MustCompile(`(?i)\{\{ENV\}\}`),
	regexp.MustCompile(`(?i)\{\{ENVIRONMENT\}\}`),
	regexp.MustCompile(`(?i)\{\{COUNTRY\}\}`),
	regexp.MustCompile(`(?i)\{\{REGION\}\}`),
	regexp.MustCompile(`(?i)-\{\{ENV\}\}`),
}

var (
	multiSlash  = regexp.MustCompile(`/+`)
	orphanDash  = regexp.MustCompile(`/-+/`)
	leadingDash = regexp.MustCompile(`^-+`)
)

// Normalize rewrites a raw URL or path into the canonical endpoint form:
// leading slash, {name} placeholders, no protocol, host or topology tokens.
// The steps run in a fixed order; infrastructure stripping must precede the
// generic variable conversion so a business variable never partially matches
// an infrastructure pattern.
func Normalize(raw string) string {
	normalized := colonParam.ReplaceAllString(raw, "{$1}")

	if strings.Contains(normalized, "://") {
		// A real absolute URL: keep only path and query.
		if u, err := url.Parse(normalized); err == nil {
			normalized = u.Path
			if u.RawQuery != "" {
				normalized += "?" + u.RawQuery
			}
		} else {
			// Fallback: everything after the third slash.
			parts := strings.SplitN(normalized, "/", 4)
			if len(parts) > 3 {
				normalized = "/" + parts[3]
			}
		}
	} else {
		for _, pattern := range infraPatterns {
			normalized = pattern.ReplaceAllString(normalized, "")
		}
		normalized = multiSlash.ReplaceAllString(normalized, "/")
		normalized = orphanDash.ReplaceAllString(normalized, "/")
		normalized = leadingDash.ReplaceAllString(normalized, "")
		normalized = strings.Trim(normalized, "/")
	}

	// Remaining {{name}} markers become {name}; infrastructure names that
	// survived the pattern pass are deleted outright.
	normalized = varsystem.Pattern.ReplaceAllStringFunc(normalized, func(m string) string {
		name := varsystem.Pattern.FindStringSubmatch(m)[1]
		if varsystem.IsInfrastructure(name) {
			return ""
		}
		return "{" + name + "}"
	})

	if !strings.HasPrefix(normalized, "/") {
		normalized = "/" + normalized
	}
	if normalized == "/" {
		normalized = DefaultPath
	}
	return normalized
}
