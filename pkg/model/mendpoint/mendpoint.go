// Package mendpoint models one normalized API operation scoped to a mapping.
package mendpoint

import (
	"qa-catalog/pkg/idwrap"
	"time"
)

type Endpoint struct {
	ID          idwrap.IDWrap
	MappingID   idwrap.IDWrap
	Name        string
	Path        string
	Method      string
	Body        *string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Draft is the transient, normalized representation of one request produced
// by the extractor before persistence. Name is method-prefixed so two items
// differing only by verb stay distinct under one mapping.
type Draft struct {
	Name        string
	Path        string
	Method      string
	Body        *string
	Description string
}
