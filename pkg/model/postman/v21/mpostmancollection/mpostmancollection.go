// Package mpostmancollection models the subset of the Postman Collection
// v2.1 format consumed by the import pipeline.
package mpostmancollection

import (
	"github.com/goccy/go-json"
)

type Info struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Schema      string `json:"schema,omitempty"`
}

// Collection represents a Postman Collection.
type Collection struct {
	Info      Info       `json:"info"`
	Items     []Item     `json:"item"`
	Variables []Variable `json:"variable,omitempty"`
}

// Item is either a folder (nested Items) or a leaf (Request set).
type Item struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Items       []Item   `json:"item,omitempty"`
	Request     *Request `json:"request,omitempty"`
}

// IsFolder reports whether the item groups other items rather than carrying
// a request of its own. An item with neither is a malformed leaf and is left
// to the extractor to report.
func (it Item) IsFolder() bool {
	return it.Request == nil && len(it.Items) > 0
}

type Request struct {
	Method      string   `json:"method"`
	URL         URL      `json:"url"`
	Header      []Header `json:"header,omitempty"`
	Body        *Body    `json:"body,omitempty"`
	Description string   `json:"description,omitempty"`
}

// URL accepts both wire forms of a request URL: a bare string and the
// structured object with a raw field. The raw value wins when both exist.
type URL struct {
	Raw  string   `json:"raw"`
	Host []string `json:"host,omitempty"`
	Path []string `json:"path,omitempty"`
}

func (u *URL) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		u.Raw = raw
		return nil
	}

	type urlAlias URL
	var alias urlAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*u = URL(alias)
	return nil
}

type Header struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Disabled    bool   `json:"disabled,omitempty"`
}

type Body struct {
	Mode       string      `json:"mode"`
	Raw        string      `json:"raw,omitempty"`
	FormData   []FormParam `json:"formdata,omitempty"`
	URLEncoded []FormParam `json:"urlencoded,omitempty"`
}

type FormParam struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	Type     string `json:"type,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

type Variable struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
