// Package tpostman turns Postman collection documents into endpoint drafts:
// it parses the raw JSON, flattens the folder tree, extracts request data
// and harvests template variables.
package tpostman

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"qa-catalog/pkg/model/mendpoint"
	"qa-catalog/pkg/model/postman/v21/mpostmancollection"
	"qa-catalog/pkg/model/postman/v21/mpostmanenv"
	"qa-catalog/pkg/pathnorm"
	"qa-catalog/pkg/varsystem"
)

func ParseCollection(data []byte) (mpostmancollection.Collection, error) {
	var collection mpostmancollection.Collection
	if len(data) == 0 {
		return collection, fmt.Errorf("empty collection data")
	}
	if err := json.Unmarshal(data, &collection); err != nil {
		return collection, fmt.Errorf("failed to parse Postman collection: %w", err)
	}
	return collection, nil
}

func ParseEnvironment(data []byte) (mpostmanenv.Environment, error) {
	var environment mpostmanenv.Environment
	if len(data) == 0 {
		return environment, fmt.Errorf("empty environment data")
	}
	if err := json.Unmarshal(data, &environment); err != nil {
		return environment, fmt.Errorf("failed to parse Postman environment: %w", err)
	}
	return environment, nil
}

// EnvironmentVars collapses an environment export into a key/value map,
// dropping disabled entries.
func EnvironmentVars(environment mpostmanenv.Environment) map[string]string {
	vars := make(map[string]string, len(environment.Values))
	for _, v := range environment.Values {
		if v.Key == "" || !v.IsEnabled() {
			continue
		}
		vars[v.Key] = v.Value
	}
	return vars
}

// FlattenItems expands folders recursively and returns the leaf request
// items in document order. Pure function of the input tree.
func FlattenItems(items []mpostmancollection.Item) []mpostmancollection.Item {
	flattened := make([]mpostmancollection.Item, 0, len(items))
	for _, item := range items {
		if item.IsFolder() {
			flattened = append(flattened, FlattenItems(item.Items)...)
		} else {
			flattened = append(flattened, item)
		}
	}
	return flattened
}

// ItemResult is the outcome of extracting one leaf item: either a draft or
// a skip with its reason. Fatal conditions never originate here.
type ItemResult struct {
	Draft   mendpoint.Draft
	Skipped bool
	Reason  string
}

func skip(reason string) ItemResult {
	return ItemResult{Skipped: true, Reason: reason}
}

// ExtractDraft builds the normalized endpoint draft for one leaf item. The
// draft name is method-prefixed so same-named siblings differing only by
// verb produce distinct endpoints.
func ExtractDraft(item mpostmancollection.Item) ItemResult {
	if item.Request == nil {
		return skip("item carries no request")
	}
	request := item.Request

	method := strings.ToUpper(request.Method)
	if method == "" {
		method = "GET"
	}

	path := pathnorm.Normalize(request.URL.Raw)

	baseName := item.Name
	if baseName == "" {
		baseName = path
	}
	// Query strings never belong in an endpoint name.
	baseName = strings.SplitN(baseName, "?", 2)[0]
	if strings.TrimSpace(baseName) == "" {
		return skip("empty endpoint name")
	}

	description := item.Description
	if description == "" {
		description = request.Description
	}
	if description == "" {
		description = "Imported from Postman: " + baseName
	}

	body, err := extractBody(request.Body)
	if err != nil {
		return skip(fmt.Sprintf("body serialization failed: %v", err))
	}

	return ItemResult{
		Draft: mendpoint.Draft{
			Name:        method + " " + baseName,
			Path:        path,
			Method:      method,
			Body:        body,
			Description: description,
		},
	}
}

type serializedParam struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Type  string `json:"type"`
}

// extractBody keeps raw bodies verbatim and serializes form-style bodies
// into a uniform key/value/type representation. Other modes carry no body.
func extractBody(body *mpostmancollection.Body) (*string, error) {
	if body == nil {
		return nil, nil
	}
	switch body.Mode {
	case "raw":
		raw := body.Raw
		return &raw, nil
	case "formdata":
		return serializeParams("formdata", body.FormData)
	case "urlencoded":
		return serializeParams("urlencoded", body.URLEncoded)
	default:
		return nil, nil
	}
}

func serializeParams(mode string, params []mpostmancollection.FormParam) (*string, error) {
	items := make([]serializedParam, 0, len(params))
	for _, p := range params {
		typ := p.Type
		if typ == "" {
			typ = "text"
		}
		items = append(items, serializedParam{Key: p.Key, Value: p.Value, Type: typ})
	}
	data, err := json.Marshal(map[string][]serializedParam{mode: items})
	if err != nil {
		return nil, err
	}
	serialized := string(data)
	return &serialized, nil
}

// HarvestCollection scans the whole document set for template variables:
// declared collection variables, enabled environment values, and every URL,
// header and raw body in the item tree. Infrastructure names are excluded
// inside the harvest itself.
func HarvestCollection(collection mpostmancollection.Collection, environment *mpostmanenv.Environment) *varsystem.Harvest {
	harvest := varsystem.NewHarvest()

	for _, v := range collection.Variables {
		harvest.AddDeclared(v.Key, v.Value)
	}
	if environment != nil {
		for _, v := range environment.Values {
			if v.IsEnabled() {
				harvest.AddDeclared(v.Key, v.Value)
			}
		}
	}

	harvestItems(collection.Items, harvest)
	return harvest
}

func harvestItems(items []mpostmancollection.Item, harvest *varsystem.Harvest) {
	for _, item := range items {
		if item.IsFolder() {
			harvestItems(item.Items, harvest)
			continue
		}
		request := item.Request
		if request == nil {
			continue
		}
		harvest.ScanText(request.URL.Raw)
		for _, header := range request.Header {
			harvest.ScanText(header.Key)
			harvest.ScanText(header.Value)
		}
		if request.Body != nil {
			harvest.ScanText(request.Body.Raw)
		}
	}
}
