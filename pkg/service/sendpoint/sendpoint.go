package sendpoint

import (
	"context"
	"database/sql"

	"qa-catalog/pkg/dbtime"
	"qa-catalog/pkg/idwrap"
	"qa-catalog/pkg/model/mendpoint"
	"qa-catalog/pkg/sqlc/gen"
	"qa-catalog/pkg/translate/tgeneric"
)

var ErrNoEndpointFound = sql.ErrNoRows

type EndpointService struct {
	queries *gen.Queries
}

func New(queries *gen.Queries) EndpointService {
	return EndpointService{queries: queries}
}

func (es EndpointService) TX(tx *sql.Tx) EndpointService {
	return EndpointService{queries: es.queries.WithTx(tx)}
}

func ConvertToModelEndpoint(endpoint gen.ApplicationEndpoint) mendpoint.Endpoint {
	var body *string
	if endpoint.Body.Valid {
		b := endpoint.Body.String
		body = &b
	}
	return mendpoint.Endpoint{
		ID:          endpoint.ID,
		MappingID:   endpoint.MappingID,
		Name:        endpoint.EndpointName,
		Path:        endpoint.EndpointUrl,
		Method:      endpoint.HttpMethod,
		Body:        body,
		Description: endpoint.Description.String,
		Active:      endpoint.IsActive,
		CreatedAt:   endpoint.CreatedAt,
		UpdatedAt:   endpoint.UpdatedAt.Time,
	}
}

func ConvertToDBEndpoint(endpoint mendpoint.Endpoint) gen.ApplicationEndpoint {
	var body sql.NullString
	if endpoint.Body != nil {
		body = sql.NullString{String: *endpoint.Body, Valid: true}
	}
	return gen.ApplicationEndpoint{
		ID:           endpoint.ID,
		MappingID:    endpoint.MappingID,
		EndpointName: endpoint.Name,
		EndpointUrl:  endpoint.Path,
		HttpMethod:   endpoint.Method,
		Body:         body,
		Description:  sql.NullString{String: endpoint.Description, Valid: endpoint.Description != ""},
		IsActive:     endpoint.Active,
		CreatedAt:    endpoint.CreatedAt,
	}
}

func (es EndpointService) GetByName(ctx context.Context, mappingID idwrap.IDWrap, name string) (*mendpoint.Endpoint, error) {
	row, err := es.queries.GetEndpointByName(ctx, gen.GetEndpointByNameParams{
		MappingID:    mappingID,
		EndpointName: name,
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoEndpointFound
		}
		return nil, err
	}
	endpoint := ConvertToModelEndpoint(row)
	return &endpoint, nil
}

func (es EndpointService) Create(ctx context.Context, endpoint *mendpoint.Endpoint) error {
	dbEndpoint := ConvertToDBEndpoint(*endpoint)
	return es.queries.CreateEndpoint(ctx, gen.CreateEndpointParams{
		ID:           dbEndpoint.ID,
		MappingID:    dbEndpoint.MappingID,
		EndpointName: dbEndpoint.EndpointName,
		EndpointUrl:  dbEndpoint.EndpointUrl,
		HttpMethod:   dbEndpoint.HttpMethod,
		Body:         dbEndpoint.Body,
		Description:  dbEndpoint.Description,
		IsActive:     dbEndpoint.IsActive,
		CreatedAt:    dbEndpoint.CreatedAt,
	})
}

// Update rewrites the endpoint's body and description only. The stored path
// and method stay as imported first; the method lives in the endpoint name,
// so a verb change arrives as a different endpoint.
func (es EndpointService) Update(ctx context.Context, endpointID idwrap.IDWrap, body *string, description string) error {
	var dbBody sql.NullString
	if body != nil {
		dbBody = sql.NullString{String: *body, Valid: true}
	}
	return es.queries.UpdateEndpoint(ctx, gen.UpdateEndpointParams{
		Body:        dbBody,
		Description: sql.NullString{String: description, Valid: description != ""},
		UpdatedAt:   sql.NullTime{Time: dbtime.DBNow(), Valid: true},
		ID:          endpointID,
	})
}

func (es EndpointService) ListByMapping(ctx context.Context, mappingID idwrap.IDWrap) ([]mendpoint.Endpoint, error) {
	rows, err := es.queries.ListEndpointsByMapping(ctx, mappingID)
	if err != nil {
		return nil, err
	}
	return tgeneric.MassConvert(rows, ConvertToModelEndpoint), nil
}

func (es EndpointService) CountByMapping(ctx context.Context, mappingID idwrap.IDWrap) (int64, error) {
	return es.queries.CountEndpointsByMapping(ctx, mappingID)
}
