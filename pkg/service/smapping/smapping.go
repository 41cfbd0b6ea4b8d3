// Package smapping persists the Application+Environment+Country mapping
// records and their attached variable catalogs.
package smapping

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/goccy/go-json"

	"qa-catalog/pkg/dbtime"
	"qa-catalog/pkg/idwrap"
	"qa-catalog/pkg/model/mexecvars"
	"qa-catalog/pkg/model/mmapping"
	"qa-catalog/pkg/sqlc/gen"
)

var ErrNoMappingFound = sql.ErrNoRows

type MappingService struct {
	queries *gen.Queries
}

func New(queries *gen.Queries) MappingService {
	return MappingService{queries: queries}
}

func (ms MappingService) TX(tx *sql.Tx) MappingService {
	return MappingService{queries: ms.queries.WithTx(tx)}
}

func ConvertToModelMapping(mapping gen.AppEnvironmentCountryMapping) (mmapping.Mapping, error) {
	headers, err := decodeStringMap(mapping.DefaultHeaders)
	if err != nil {
		return mmapping.Mapping{}, fmt.Errorf("invalid default_headers for mapping %s: %w", mapping.ID, err)
	}
	authConfig, err := decodeStringMap(mapping.AuthConfig)
	if err != nil {
		return mmapping.Mapping{}, fmt.Errorf("invalid auth_config for mapping %s: %w", mapping.ID, err)
	}

	return mmapping.Mapping{
		ID:             mapping.ID,
		ApplicationID:  mapping.ApplicationID,
		EnvironmentID:  mapping.EnvironmentID,
		CountryID:      mapping.CountryID,
		BaseURL:        mapping.BaseUrl,
		Protocol:       mapping.Protocol,
		DefaultHeaders: headers,
		AuthConfig:     authConfig,
		Active:         mapping.IsActive,
		CreatedAt:      mapping.CreatedAt,
		UpdatedAt:      mapping.UpdatedAt.Time,
	}, nil
}

func decodeStringMap(ns sql.NullString) (map[string]string, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	var m map[string]string
	if err := json.Unmarshal([]byte(ns.String), &m); err != nil {
		return nil, err
	}
	return m, nil
}

func encodeStringMap(m map[string]string) (sql.NullString, error) {
	if len(m) == 0 {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func (ms MappingService) GetByTriad(ctx context.Context, appID, envID, countryID idwrap.IDWrap) (*mmapping.Mapping, error) {
	row, err := ms.queries.GetMappingByTriad(ctx, gen.GetMappingByTriadParams{
		ApplicationID: appID,
		EnvironmentID: envID,
		CountryID:     countryID,
	})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoMappingFound
		}
		return nil, err
	}
	mapping, err := ConvertToModelMapping(row)
	if err != nil {
		return nil, err
	}
	return &mapping, nil
}

func (ms MappingService) Create(ctx context.Context, mapping *mmapping.Mapping) error {
	headers, err := encodeStringMap(mapping.DefaultHeaders)
	if err != nil {
		return err
	}
	authConfig, err := encodeStringMap(mapping.AuthConfig)
	if err != nil {
		return err
	}
	return ms.queries.CreateMapping(ctx, gen.CreateMappingParams{
		ID:             mapping.ID,
		ApplicationID:  mapping.ApplicationID,
		EnvironmentID:  mapping.EnvironmentID,
		CountryID:      mapping.CountryID,
		BaseUrl:        mapping.BaseURL,
		Protocol:       mapping.Protocol,
		DefaultHeaders: headers,
		AuthConfig:     authConfig,
		IsActive:       mapping.Active,
		CreatedAt:      mapping.CreatedAt,
	})
}

func (ms MappingService) UpdateHeaders(ctx context.Context, mappingID idwrap.IDWrap, headers map[string]string) error {
	encoded, err := encodeStringMap(headers)
	if err != nil {
		return err
	}
	return ms.queries.UpdateMappingHeaders(ctx, gen.UpdateMappingHeadersParams{
		DefaultHeaders: encoded,
		UpdatedAt:      sql.NullTime{Time: dbtime.DBNow(), Valid: true},
		ID:             mappingID,
	})
}

// GetOrCreateByTriad resolves the single mapping owning a triad. A new
// mapping is seeded from the environment export: base URL from
// BASE_URL/baseUrl, header-like variables folded into default headers. An
// existing mapping gets the incoming headers merged key by key; its other
// keys stay untouched.
func (ms MappingService) GetOrCreateByTriad(ctx context.Context, appID, envID, countryID idwrap.IDWrap, envVars map[string]string) (*mmapping.Mapping, error) {
	incoming := mmapping.HeadersFromEnv(envVars)

	mapping, err := ms.GetByTriad(ctx, appID, envID, countryID)
	if err == nil {
		if len(incoming) > 0 {
			mapping.DefaultHeaders = mmapping.MergeHeaders(mapping.DefaultHeaders, incoming)
			if err := ms.UpdateHeaders(ctx, mapping.ID, mapping.DefaultHeaders); err != nil {
				return nil, err
			}
		}
		return mapping, nil
	}
	if err != ErrNoMappingFound {
		return nil, err
	}

	created := &mmapping.Mapping{
		ID:             idwrap.NewNow(),
		ApplicationID:  appID,
		EnvironmentID:  envID,
		CountryID:      countryID,
		BaseURL:        mmapping.BaseURLFromEnv(envVars),
		Protocol:       mmapping.DefaultProtocol,
		DefaultHeaders: incoming,
		Active:         true,
		CreatedAt:      dbtime.DBNow(),
	}
	if err := ms.Create(ctx, created); err != nil {
		return nil, err
	}
	return created, nil
}

// GetVariableCatalog reads the mapping's persisted variable catalog. A
// mapping with no catalog yet yields an empty one.
func (ms MappingService) GetVariableCatalog(ctx context.Context, mappingID idwrap.IDWrap) (mexecvars.Catalog, error) {
	raw, err := ms.queries.GetMappingExecutionVariables(ctx, mappingID)
	if err != nil {
		if err == sql.ErrNoRows {
			return mexecvars.Catalog{}, ErrNoMappingFound
		}
		return mexecvars.Catalog{}, err
	}
	if !raw.Valid || raw.String == "" {
		return mexecvars.New(), nil
	}
	var catalog mexecvars.Catalog
	if err := json.Unmarshal([]byte(raw.String), &catalog); err != nil {
		return mexecvars.Catalog{}, fmt.Errorf("invalid execution_variables for mapping %s: %w", mappingID, err)
	}
	if catalog.Variables == nil {
		catalog.Variables = make(map[string]string)
	}
	if catalog.RuntimeValues == nil {
		catalog.RuntimeValues = make(map[string]string)
	}
	return catalog, nil
}

// MergeVariableCatalog folds incoming into the persisted catalog and writes
// the result back in one update. The stored catalog only ever grows
// variable names; runtime values are overwritten selectively.
func (ms MappingService) MergeVariableCatalog(ctx context.Context, mappingID idwrap.IDWrap, incoming mexecvars.Catalog) (mexecvars.Catalog, error) {
	existing, err := ms.GetVariableCatalog(ctx, mappingID)
	if err != nil {
		return mexecvars.Catalog{}, err
	}

	merged := mexecvars.Merge(existing, incoming, dbtime.DBNow())
	data, err := json.Marshal(merged)
	if err != nil {
		return mexecvars.Catalog{}, err
	}

	err = ms.queries.UpdateMappingExecutionVariables(ctx, gen.UpdateMappingExecutionVariablesParams{
		ExecutionVariables: sql.NullString{String: string(data), Valid: true},
		UpdatedAt:          sql.NullTime{Time: dbtime.DBNow(), Valid: true},
		ID:                 mappingID,
	})
	if err != nil {
		return mexecvars.Catalog{}, err
	}
	return merged, nil
}
