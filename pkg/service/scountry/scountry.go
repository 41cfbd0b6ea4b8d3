package scountry

import (
	"context"
	"database/sql"

	"qa-catalog/pkg/model/mcountry"
	"qa-catalog/pkg/sqlc/gen"
)

var ErrNoCountryFound = sql.ErrNoRows

type CountryService struct {
	queries *gen.Queries
}

func New(queries *gen.Queries) CountryService {
	return CountryService{queries: queries}
}

func (cs CountryService) TX(tx *sql.Tx) CountryService {
	return CountryService{queries: cs.queries.WithTx(tx)}
}

func ConvertToModelCountry(country gen.Country) mcountry.Country {
	return mcountry.Country{
		ID:        country.ID,
		Code:      country.CountryCode,
		Name:      country.CountryName,
		CreatedAt: country.CreatedAt,
	}
}

// GetByCode resolves a country code. Countries are provisioned out of band;
// unknown codes are never created implicitly.
func (cs CountryService) GetByCode(ctx context.Context, code string) (*mcountry.Country, error) {
	country, err := cs.queries.GetCountryByCode(ctx, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNoCountryFound
		}
		return nil, err
	}
	item := ConvertToModelCountry(country)
	return &item, nil
}

func (cs CountryService) Create(ctx context.Context, country *mcountry.Country) error {
	return cs.queries.CreateCountry(ctx, gen.CreateCountryParams{
		ID:          country.ID,
		CountryCode: country.Code,
		CountryName: country.Name,
		CreatedAt:   country.CreatedAt,
	})
}
