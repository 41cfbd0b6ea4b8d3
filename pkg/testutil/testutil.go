package testutil

import (
	"context"
	"database/sql"
	"testing"

	"qa-catalog/pkg/dbtest"
	"qa-catalog/pkg/service/sapp"
	"qa-catalog/pkg/service/scountry"
	"qa-catalog/pkg/service/sendpoint"
	"qa-catalog/pkg/service/senvironment"
	"qa-catalog/pkg/service/smapping"
	"qa-catalog/pkg/sqlc/gen"
)

type BaseDBQueries struct {
	Queries *gen.Queries
	DB      *sql.DB
	t       *testing.T
	ctx     context.Context
}

type BaseTestServices struct {
	DB  *sql.DB
	As  sapp.AppService
	Es  senvironment.EnvironmentService
	Cs  scountry.CountryService
	Ms  smapping.MappingService
	Eps sendpoint.EndpointService
}

func CreateBaseDB(ctx context.Context, t *testing.T) *BaseDBQueries {
	db, err := dbtest.GetTestDB(ctx)
	if err != nil {
		t.Fatal(err)
	}
	queries, err := gen.Prepare(ctx, db)
	if err != nil {
		t.Fatal(err)
	}

	return &BaseDBQueries{Queries: queries, t: t, ctx: ctx, DB: db}
}

func (c BaseDBQueries) GetBaseServices() BaseTestServices {
	queries := c.Queries

	return BaseTestServices{
		DB:  c.DB,
		As:  sapp.New(queries),
		Es:  senvironment.New(queries),
		Cs:  scountry.New(queries),
		Ms:  smapping.New(queries),
		Eps: sendpoint.New(queries),
	}
}

func (b BaseDBQueries) Close() {
	err := b.DB.Close()
	if err != nil {
		b.t.Error(err)
	}
	err = b.Queries.Close()
	if err != nil {
		b.t.Error(err)
	}
}

func AssertFatal[c comparable](t *testing.T, expected, got c) {
	t.Helper()
	if got != expected {
		t.Fatalf("got %v, expected %v", got, expected)
	}
}

func Assert[c comparable](t *testing.T, expected, got c) {
	t.Helper()
	if got != expected {
		t.Errorf("got %v, expected %v", got, expected)
	}
}
