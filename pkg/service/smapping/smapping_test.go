package smapping_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qa-catalog/pkg/dbtest"
	"qa-catalog/pkg/dbtime"
	"qa-catalog/pkg/idwrap"
	"qa-catalog/pkg/model/mapp"
	"qa-catalog/pkg/model/mcountry"
	"qa-catalog/pkg/model/menvironment"
	"qa-catalog/pkg/model/mexecvars"
	"qa-catalog/pkg/service/sapp"
	"qa-catalog/pkg/service/scountry"
	"qa-catalog/pkg/service/senvironment"
	"qa-catalog/pkg/service/smapping"
)

type fixture struct {
	db        *sql.DB
	service   smapping.MappingService
	appID     idwrap.IDWrap
	envID     idwrap.IDWrap
	countryID idwrap.IDWrap
}

func newFixture(ctx context.Context, t *testing.T) fixture {
	t.Helper()

	db, queries, err := dbtest.GetTestPreparedQueries(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	f := fixture{
		db:        db,
		service:   smapping.New(queries),
		appID:     idwrap.NewNow(),
		envID:     idwrap.NewNow(),
		countryID: idwrap.NewNow(),
	}

	require.NoError(t, sapp.New(queries).Create(ctx, &mapp.App{
		ID: f.appID, Code: "APP", Name: "App", Active: true, CreatedAt: dbtime.DBNow(),
	}))
	require.NoError(t, senvironment.New(queries).Create(ctx, &menvironment.Environment{
		ID: f.envID, Code: "STA", Name: "Staging", CreatedAt: dbtime.DBNow(),
	}))
	require.NoError(t, scountry.New(queries).Create(ctx, &mcountry.Country{
		ID: f.countryID, Code: "RO", Name: "Romania", CreatedAt: dbtime.DBNow(),
	}))
	return f
}

func TestGetOrCreateByTriadSeedsFromEnv(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(ctx, t)

	envVars := map[string]string{
		"BASE_URL":      "https://sta.example.com",
		"Authorization": "Bearer abc",
		"TOKEN":         "abc",
	}

	mapping, err := f.service.GetOrCreateByTriad(ctx, f.appID, f.envID, f.countryID, envVars)
	require.NoError(t, err)
	assert.Equal(t, "https://sta.example.com", mapping.BaseURL)
	assert.Equal(t, "https", mapping.Protocol)
	assert.True(t, mapping.Active)
	assert.Equal(t, map[string]string{"Authorization": "Bearer abc"}, mapping.DefaultHeaders)

	// Same triad resolves to the same record.
	again, err := f.service.GetOrCreateByTriad(ctx, f.appID, f.envID, f.countryID, nil)
	require.NoError(t, err)
	assert.Equal(t, mapping.ID, again.ID)
}

func TestGetOrCreateByTriadMergesHeaders(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(ctx, t)

	first, err := f.service.GetOrCreateByTriad(ctx, f.appID, f.envID, f.countryID, map[string]string{
		"Authorization": "Bearer old",
		"Accept":        "application/json",
	})
	require.NoError(t, err)

	second, err := f.service.GetOrCreateByTriad(ctx, f.appID, f.envID, f.countryID, map[string]string{
		"Authorization": "Bearer new",
	})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	assert.Equal(t, map[string]string{
		"Authorization": "Bearer new",
		"Accept":        "application/json",
	}, second.DefaultHeaders)

	// The merge was persisted, not just returned.
	stored, err := f.service.GetByTriad(ctx, f.appID, f.envID, f.countryID)
	require.NoError(t, err)
	assert.Equal(t, second.DefaultHeaders, stored.DefaultHeaders)
}

func TestVariableCatalogRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(ctx, t)

	mapping, err := f.service.GetOrCreateByTriad(ctx, f.appID, f.envID, f.countryID, nil)
	require.NoError(t, err)

	empty, err := f.service.GetVariableCatalog(ctx, mapping.ID)
	require.NoError(t, err)
	assert.Empty(t, empty.Variables)

	incoming := mexecvars.New()
	incoming.Variables["TOKEN"] = "{{TOKEN}}"
	incoming.RuntimeValues["TOKEN"] = "abc"

	merged, err := f.service.MergeVariableCatalog(ctx, mapping.ID, incoming)
	require.NoError(t, err)
	assert.Equal(t, mexecvars.UpdatedBy, merged.Metadata.UpdatedBy)

	stored, err := f.service.GetVariableCatalog(ctx, mapping.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"TOKEN": "{{TOKEN}}"}, stored.Variables)
	assert.Equal(t, map[string]string{"TOKEN": "abc"}, stored.RuntimeValues)

	// A later merge accumulates without losing earlier runtime values.
	later := mexecvars.New()
	later.Variables["SESSION_ID"] = "{{SESSION_ID}}"

	_, err = f.service.MergeVariableCatalog(ctx, mapping.ID, later)
	require.NoError(t, err)

	final, err := f.service.GetVariableCatalog(ctx, mapping.ID)
	require.NoError(t, err)
	assert.Len(t, final.Variables, 2)
	assert.Equal(t, "abc", final.RuntimeValues["TOKEN"])
}

func TestGetByTriadNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(ctx, t)

	_, err := f.service.GetByTriad(ctx, f.appID, f.envID, f.countryID)
	assert.ErrorIs(t, err, smapping.ErrNoMappingFound)
}

func TestUniqueTriadConstraint(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(ctx, t)

	first, err := f.service.GetOrCreateByTriad(ctx, f.appID, f.envID, f.countryID, nil)
	require.NoError(t, err)

	// A direct second insert for the same triad violates the unique index.
	dup := *first
	dup.ID = idwrap.NewNow()
	err = f.service.Create(ctx, &dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE constraint")
}
