package importer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qa-catalog/internal/importer"
	"qa-catalog/pkg/dbtime"
	"qa-catalog/pkg/idwrap"
	"qa-catalog/pkg/logger/mocklogger"
	"qa-catalog/pkg/model/mcountry"
	"qa-catalog/pkg/model/menvironment"
	"qa-catalog/pkg/service/sapp"
	"qa-catalog/pkg/testutil"
)

const collectionJSON = `{
	"info": {"name": "Demo API", "schema": "https://schema.getpostman.com/json/collection/v2.1.0/collection.json"},
	"variable": [{"key": "TOKEN", "value": "abc123"}],
	"item": [
		{
			"name": "Users",
			"item": [
				{
					"name": "Get Profile",
					"request": {
						"method": "GET",
						"url": "{{BASE_URL}}/api/users/:userId/profile",
						"header": [{"key": "Authorization", "value": "Bearer {{TOKEN}}"}]
					}
				},
				{
					"name": "Create User",
					"request": {
						"method": "POST",
						"url": {"raw": "{{BASE_URL}}/api/users"},
						"body": {"mode": "raw", "raw": "{\"name\": \"{{userName}}\"}"}
					}
				}
			]
		}
	]
}`

const environmentJSON = `{
	"name": "STA",
	"values": [
		{"key": "BASE_URL", "value": "https://sta.example.com"},
		{"key": "Authorization", "value": "Bearer abc123"},
		{"key": "TOKEN", "value": "abc123"},
		{"key": "secret", "value": "off", "enabled": false}
	]
}`

func seedReferenceData(ctx context.Context, t *testing.T, services testutil.BaseTestServices) {
	t.Helper()
	err := services.Es.Create(ctx, &menvironment.Environment{
		ID:        idwrap.NewNow(),
		Code:      "STA",
		Name:      "Staging",
		CreatedAt: dbtime.DBNow(),
	})
	require.NoError(t, err)
	err = services.Cs.Create(ctx, &mcountry.Country{
		ID:        idwrap.NewNow(),
		Code:      "RO",
		Name:      "Romania",
		CreatedAt: dbtime.DBNow(),
	})
	require.NoError(t, err)
}

func newService(base *testutil.BaseDBQueries) *importer.Service {
	return importer.New(base.DB, base.Queries, importer.WithLogger(mocklogger.NewMockLogger()))
}

func baseRequest() importer.Request {
	return importer.Request{
		CollectionData:  []byte(collectionJSON),
		EnvironmentData: []byte(environmentJSON),
		ApplicationCode: "TEST_APP",
		EnvironmentCode: "STA",
		CountryCode:     "RO",
	}
}

func TestImportCollection(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.CreateBaseDB(ctx, t)
	defer base.Close()
	services := base.GetBaseServices()
	seedReferenceData(ctx, t, services)

	summary, err := newService(base).ImportCollection(ctx, baseRequest())
	require.NoError(t, err)

	assert.Equal(t, importer.OutcomeSuccess, summary.Outcome)
	assert.Equal(t, "TEST_APP", summary.Application)
	assert.Equal(t, "STA", summary.Environment)
	assert.Equal(t, "RO", summary.Country)
	assert.Equal(t, 2, summary.EndpointsCreated)
	assert.Equal(t, 0, summary.EndpointsUpdated)
	assert.Equal(t, 2, summary.EndpointsTotal)
	assert.Empty(t, summary.SkippedItems)

	// The application was auto-created inside the run.
	app, err := services.As.GetByCode(ctx, "TEST_APP")
	require.NoError(t, err)

	env, err := services.Es.GetByCode(ctx, "STA")
	require.NoError(t, err)
	country, err := services.Cs.GetByCode(ctx, "RO")
	require.NoError(t, err)

	// The mapping carries the environment's base URL and header-like vars.
	mapping, err := services.Ms.GetByTriad(ctx, app.ID, env.ID, country.ID)
	require.NoError(t, err)
	assert.Equal(t, summary.MappingID, mapping.ID)
	assert.Equal(t, "https://sta.example.com", mapping.BaseURL)
	assert.Equal(t, "https", mapping.Protocol)
	assert.Equal(t, map[string]string{"Authorization": "Bearer abc123"}, mapping.DefaultHeaders)

	// Endpoints are normalized and method-prefixed.
	getProfile, err := services.Eps.GetByName(ctx, mapping.ID, "GET Get Profile")
	require.NoError(t, err)
	assert.Equal(t, "/api/users/{userId}/profile", getProfile.Path)
	assert.Equal(t, "GET", getProfile.Method)
	assert.Nil(t, getProfile.Body)

	createUser, err := services.Eps.GetByName(ctx, mapping.ID, "POST Create User")
	require.NoError(t, err)
	assert.Equal(t, "/api/users", createUser.Path)
	require.NotNil(t, createUser.Body)
	assert.JSONEq(t, `{"name": "{{userName}}"}`, *createUser.Body)

	// The catalog holds the business variables only; BASE_URL never enters.
	catalog, err := services.Ms.GetVariableCatalog(ctx, mapping.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"TOKEN":         "{{TOKEN}}",
		"userName":      "{{userName}}",
		"Authorization": "{{Authorization}}",
	}, catalog.Variables)
	assert.Equal(t, "abc123", catalog.RuntimeValues["TOKEN"])
	assert.NotContains(t, catalog.Variables, "BASE_URL")
}

func TestImportCollectionIdempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.CreateBaseDB(ctx, t)
	defer base.Close()
	services := base.GetBaseServices()
	seedReferenceData(ctx, t, services)

	svc := newService(base)
	first, err := svc.ImportCollection(ctx, baseRequest())
	require.NoError(t, err)
	require.Equal(t, 2, first.EndpointsCreated)

	second, err := svc.ImportCollection(ctx, baseRequest())
	require.NoError(t, err)
	assert.Equal(t, importer.OutcomeSuccess, second.Outcome)
	assert.Equal(t, 0, second.EndpointsCreated)
	assert.Equal(t, 2, second.EndpointsUpdated)
	assert.Equal(t, first.MappingID, second.MappingID)

	count, err := services.Eps.CountByMapping(ctx, first.MappingID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestImportCollectionUpdatePreservesPathAndMethod(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.CreateBaseDB(ctx, t)
	defer base.Close()
	services := base.GetBaseServices()
	seedReferenceData(ctx, t, services)

	svc := newService(base)
	first, err := svc.ImportCollection(ctx, baseRequest())
	require.NoError(t, err)

	before, err := services.Eps.GetByName(ctx, first.MappingID, "POST Create User")
	require.NoError(t, err)

	// Re-import the same item with a changed URL and body: only body and
	// description may move.
	changed := baseRequest()
	changed.CollectionData = []byte(`{
		"info": {"name": "Demo API"},
		"item": [{
			"name": "Create User",
			"description": "now with more fields",
			"request": {
				"method": "POST",
				"url": "{{BASE_URL}}/api/v2/users",
				"body": {"mode": "raw", "raw": "{\"name\": \"x\", \"age\": 1}"}
			}
		}]
	}`)

	summary, err := svc.ImportCollection(ctx, changed)
	require.NoError(t, err)
	require.Equal(t, 1, summary.EndpointsUpdated)

	after, err := services.Eps.GetByName(ctx, first.MappingID, "POST Create User")
	require.NoError(t, err)
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, before.Path, after.Path)
	assert.Equal(t, before.Method, after.Method)
	assert.Equal(t, "now with more fields", after.Description)
	require.NotNil(t, after.Body)
	assert.JSONEq(t, `{"name": "x", "age": 1}`, *after.Body)
}

func TestImportCollectionMergesCatalog(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.CreateBaseDB(ctx, t)
	defer base.Close()
	services := base.GetBaseServices()
	seedReferenceData(ctx, t, services)

	svc := newService(base)
	first, err := svc.ImportCollection(ctx, baseRequest())
	require.NoError(t, err)

	second := baseRequest()
	second.CollectionData = []byte(`{
		"info": {"name": "Demo API"},
		"item": [{
			"name": "Get Session",
			"request": {"method": "GET", "url": "{{BASE_URL}}/sessions/{{SESSION_ID}}"}
		}]
	}`)
	second.EnvironmentData = nil

	summary, err := svc.ImportCollection(ctx, second)
	require.NoError(t, err)

	catalog, err := services.Ms.GetVariableCatalog(ctx, summary.MappingID)
	require.NoError(t, err)
	assert.Equal(t, first.MappingID, summary.MappingID)
	// New variables accumulate; earlier ones and their runtime values stay.
	assert.Contains(t, catalog.Variables, "SESSION_ID")
	assert.Contains(t, catalog.Variables, "TOKEN")
	assert.Equal(t, "abc123", catalog.RuntimeValues["TOKEN"])
}

func TestImportCollectionUnknownCountryRollsBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.CreateBaseDB(ctx, t)
	defer base.Close()
	services := base.GetBaseServices()
	seedReferenceData(ctx, t, services)

	req := baseRequest()
	req.CountryCode = "XX"

	summary, err := newService(base).ImportCollection(ctx, req)
	require.ErrorIs(t, err, importer.ErrReferenceNotFound)
	assert.Equal(t, importer.OutcomeFailure, summary.Outcome)

	// Nothing was written, including the auto-created application.
	_, err = services.As.GetByCode(ctx, "TEST_APP")
	assert.ErrorIs(t, err, sapp.ErrNoAppFound)
}

func TestImportCollectionUnknownEnvironment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.CreateBaseDB(ctx, t)
	defer base.Close()
	services := base.GetBaseServices()
	seedReferenceData(ctx, t, services)

	req := baseRequest()
	req.EnvironmentCode = "PROD"

	_, err := newService(base).ImportCollection(ctx, req)
	require.ErrorIs(t, err, importer.ErrReferenceNotFound)
}

func TestImportCollectionParseError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.CreateBaseDB(ctx, t)
	defer base.Close()
	services := base.GetBaseServices()
	seedReferenceData(ctx, t, services)

	req := baseRequest()
	req.CollectionData = []byte(`{"info": `)

	summary, err := newService(base).ImportCollection(ctx, req)
	require.ErrorIs(t, err, importer.ErrParse)
	assert.Equal(t, importer.OutcomeFailure, summary.Outcome)
}

func TestImportCollectionPartialOutcome(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.CreateBaseDB(ctx, t)
	defer base.Close()
	services := base.GetBaseServices()
	seedReferenceData(ctx, t, services)

	req := baseRequest()
	req.CollectionData = []byte(`{
		"info": {"name": "Demo API"},
		"item": [
			{
				"name": "Broken",
				"request": null
			},
			{
				"name": "Health",
				"request": {"method": "GET", "url": "{{BASE_URL}}/health"}
			}
		]
	}`)

	summary, err := newService(base).ImportCollection(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, importer.OutcomePartial, summary.Outcome)
	assert.Equal(t, 1, summary.EndpointsCreated)
	require.Len(t, summary.SkippedItems, 1)
	assert.Equal(t, "Broken", summary.SkippedItems[0].Name)
	assert.Equal(t, "item carries no request", summary.SkippedItems[0].Reason)

	count, err := services.Eps.CountByMapping(ctx, summary.MappingID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestImportCollectionStorageErrorRollsBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.CreateBaseDB(ctx, t)
	defer base.Close()
	services := base.GetBaseServices()
	seedReferenceData(ctx, t, services)

	// A hard storage failure during the upsert loop must fail the whole
	// run, not degrade it to a partial result.
	_, err := base.DB.ExecContext(ctx, "DROP TABLE application_endpoints")
	require.NoError(t, err)

	summary, err := newService(base).ImportCollection(ctx, baseRequest())
	require.Error(t, err)
	assert.Equal(t, importer.OutcomeFailure, summary.Outcome)
	assert.Empty(t, summary.SkippedItems)

	// The transaction rolled back: not even the mapping survived.
	app, err := services.As.GetByCode(ctx, "TEST_APP")
	assert.ErrorIs(t, err, sapp.ErrNoAppFound)
	assert.Nil(t, app)
}

func TestImportCollectionWithoutEnvironment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	base := testutil.CreateBaseDB(ctx, t)
	defer base.Close()
	services := base.GetBaseServices()
	seedReferenceData(ctx, t, services)

	req := baseRequest()
	req.EnvironmentData = nil

	summary, err := newService(base).ImportCollection(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, importer.OutcomeSuccess, summary.Outcome)

	app, err := services.As.GetByCode(ctx, "TEST_APP")
	require.NoError(t, err)
	env, err := services.Es.GetByCode(ctx, "STA")
	require.NoError(t, err)
	country, err := services.Cs.GetByCode(ctx, "RO")
	require.NoError(t, err)

	// No environment export: the mapping falls back to the placeholder
	// base URL and carries no default headers.
	mapping, err := services.Ms.GetByTriad(ctx, app.ID, env.ID, country.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", mapping.BaseURL)
	assert.Empty(t, mapping.DefaultHeaders)
}
