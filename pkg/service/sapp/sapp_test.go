package sapp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qa-catalog/pkg/dbtest"
	"qa-catalog/pkg/service/sapp"
)

func TestGetOrCreateByCode(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db, queries, err := dbtest.GetTestPreparedQueries(ctx)
	require.NoError(t, err)
	defer db.Close()

	service := sapp.New(queries)

	_, err = service.GetByCode(ctx, "BILLING")
	require.ErrorIs(t, err, sapp.ErrNoAppFound)

	created, err := service.GetOrCreateByCode(ctx, "BILLING")
	require.NoError(t, err)
	assert.Equal(t, "BILLING", created.Code)
	assert.Equal(t, "BILLING", created.Name)
	assert.True(t, created.Active)
	assert.Contains(t, created.Description, "auto-created")

	again, err := service.GetOrCreateByCode(ctx, "BILLING")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
}
