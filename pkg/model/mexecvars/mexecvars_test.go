package mexecvars_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"qa-catalog/pkg/model/mexecvars"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

	existing := mexecvars.New()
	existing.Variables["TOKEN"] = "{{TOKEN}}"
	existing.Variables["userId"] = "{{userId}}"
	existing.RuntimeValues["TOKEN"] = "old-token"
	existing.RuntimeValues["userId"] = "42"

	incoming := mexecvars.New()
	incoming.Variables["TOKEN"] = "{{TOKEN}}"
	incoming.Variables["SESSION_ID"] = "{{SESSION_ID}}"
	incoming.RuntimeValues["TOKEN"] = "new-token"

	merged := mexecvars.Merge(existing, incoming, now)

	// Variable names accumulate by union.
	assert.Equal(t, map[string]string{
		"TOKEN":      "{{TOKEN}}",
		"userId":     "{{userId}}",
		"SESSION_ID": "{{SESSION_ID}}",
	}, merged.Variables)

	// Runtime values: incoming keys overwrite, absent keys survive.
	assert.Equal(t, map[string]string{
		"TOKEN":  "new-token",
		"userId": "42",
	}, merged.RuntimeValues)

	assert.Equal(t, "2025-03-14T10:30:00Z", merged.Metadata.LastUpdated)
	assert.Equal(t, mexecvars.UpdatedBy, merged.Metadata.UpdatedBy)
	assert.Equal(t, mexecvars.Version, merged.Metadata.Version)

	// Inputs stay untouched.
	assert.Equal(t, "old-token", existing.RuntimeValues["TOKEN"])
	assert.NotContains(t, existing.Variables, "SESSION_ID")
}

func TestMergeIntoEmpty(t *testing.T) {
	t.Parallel()

	incoming := mexecvars.New()
	incoming.Variables["TOKEN"] = "{{TOKEN}}"

	merged := mexecvars.Merge(mexecvars.Catalog{}, incoming, time.Now().UTC())
	assert.Equal(t, map[string]string{"TOKEN": "{{TOKEN}}"}, merged.Variables)
	assert.Empty(t, merged.RuntimeValues)
}
