package mmapping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"qa-catalog/pkg/model/mmapping"
)

func TestIsHeaderKey(t *testing.T) {
	t.Parallel()

	assert.True(t, mmapping.IsHeaderKey("Authorization"))
	assert.True(t, mmapping.IsHeaderKey("content-type"))
	assert.True(t, mmapping.IsHeaderKey("Accept"))
	assert.True(t, mmapping.IsHeaderKey("X-Custom-Header"))
	assert.True(t, mmapping.IsHeaderKey("api_header_key"))
	assert.False(t, mmapping.IsHeaderKey("BASE_URL"))
	assert.False(t, mmapping.IsHeaderKey("TOKEN"))
}

func TestHeadersFromEnv(t *testing.T) {
	t.Parallel()

	headers := mmapping.HeadersFromEnv(map[string]string{
		"Authorization": "Bearer abc",
		"BASE_URL":      "https://sta.example.com",
		"X-API-Header":  "v2",
		"TOKEN":         "abc",
	})
	assert.Equal(t, map[string]string{
		"Authorization": "Bearer abc",
		"X-API-Header":  "v2",
	}, headers)
}

func TestBaseURLFromEnv(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://sta.example.com",
		mmapping.BaseURLFromEnv(map[string]string{"BASE_URL": "https://sta.example.com"}))
	assert.Equal(t, "https://alt.example.com",
		mmapping.BaseURLFromEnv(map[string]string{"baseUrl": "https://alt.example.com"}))
	// BASE_URL wins over baseUrl.
	assert.Equal(t, "https://sta.example.com",
		mmapping.BaseURLFromEnv(map[string]string{
			"BASE_URL": "https://sta.example.com",
			"baseUrl":  "https://alt.example.com",
		}))
	assert.Equal(t, mmapping.PlaceholderBaseURL, mmapping.BaseURLFromEnv(nil))
}

func TestMergeHeaders(t *testing.T) {
	t.Parallel()

	existing := map[string]string{"Authorization": "Bearer old", "Accept": "application/json"}
	incoming := map[string]string{"Authorization": "Bearer new", "X-Trace": "on"}

	merged := mmapping.MergeHeaders(existing, incoming)
	assert.Equal(t, map[string]string{
		"Authorization": "Bearer new",
		"Accept":        "application/json",
		"X-Trace":       "on",
	}, merged)

	// Inputs stay untouched.
	assert.Equal(t, "Bearer old", existing["Authorization"])
	assert.NotContains(t, existing, "X-Trace")
}
