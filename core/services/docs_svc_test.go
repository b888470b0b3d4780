package services

import (
	"testing"

	"backend/core/meta"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocsSvcFetchSpec(t *testing.T) {
	spec := NewDocsSvc().FetchSpec()

	assert.Equal(t, "3.1.0", spec["openapi"])

	info, ok := spec["info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, meta.Title, info["title"])
	assert.Equal(t, meta.Description, info["description"])
	assert.Equal(t, meta.Version, info["version"])

	// Only the routes that actually exist may be documented.
	paths, ok := spec["paths"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, paths, 2)
	assert.Contains(t, paths, "/api/v1/health")
	assert.Contains(t, paths, "/")
}

func TestDocsSvcRenderPage(t *testing.T) {
	page := NewDocsSvc().RenderPage()

	assert.Contains(t, page, "<title>"+meta.Title+" - Swagger UI</title>")
	assert.Contains(t, page, `url: "/openapi.json"`)
	assert.Contains(t, page, "swagger-ui-bundle.js")
}
