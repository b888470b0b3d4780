package services

import (
	"fmt"

	"backend/core/meta"
)

type DocsSvc interface {
	FetchSpec() map[string]any
	RenderPage() string
}

type docsSvcImpl struct{}

func NewDocsSvc() DocsSvc {
	return &docsSvcImpl{}
}

// FetchSpec covers only the endpoints that exist. Keep it in sync with the
// route registrations in core/routes.
func (s *docsSvcImpl) FetchSpec() map[string]any {
	okResponse := map[string]any{
		"200": map[string]any{
			"description": "Successful Response",
			"content": map[string]any{
				"application/json": map[string]any{
					"schema": map[string]any{},
				},
			},
		},
	}

	return map[string]any{
		"openapi": "3.1.0",
		"info": map[string]any{
			"title":       meta.Title,
			"description": meta.Description,
			"version":     meta.Version,
		},
		"paths": map[string]any{
			"/api/v1/health": map[string]any{
				"get": map[string]any{
					"summary":     "Health Check",
					"description": "Process liveness probe used by container healthchecks and monitoring.",
					"responses":   okResponse,
				},
			},
			"/": map[string]any{
				"get": map[string]any{
					"summary":   "Root",
					"responses": okResponse,
				},
			},
		},
	}
}

func (s *docsSvcImpl) RenderPage() string {
	return fmt.Sprintf(swaggerPage, meta.Title)
}

// Swagger UI comes off the jsdelivr CDN; no assets ship with the binary.
const swaggerPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s - Swagger UI</title>
<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
<script>
SwaggerUIBundle({
    url: "/openapi.json",
    dom_id: "#swagger-ui",
    deepLinking: true,
    presets: [SwaggerUIBundle.presets.apis],
    layout: "BaseLayout"
});
</script>
</body>
</html>
`
