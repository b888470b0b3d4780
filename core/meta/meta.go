package meta

// Service identity reported by the health endpoint, the OpenAPI document,
// and startup logs. Reported only, never configurable at runtime.
const (
	Title       = "ResearchHub API"
	Description = "AI-powered research paper discovery and RAG system"
	Version     = "0.1.0"
	ServiceName = "researchhub-api"
)
