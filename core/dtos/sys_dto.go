package dtos

// Field order is the wire order; monitoring tooling compares health
// bodies byte-for-byte across calls.
type HealthRes struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

type RootRes struct {
	Message string `json:"message"`
}
