package services

import (
	"backend/core/dtos"
	"backend/core/meta"
)

type SysSvc interface {
	FetchHealth() dtos.HealthRes
	FetchWelcome() dtos.RootRes
}

type sysSvcImpl struct{}

func NewSysSvc() SysSvc {
	return &sysSvcImpl{}
}

// FetchHealth deliberately reads nothing but constants: the endpoint is a
// liveness probe, not a dependency check, and must stay I/O free.
func (s *sysSvcImpl) FetchHealth() dtos.HealthRes {
	return dtos.HealthRes{
		Status:  "ok",
		Service: meta.ServiceName,
		Version: meta.Version,
	}
}

func (s *sysSvcImpl) FetchWelcome() dtos.RootRes {
	return dtos.RootRes{
		Message: "ResearchHub API is running. Visit /docs for API documentation.",
	}
}
