package services

import (
	"testing"

	"backend/core/dtos"

	"github.com/stretchr/testify/assert"
)

func TestSysSvcFetchHealth(t *testing.T) {
	svc := NewSysSvc()

	res := svc.FetchHealth()
	assert.Equal(t, dtos.HealthRes{
		Status:  "ok",
		Service: "researchhub-api",
		Version: "0.1.0",
	}, res)

	// Constant by construction; repeated probes must not drift.
	assert.Equal(t, res, svc.FetchHealth())
}

func TestSysSvcFetchWelcome(t *testing.T) {
	res := NewSysSvc().FetchWelcome()

	assert.Equal(t, "ResearchHub API is running. Visit /docs for API documentation.", res.Message)
}
