package ports

import (
	"time"

	"go.trai.ch/transfer/internal/core/domain"
)

// Call outcomes recorded by the facade.
const (
	OutcomeSuccess            = "success"
	OutcomeInvalidArgument    = "invalid_argument"
	OutcomeBackendUnavailable = "backend_unavailable"
	OutcomeBackendFailure     = "backend_failure"
)

// CallObservation describes one facade call.
type CallObservation struct {
	Capability domain.Capability
	Operation  string
	// Generation is empty when the call failed before detection.
	Generation domain.Generation
	Outcome    string
	Duration   time.Duration
}

// Metrics records facade activity.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// ObserveCall records one facade call and its outcome.
	ObserveCall(obs CallObservation)
}
