package ports

import "go.trai.ch/transfer/internal/core/domain"

// GenerationDetector reports which engine generation is active in the current process.
//
//go:generate go run go.uber.org/mock/mockgen -source=detector.go -destination=mocks/mock_detector.go -package=mocks
type GenerationDetector interface {
	// Detect never fails; it falls back to the oldest supported generation.
	Detect() domain.Generation

	// Explain returns the detected generation together with the evidence for it.
	Explain() domain.Detection
}
