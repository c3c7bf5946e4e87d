package facade

import (
	"context"

	"go.trai.ch/transfer/internal/core/ports"
)

// disabledTracer and disabledMetrics stand in for a tracer or recorder the caller left out.
type (
	disabledTracer  struct{}
	disabledSpan    struct{}
	disabledMetrics struct{}
)

func (disabledTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, disabledSpan{}
}

func (disabledSpan) End()                     {}
func (disabledSpan) RecordError(error)        {}
func (disabledSpan) SetAttribute(string, any) {}

func (disabledMetrics) ObserveCall(ports.CallObservation) {}
