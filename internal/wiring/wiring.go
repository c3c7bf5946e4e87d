// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/transfer/internal/adapters/config"
	_ "go.trai.ch/transfer/internal/adapters/detector"
	_ "go.trai.ch/transfer/internal/adapters/logger"
	_ "go.trai.ch/transfer/internal/adapters/metrics"
	_ "go.trai.ch/transfer/internal/adapters/pom"
	_ "go.trai.ch/transfer/internal/adapters/registry"
	_ "go.trai.ch/transfer/internal/adapters/repository"
	_ "go.trai.ch/transfer/internal/adapters/telemetry"
	// Register backend nodes.
	_ "go.trai.ch/transfer/internal/backends/maven3"
	_ "go.trai.ch/transfer/internal/backends/maven31"
	// Register app and engine nodes.
	_ "go.trai.ch/transfer/internal/app"
	_ "go.trai.ch/transfer/internal/engine/facade"
)
