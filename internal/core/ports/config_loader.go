package ports

import "go.trai.ch/transfer/internal/core/domain"

// ConfigLoader defines the interface for loading the tool settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the settings file from the given working directory upwards and returns the settings.
	Load(cwd string) (*domain.Settings, error)
}
