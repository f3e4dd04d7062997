package ports

import "go.trai.ch/mru/internal/core/domain"

// ConfigLoader defines the interface for resolving the settings of an invocation.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load merges defaults, the config file and environment overrides.
	Load() (domain.Settings, error)
}
