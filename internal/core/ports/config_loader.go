package ports

import "go.trai.ch/visit/internal/core/domain"

// ConfigLoader defines the interface for loading the client configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration visible from cwd. Missing files yield defaults.
	Load(cwd string) (*domain.Config, error)

	// SaveFileServer writes the file server settings back to the configuration file.
	SaveFileServer(cwd string, settings domain.FileServerSettings) error
}
