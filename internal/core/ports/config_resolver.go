// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/stitch/internal/core/domain"

// ConfigResolver resolves build configuration and targets from a project root.
// Implementations must be deterministic for a fixed filesystem state.
//
//go:generate mockgen -source=config_resolver.go -destination=mocks/mock_config_resolver.go -package=mocks
type ConfigResolver interface {
	// Resolve discovers and loads the configuration for the given root.
	// Returns domain.ErrConfigNotFound if no configuration file exists.
	Resolve(rootDir string) (*domain.Config, error)

	// Create builds a resolved configuration from an explicitly supplied one,
	// applying defaults and environment loading. Explicit configuration takes
	// precedence over filesystem discovery.
	Create(explicit *domain.Config, rootDir string) (*domain.Config, error)

	// ResolveTargets resolves the output targets declared for the root.
	// A root with no declared targets resolves to the default target.
	ResolveTargets(rootDir string) ([]domain.Target, error)
}
