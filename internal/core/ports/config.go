package ports

import (
	"context"

	"go.trai.ch/esb/internal/core/domain"
)

// ConfigResolver produces the resolved options for a project.
//
//go:generate mockgen -source=config.go -destination=mocks/mock_config.go -package=mocks
type ConfigResolver interface {
	// Load resolves the options. The overrides layer takes precedence over
	// every other source.
	Load(ctx context.Context, overrides domain.OptionSet) (domain.Options, error)
}
