package ports

import (
	"context"

	"go.trai.ch/esb/internal/core/domain"
)

// Console runs Symfony console commands inside the project described by the options.
//
//go:generate mockgen -source=console.go -destination=mocks/mock_console.go -package=mocks
type Console interface {
	// QueryRouting returns the router dump as a JSON document.
	// Output that is not a JSON object is normalized to "{}".
	QueryRouting(ctx context.Context, opts domain.Options) (string, error)

	// DumpTranslations writes the translation catalogs below the output folder.
	DumpTranslations(ctx context.Context, opts domain.Options) error

	// QueryParameter returns the value of a container parameter, or nil if it is not set.
	QueryParameter(ctx context.Context, opts domain.Options, name string) (*string, error)

	// HasService reports whether the container defines the service id.
	HasService(ctx context.Context, opts domain.Options, id string) (bool, error)
}
