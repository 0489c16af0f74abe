// Package config resolves the bridge options from explicit, implicit and default layers.
package config

import (
	"context"

	"go.trai.ch/esb/internal/core/domain"
	"go.trai.ch/esb/internal/core/ports"
)

var _ ports.ConfigResolver = (*Resolver)(nil)

// Resolver implements ports.ConfigResolver.
type Resolver struct {
	logger  ports.Logger
	console ports.Console
	files   ports.FileSync
}

// NewResolver creates a Resolver. The console answers the implicit guesses.
func NewResolver(logger ports.Logger, console ports.Console, files ports.FileSync) *Resolver {
	return &Resolver{
		logger:  logger,
		console: console,
		files:   files,
	}
}

// Resolve merges the three layers key by key: explicit wins over implicit,
// implicit wins over defaults.
func Resolve(explicit, implicit, defaults domain.OptionSet) (domain.Options, error) {
	return domain.Merge(explicit, implicit, defaults).Options()
}

// Load resolves the options of the project selected by overrides.
//
// Sources that cannot be read or guessed are reported as warnings and treated
// as if they provided nothing.
func (r *Resolver) Load(ctx context.Context, overrides domain.OptionSet) (domain.Options, error) {
	defaults := domain.DefaultOptionSet(false, true)

	root, err := domain.Merge(overrides, defaults).Options()
	if err != nil {
		return domain.Options{}, err
	}

	fileLayer, err := readExplicit(r.files, root)
	if err != nil {
		r.logger.Warn("unable to load explicit configuration: " + err.Error())
		fileLayer = domain.OptionSet{}
	}
	explicit := domain.Merge(overrides, fileLayer)

	preliminary, err := domain.Merge(explicit, defaults).Options()
	if err != nil {
		return domain.Options{}, err
	}

	implicit := r.guess(ctx, explicit, preliminary)

	opts, err := Resolve(explicit, implicit, defaults)
	if err != nil {
		return domain.Options{}, err
	}

	return r.LoadEnvVariables(opts), nil
}
