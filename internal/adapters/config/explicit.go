package config

import (
	"encoding/json"

	"go.trai.ch/esb/internal/core/domain"
	"go.trai.ch/esb/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// packageManifest is the part of package.json holding the explicit configuration.
type packageManifest struct {
	Bridge *domain.OptionSet `json:"elm-symfony-bridge"`
}

// readExplicit reads the explicit layer of the project rooted at opts.ProjectRoot.
// The standalone yaml file takes precedence over the package.json key.
// A project without either source has an empty explicit layer.
func readExplicit(files ports.FileSync, opts domain.Options) (domain.OptionSet, error) {
	if path := opts.Path(domain.ExplicitConfigFileName); files.Exists(path) {
		content, err := files.ReadFile(path)
		if err != nil {
			return domain.OptionSet{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
		}

		var layer domain.OptionSet
		if err := yaml.Unmarshal([]byte(content), &layer); err != nil {
			return domain.OptionSet{}, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
		}
		return layer, nil
	}

	path := opts.Path(domain.PackageFileName)
	if !files.Exists(path) {
		return domain.OptionSet{}, nil
	}

	content, err := files.ReadFile(path)
	if err != nil {
		return domain.OptionSet{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var manifest packageManifest
	if err := json.Unmarshal([]byte(content), &manifest); err != nil {
		return domain.OptionSet{}, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}
	if manifest.Bridge == nil {
		return domain.OptionSet{}, nil
	}

	return *manifest.Bridge, nil
}
