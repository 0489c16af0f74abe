package domain

import (
	"maps"
	"path"
	"path/filepath"
	"strings"
)

// ElmVersion018 and ElmVersion019 are the Elm compiler generations the worker
// knows how to target.
const (
	ElmVersion018 = "0.18"
	ElmVersion019 = "0.19"
)

// Options is the fully resolved bridge configuration.
//
// An Options value is never mutated after resolution. Reloading the
// configuration produces a new value which replaces the old one as a whole.
type Options struct {
	Watch              bool              `yaml:"watch"`
	Dev                bool              `yaml:"dev"`
	ProjectRoot        string            `yaml:"projectRoot"`
	ElmRoot            string            `yaml:"elmRoot"`
	OutputFolder       string            `yaml:"outputFolder"`
	ElmVersion         string            `yaml:"elmVersion"`
	EnableRouting      bool              `yaml:"enableRouting"`
	EnableTranslations bool              `yaml:"enableTranslations"`
	URLPrefix          string            `yaml:"urlPrefix"`
	Lang               string            `yaml:"lang"`
	WatchFolders       []string          `yaml:"watchFolders"`
	WatchExtensions    []string          `yaml:"watchExtensions"`
	ReloadTriggers     []string          `yaml:"reloadTriggers"`
	EnvVariables       map[string]string `yaml:"envVariables"`
	ConsoleCommand     string            `yaml:"consoleCommand"`
	WorkerCommand      string            `yaml:"workerCommand"`

	// Env holds the resolved values of EnvVariables, keyed by logical name.
	// A nil value means the source variable is not defined.
	Env map[string]*string `yaml:"env,omitempty"`
}

// Path resolves rel against the project root. Absolute paths are returned cleaned.
func (o Options) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return filepath.Clean(rel)
	}
	return filepath.Join(o.ProjectRoot, rel)
}

// ElmPath resolves rel against the Elm root.
func (o Options) ElmPath(rel string) string {
	return filepath.Join(o.Path(o.ElmRoot), rel)
}

// EffectiveURLPrefix returns the URL prefix handed to the routing generator.
// Production builds are served from the web root, so the prefix only applies in dev.
func (o Options) EffectiveURLPrefix() string {
	if o.Dev {
		return o.URLPrefix
	}
	return ""
}

// ConsoleEnv returns the Symfony environment matching the build mode.
func (o Options) ConsoleEnv() string {
	if o.Dev {
		return "dev"
	}
	return "prod"
}

// WatchPatterns combines every watch folder with every watch extension into
// a glob pattern rooted at the project root.
func (o Options) WatchPatterns() []string {
	patterns := make([]string, 0, len(o.WatchFolders)*len(o.WatchExtensions))
	for _, folder := range o.WatchFolders {
		base := filepath.ToSlash(o.Path(folder))
		for _, ext := range o.WatchExtensions {
			patterns = append(patterns, path.Join(base, "**", "*."+strings.TrimPrefix(ext, ".")))
		}
	}
	return patterns
}

// ReloadPaths returns the absolute paths whose change requires the options
// to be resolved again.
func (o Options) ReloadPaths() PathSet {
	set := NewPathSet()
	for _, trigger := range o.ReloadTriggers {
		set.Add(o.Path(trigger))
	}
	return set
}

// WithEnv returns a copy of o carrying the given resolved environment values.
func (o Options) WithEnv(env map[string]*string) Options {
	o.Env = maps.Clone(env)
	return o
}

// EnvValues flattens Env into the shape sent to the worker.
func (o Options) EnvValues() map[string]*string {
	if o.Env == nil {
		return map[string]*string{}
	}
	return maps.Clone(o.Env)
}
