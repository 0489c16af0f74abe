package domain

import (
	"maps"
	"slices"

	"go.trai.ch/zerr"
)

// OptionSet is a single configuration layer.
//
// Every key is optional: a nil field means the layer does not provide the key,
// which covers both an absent key and an explicit null in the source document.
type OptionSet struct {
	Watch              *bool             `json:"watch" yaml:"watch"`
	Dev                *bool             `json:"dev" yaml:"dev"`
	ProjectRoot        *string           `json:"projectRoot" yaml:"projectRoot"`
	ElmRoot            *string           `json:"elmRoot" yaml:"elmRoot"`
	OutputFolder       *string           `json:"outputFolder" yaml:"outputFolder"`
	ElmVersion         *string           `json:"elmVersion" yaml:"elmVersion"`
	EnableRouting      *bool             `json:"enableRouting" yaml:"enableRouting"`
	EnableTranslations *bool             `json:"enableTranslations" yaml:"enableTranslations"`
	URLPrefix          *string           `json:"urlPrefix" yaml:"urlPrefix"`
	Lang               *string           `json:"lang" yaml:"lang"`
	WatchFolders       []string          `json:"watchFolders" yaml:"watchFolders"`
	WatchExtensions    []string          `json:"watchExtensions" yaml:"watchExtensions"`
	ReloadTriggers     []string          `json:"reloadTriggers" yaml:"reloadTriggers"`
	EnvVariables       map[string]string `json:"envVariables" yaml:"envVariables"`
	ConsoleCommand     *string           `json:"consoleCommand" yaml:"consoleCommand"`
	WorkerCommand      *string           `json:"workerCommand" yaml:"workerCommand"`
}

// Defaults used when neither the explicit nor the implicit layer provides a key.
const (
	DefaultProjectRoot    = "./"
	DefaultElmRoot        = "./assets/elm"
	DefaultOutputFolder   = "./elm-stuff/generated-code/elm-symfony-bridge"
	DefaultURLPrefix      = "/index.php"
	DefaultLang           = "en"
	DefaultConsoleCommand = "bin/console"
	DefaultWorkerCommand  = "elm-symfony-bridge-worker"
)

// DefaultWatchFolders lists the Symfony folders whose changes affect routing or translations.
func DefaultWatchFolders() []string {
	return []string{"src", "app", "config", "translations"}
}

// DefaultWatchExtensions lists the file extensions Symfony reads routes and translations from.
func DefaultWatchExtensions() []string {
	return []string{"php", "yaml", "yml", "xml"}
}

// DefaultReloadTriggers lists the project files whose change invalidates the resolved options.
func DefaultReloadTriggers() []string {
	return []string{"elm.json", "elm-package.json", "package.json", "composer.json", ExplicitConfigFileName}
}

// DefaultOptionSet returns the default layer. Every key is provided.
// The watch and dev defaults depend on how the bridge was started.
func DefaultOptionSet(watch, dev bool) OptionSet {
	return OptionSet{
		Watch:              Ptr(watch),
		Dev:                Ptr(dev),
		ProjectRoot:        Ptr(DefaultProjectRoot),
		ElmRoot:            Ptr(DefaultElmRoot),
		OutputFolder:       Ptr(DefaultOutputFolder),
		ElmVersion:         Ptr(ElmVersion019),
		EnableRouting:      Ptr(true),
		EnableTranslations: Ptr(true),
		URLPrefix:          Ptr(DefaultURLPrefix),
		Lang:               Ptr(DefaultLang),
		WatchFolders:       DefaultWatchFolders(),
		WatchExtensions:    DefaultWatchExtensions(),
		ReloadTriggers:     DefaultReloadTriggers(),
		EnvVariables:       map[string]string{},
		ConsoleCommand:     Ptr(DefaultConsoleCommand),
		WorkerCommand:      Ptr(DefaultWorkerCommand),
	}
}

// Merge combines layers by precedence: for each key the first layer that
// provides it wins. Layers are passed highest precedence first.
func Merge(layers ...OptionSet) OptionSet {
	var out OptionSet
	for i := len(layers) - 1; i >= 0; i-- {
		l := layers[i]
		out.Watch = pick(l.Watch, out.Watch)
		out.Dev = pick(l.Dev, out.Dev)
		out.ProjectRoot = pick(l.ProjectRoot, out.ProjectRoot)
		out.ElmRoot = pick(l.ElmRoot, out.ElmRoot)
		out.OutputFolder = pick(l.OutputFolder, out.OutputFolder)
		out.ElmVersion = pick(l.ElmVersion, out.ElmVersion)
		out.EnableRouting = pick(l.EnableRouting, out.EnableRouting)
		out.EnableTranslations = pick(l.EnableTranslations, out.EnableTranslations)
		out.URLPrefix = pick(l.URLPrefix, out.URLPrefix)
		out.Lang = pick(l.Lang, out.Lang)
		out.ConsoleCommand = pick(l.ConsoleCommand, out.ConsoleCommand)
		out.WorkerCommand = pick(l.WorkerCommand, out.WorkerCommand)
		if l.WatchFolders != nil {
			out.WatchFolders = slices.Clone(l.WatchFolders)
		}
		if l.WatchExtensions != nil {
			out.WatchExtensions = slices.Clone(l.WatchExtensions)
		}
		if l.ReloadTriggers != nil {
			out.ReloadTriggers = slices.Clone(l.ReloadTriggers)
		}
		if l.EnvVariables != nil {
			out.EnvVariables = maps.Clone(l.EnvVariables)
		}
	}
	return out
}

// Options converts a fully populated layer into resolved Options.
// It fails with ErrIncompleteOptions naming the first missing key.
func (s OptionSet) Options() (Options, error) {
	missing := s.missingKey()
	if missing != "" {
		return Options{}, zerr.With(zerr.Wrap(ErrIncompleteOptions, "cannot resolve options"), "key", missing)
	}

	return Options{
		Watch:              *s.Watch,
		Dev:                *s.Dev,
		ProjectRoot:        *s.ProjectRoot,
		ElmRoot:            *s.ElmRoot,
		OutputFolder:       *s.OutputFolder,
		ElmVersion:         *s.ElmVersion,
		EnableRouting:      *s.EnableRouting,
		EnableTranslations: *s.EnableTranslations,
		URLPrefix:          *s.URLPrefix,
		Lang:               *s.Lang,
		WatchFolders:       slices.Clone(s.WatchFolders),
		WatchExtensions:    slices.Clone(s.WatchExtensions),
		ReloadTriggers:     slices.Clone(s.ReloadTriggers),
		EnvVariables:       maps.Clone(s.EnvVariables),
		ConsoleCommand:     *s.ConsoleCommand,
		WorkerCommand:      *s.WorkerCommand,
	}, nil
}

//nolint:gocyclo // flat list of keys
func (s OptionSet) missingKey() string {
	switch {
	case s.Watch == nil:
		return "watch"
	case s.Dev == nil:
		return "dev"
	case s.ProjectRoot == nil:
		return "projectRoot"
	case s.ElmRoot == nil:
		return "elmRoot"
	case s.OutputFolder == nil:
		return "outputFolder"
	case s.ElmVersion == nil:
		return "elmVersion"
	case s.EnableRouting == nil:
		return "enableRouting"
	case s.EnableTranslations == nil:
		return "enableTranslations"
	case s.URLPrefix == nil:
		return "urlPrefix"
	case s.Lang == nil:
		return "lang"
	case s.WatchFolders == nil:
		return "watchFolders"
	case s.WatchExtensions == nil:
		return "watchExtensions"
	case s.ReloadTriggers == nil:
		return "reloadTriggers"
	case s.EnvVariables == nil:
		return "envVariables"
	case s.ConsoleCommand == nil:
		return "consoleCommand"
	case s.WorkerCommand == nil:
		return "workerCommand"
	}
	return ""
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

func pick[T any](high, low *T) *T {
	if high != nil {
		v := *high
		return &v
	}
	return low
}
