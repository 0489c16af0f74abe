package domain

const (
	// RoutingFileName is the name of the generated routing module inside the Elm root.
	RoutingFileName = "Routing.elm"

	// PackageFileName is the npm manifest carrying the explicit configuration.
	PackageFileName = "package.json"

	// PackageConfigKey is the package.json key holding the explicit configuration.
	PackageConfigKey = "elm-symfony-bridge"

	// ExplicitConfigFileName is the standalone explicit configuration file.
	// It takes precedence over the package.json key when present.
	ExplicitConfigFileName = "elm-symfony-bridge.yaml"

	// ElmJSONFileName is the Elm 0.19 project file.
	ElmJSONFileName = "elm.json"

	// ElmPackageFileName is the Elm 0.18 project file.
	ElmPackageFileName = "elm-package.json"

	// EnvFileName is the base environment file.
	EnvFileName = ".env"

	// EnvLocalFileName is the local environment file overriding EnvFileName.
	EnvLocalFileName = ".env.local"

	// TranslationsDirName is the folder the translation dump writes catalogs into.
	TranslationsDirName = "translations"

	// RoutingCacheKey is the change cache key of the routing task.
	RoutingCacheKey = "routing"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// TranslationCacheKey returns the change cache key of a translation catalog.
func TranslationCacheKey(path string) string {
	return "translations " + path
}
