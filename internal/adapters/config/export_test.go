// export_test.go exports private functions for white-box testing.
package config

// Exported helpers.
var (
	ElmVersionExported = elmVersion
	ResolveEnvExported = resolveEnv
)
