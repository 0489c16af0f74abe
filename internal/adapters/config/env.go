package config

import (
	"github.com/subosito/gotenv"
	"go.trai.ch/esb/internal/core/domain"
)

// LoadEnvVariables resolves every declared environment variable from the
// project's .env and .env.local files. The local file wins when it defines a
// variable. Missing files and unreadable entries leave the affected values nil.
func (r *Resolver) LoadEnvVariables(opts domain.Options) domain.Options {
	base := r.readEnvFile(opts.Path(domain.EnvFileName))
	local := r.readEnvFile(opts.Path(domain.EnvLocalFileName))

	return opts.WithEnv(resolveEnv(opts.EnvVariables, base, local))
}

func (r *Resolver) readEnvFile(path string) gotenv.Env {
	if !r.files.Exists(path) {
		return nil
	}

	content, err := r.files.ReadFile(path)
	if err != nil {
		r.logger.Warn("unable to read environment file: " + err.Error())
		return nil
	}

	env, err := gotenv.Unmarshal(content)
	if err != nil {
		r.logger.Warn("unable to parse environment file " + path + ": " + err.Error())
		return nil
	}

	return env
}

// resolveEnv maps each logical name to the value of its source variable.
// The local file wins whenever it defines the variable, even as empty.
// An empty value counts as undefined.
func resolveEnv(declared map[string]string, base, local gotenv.Env) map[string]*string {
	resolved := make(map[string]*string, len(declared))

	for name, source := range declared {
		value, ok := local[source]
		if !ok {
			value = base[source]
		}
		if value == "" {
			resolved[name] = nil
			continue
		}
		resolved[name] = &value
	}

	return resolved
}
