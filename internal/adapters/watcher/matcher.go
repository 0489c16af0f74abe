package watcher

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"go.trai.ch/esb/internal/core/domain"
	"go.trai.ch/zerr"
)

// Change classifies a changed path.
type Change uint8

const (
	// ChangeIgnored means the path affects neither the options nor the generated code.
	ChangeIgnored Change = iota
	// ChangeSource means the path may change the routes or translations.
	ChangeSource
	// ChangeReload means the path may change the resolved options.
	ChangeReload
)

// Matcher classifies changed paths against the watch patterns and reload
// triggers of one Options value.
type Matcher struct {
	triggers domain.PathSet
	sources  []glob.Glob
}

// NewMatcher compiles the watch patterns of opts.
func NewMatcher(opts domain.Options) (*Matcher, error) {
	m := &Matcher{triggers: opts.ReloadPaths()}

	for _, pattern := range opts.WatchPatterns() {
		// "dir/**/*.ext" must also match files directly inside dir.
		for _, variant := range []string{pattern, strings.Replace(pattern, "/**/", "/", 1)} {
			g, err := glob.Compile(variant, '/')
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrGlobFailed.Error()), "pattern", variant)
			}
			m.sources = append(m.sources, g)
		}
	}

	return m, nil
}

// Classify reports how a change of path affects the bridge.
// Reload triggers take precedence over watch patterns.
func (m *Matcher) Classify(path string) Change {
	if m.triggers.Has(path) {
		return ChangeReload
	}

	slashed := filepath.ToSlash(filepath.Clean(path))
	for _, g := range m.sources {
		if g.Match(slashed) {
			return ChangeSource
		}
	}

	return ChangeIgnored
}
