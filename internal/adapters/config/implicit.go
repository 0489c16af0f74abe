package config

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/esb/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	translationService  = "bazinga.jstranslation.dump_command"
	defaultLocaleParam  = "kernel.default_locale"
	symfonyFrontendFile = "public/index.php"
	legacyFrontendFile  = "web/app_dev.php"
)

// supportedElmVersions are probed newest first when matching a version constraint.
var supportedElmVersions = []string{"0.19.1", "0.19.0", "0.18.0"}

// guess builds the implicit layer from the project files and the Symfony console.
//
// Guesses run concurrently. Keys already provided by the explicit layer are not
// guessed, which spares console round trips. A failed guess leaves its key unset.
func (r *Resolver) guess(ctx context.Context, explicit domain.OptionSet, opts domain.Options) domain.OptionSet {
	var implicit domain.OptionSet

	g, ctx := errgroup.WithContext(ctx)

	if explicit.ElmVersion == nil {
		g.Go(func() error {
			version, err := r.guessElmVersion(opts)
			if err != nil {
				r.logger.Warn("unable to guess elm version: " + err.Error())
				return nil
			}
			implicit.ElmVersion = version
			return nil
		})
	}

	if explicit.EnableTranslations == nil {
		g.Go(func() error {
			found, err := r.console.HasService(ctx, opts, translationService)
			if err != nil {
				r.logger.Warn("unable to detect the translation bundle: " + err.Error())
				return nil
			}
			implicit.EnableTranslations = &found
			return nil
		})
	}

	if explicit.Lang == nil {
		g.Go(func() error {
			lang, err := r.console.QueryParameter(ctx, opts, defaultLocaleParam)
			if err != nil {
				r.logger.Warn("unable to guess lang: " + err.Error())
				return nil
			}
			implicit.Lang = lang
			return nil
		})
	}

	if explicit.URLPrefix == nil {
		g.Go(func() error {
			implicit.URLPrefix = r.guessURLPrefix(opts)
			return nil
		})
	}

	// Guesses never fail the group.
	_ = g.Wait()

	return implicit
}

// guessElmVersion derives the Elm generation from the Elm project file.
// It returns nil when the project has no Elm project file.
func (r *Resolver) guessElmVersion(opts domain.Options) (*string, error) {
	for _, name := range []string{domain.ElmJSONFileName, domain.ElmPackageFileName} {
		path := opts.Path(name)
		if !r.files.Exists(path) {
			continue
		}

		content, err := r.files.ReadFile(path)
		if err != nil {
			return nil, err
		}

		var project struct {
			ElmVersion string `json:"elm-version"`
		}
		if err := json.Unmarshal([]byte(content), &project); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
		}

		version, err := elmVersion(project.ElmVersion)
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		return &version, nil
	}

	return nil, nil
}

// guessURLPrefix looks for the front controller of the Symfony project.
func (r *Resolver) guessURLPrefix(opts domain.Options) *string {
	for _, candidate := range []string{symfonyFrontendFile, legacyFrontendFile} {
		if r.files.Exists(opts.Path(candidate)) {
			prefix := "/" + candidate[strings.LastIndex(candidate, "/")+1:]
			return &prefix
		}
	}
	return nil
}

// elmVersion maps the elm-version field of an Elm project file to a supported
// generation. The field is either an exact version ("0.19.1") or an Elm range
// constraint ("0.18.0 <= v < 0.19.0").
func elmVersion(raw string) (string, error) {
	raw = strings.TrimSpace(raw)

	if v, err := semver.NewVersion(raw); err == nil {
		return generation(v)
	}

	constraint, err := elmConstraint(raw)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrElmVersionUnknown, err.Error()), "elm_version", raw)
	}

	for _, candidate := range supportedElmVersions {
		v := semver.MustParse(candidate)
		if constraint.Check(v) {
			return generation(v)
		}
	}

	return "", zerr.With(zerr.Wrap(domain.ErrElmVersionUnknown, "no supported version in range"), "elm_version", raw)
}

// elmConstraint converts "A <= v < B" into a semver constraint.
func elmConstraint(raw string) (*semver.Constraints, error) {
	fields := strings.Fields(raw)
	if len(fields) != 5 || fields[2] != "v" {
		return nil, zerr.New("unrecognized version constraint")
	}

	lower := map[string]string{"<=": ">=", "<": ">"}[fields[1]]
	if lower == "" {
		return nil, zerr.New("unrecognized lower bound operator " + fields[1])
	}

	return semver.NewConstraint(fmt.Sprintf("%s %s, %s %s", lower, fields[0], fields[3], fields[4]))
}

func generation(v *semver.Version) (string, error) {
	g := fmt.Sprintf("%d.%d", v.Major(), v.Minor())
	switch g {
	case domain.ElmVersion018, domain.ElmVersion019:
		return g, nil
	default:
		return "", zerr.With(zerr.Wrap(domain.ErrElmVersionUnknown, "unsupported elm version"), "elm_version", v.Original())
	}
}
