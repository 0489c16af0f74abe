package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/esb/internal/adapters/config"
	"go.trai.ch/esb/internal/adapters/fs"
	"go.trai.ch/esb/internal/core/domain"
	"go.trai.ch/esb/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestResolve_Precedence(t *testing.T) {
	defaults := domain.DefaultOptionSet(false, true)
	defaults.Lang = domain.Ptr("en")
	defaults.EnableRouting = domain.Ptr(true)

	implicit := domain.OptionSet{Lang: nil}
	explicit := domain.OptionSet{EnableRouting: domain.Ptr(false)}

	opts, err := config.Resolve(explicit, implicit, defaults)
	require.NoError(t, err)

	assert.Equal(t, "en", opts.Lang)
	assert.False(t, opts.EnableRouting)
}

func TestResolve_Incomplete(t *testing.T) {
	_, err := config.Resolve(domain.OptionSet{}, domain.OptionSet{}, domain.OptionSet{})
	require.ErrorIs(t, err, domain.ErrIncompleteOptions)
}

type project struct {
	root    string
	console *mocks.MockConsole
	logger  *mocks.MockLogger
}

func newProject(t *testing.T) *project {
	t.Helper()

	ctrl := gomock.NewController(t)
	return &project{
		root:    t.TempDir(),
		console: mocks.NewMockConsole(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
	}
}

func (p *project) write(t *testing.T, name, content string) {
	t.Helper()

	path := filepath.Join(p.root, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func (p *project) resolver() *config.Resolver {
	return config.NewResolver(p.logger, p.console, fs.NewSync())
}

func (p *project) overrides() domain.OptionSet {
	return domain.OptionSet{ProjectRoot: domain.Ptr(p.root)}
}

func (p *project) expectConsole(hasTranslations bool, locale *string) {
	p.console.EXPECT().HasService(gomock.Any(), gomock.Any(), "bazinga.jstranslation.dump_command").Return(hasTranslations, nil)
	p.console.EXPECT().QueryParameter(gomock.Any(), gomock.Any(), "kernel.default_locale").Return(locale, nil)
}

func TestResolver_Load_Defaults(t *testing.T) {
	p := newProject(t)
	p.expectConsole(true, nil)

	opts, err := p.resolver().Load(t.Context(), p.overrides())
	require.NoError(t, err)

	assert.Equal(t, p.root, opts.ProjectRoot)
	assert.Equal(t, domain.ElmVersion019, opts.ElmVersion)
	assert.Equal(t, domain.DefaultLang, opts.Lang)
	assert.Equal(t, domain.DefaultURLPrefix, opts.URLPrefix)
	assert.True(t, opts.EnableTranslations)
	assert.Empty(t, opts.Env)
}

func TestResolver_Load_ImplicitGuesses(t *testing.T) {
	p := newProject(t)
	p.write(t, "elm-package.json", `{"elm-version": "0.18.0 <= v < 0.19.0"}`)
	p.write(t, "web/app_dev.php", "<?php")
	p.expectConsole(false, domain.Ptr("fr"))

	opts, err := p.resolver().Load(t.Context(), p.overrides())
	require.NoError(t, err)

	assert.Equal(t, domain.ElmVersion018, opts.ElmVersion)
	assert.Equal(t, "fr", opts.Lang)
	assert.Equal(t, "/app_dev.php", opts.URLPrefix)
	assert.False(t, opts.EnableTranslations)
}

func TestResolver_Load_ExplicitYAMLWins(t *testing.T) {
	p := newProject(t)
	p.write(t, "elm.json", `{"elm-version": "0.19.1"}`)
	p.write(t, "public/index.php", "<?php")
	p.write(t, "package.json", `{"elm-symfony-bridge": {"lang": "de"}}`)
	p.write(t, "elm-symfony-bridge.yaml", "lang: nl\nenableTranslations: false\nelmRoot: ./frontend\n")
	// Explicit keys are never guessed.
	p.console.EXPECT().HasService(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	p.console.EXPECT().QueryParameter(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	opts, err := p.resolver().Load(t.Context(), p.overrides())
	require.NoError(t, err)

	assert.Equal(t, "nl", opts.Lang)
	assert.False(t, opts.EnableTranslations)
	assert.Equal(t, "./frontend", opts.ElmRoot)
	assert.Equal(t, domain.ElmVersion019, opts.ElmVersion)
	assert.Equal(t, "/index.php", opts.URLPrefix)
}

func TestResolver_Load_PackageJSON(t *testing.T) {
	p := newProject(t)
	p.write(t, "package.json", `{"name": "app", "elm-symfony-bridge": {"urlPrefix": "/app.php", "lang": null, "watchFolders": ["src"]}}`)
	p.expectConsole(true, domain.Ptr("es"))

	opts, err := p.resolver().Load(t.Context(), p.overrides())
	require.NoError(t, err)

	assert.Equal(t, "/app.php", opts.URLPrefix)
	assert.Equal(t, "es", opts.Lang)
	assert.Equal(t, []string{"src"}, opts.WatchFolders)
}

func TestResolver_Load_OverridesWin(t *testing.T) {
	p := newProject(t)
	p.write(t, "elm-symfony-bridge.yaml", "lang: nl\n")
	p.console.EXPECT().HasService(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)

	overrides := p.overrides()
	overrides.Lang = domain.Ptr("it")

	opts, err := p.resolver().Load(t.Context(), overrides)
	require.NoError(t, err)
	assert.Equal(t, "it", opts.Lang)
}

func TestResolver_Load_MalformedExplicitIsIgnored(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{name: "yaml", file: "elm-symfony-bridge.yaml", body: "lang: [unterminated"},
		{name: "package.json", file: "package.json", body: `{"elm-symfony-bridge": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newProject(t)
			p.write(t, tt.file, tt.body)
			p.expectConsole(true, nil)
			p.logger.EXPECT().Warn(gomock.Any()).Times(1)

			opts, err := p.resolver().Load(t.Context(), p.overrides())
			require.NoError(t, err)
			assert.Equal(t, domain.DefaultLang, opts.Lang)
		})
	}
}

func TestResolver_Load_FailedGuessDegradesToDefault(t *testing.T) {
	p := newProject(t)
	p.write(t, "elm.json", `{"elm-version": "1.0.0"}`)
	p.console.EXPECT().HasService(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, zerr.New("console missing"))
	p.console.EXPECT().QueryParameter(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, zerr.New("console missing"))
	p.logger.EXPECT().Warn(gomock.Any()).Times(3)

	opts, err := p.resolver().Load(t.Context(), p.overrides())
	require.NoError(t, err)

	assert.Equal(t, domain.ElmVersion019, opts.ElmVersion)
	assert.True(t, opts.EnableTranslations)
	assert.Equal(t, domain.DefaultLang, opts.Lang)
}

func TestResolver_LoadEnvVariables(t *testing.T) {
	p := newProject(t)
	p.write(t, ".env", "A=1\nB=base\nEMPTY=\n")
	p.write(t, ".env.local", "A=2\n")

	opts, err := domain.DefaultOptionSet(false, true).Options()
	require.NoError(t, err)
	opts.ProjectRoot = p.root
	opts.EnvVariables = map[string]string{"FOO": "A", "BAR": "B", "NONE": "MISSING", "BLANK": "EMPTY"}

	resolved := p.resolver().LoadEnvVariables(opts)

	require.NotNil(t, resolved.Env["FOO"])
	assert.Equal(t, "2", *resolved.Env["FOO"])
	require.NotNil(t, resolved.Env["BAR"])
	assert.Equal(t, "base", *resolved.Env["BAR"])
	assert.Contains(t, resolved.Env, "NONE")
	assert.Nil(t, resolved.Env["NONE"])
	assert.Nil(t, resolved.Env["BLANK"])
	assert.Nil(t, opts.Env, "input options must not be modified")
}

func TestResolver_LoadEnvVariables_NoFiles(t *testing.T) {
	p := newProject(t)

	opts := domain.Options{ProjectRoot: p.root, EnvVariables: map[string]string{"FOO": "A"}}
	resolved := p.resolver().LoadEnvVariables(opts)

	assert.Contains(t, resolved.Env, "FOO")
	assert.Nil(t, resolved.Env["FOO"])
}
