package watcher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/esb/internal/adapters/watcher"
	"go.trai.ch/esb/internal/core/domain"
)

func TestMatcher_Classify(t *testing.T) {
	opts, err := domain.DefaultOptionSet(true, true).Options()
	require.NoError(t, err)
	opts.ProjectRoot = "/project"

	m, err := watcher.NewMatcher(opts)
	require.NoError(t, err)

	tests := []struct {
		path string
		want watcher.Change
	}{
		{path: "/project/elm.json", want: watcher.ChangeReload},
		{path: "/project/package.json", want: watcher.ChangeReload},
		{path: "/project/elm-symfony-bridge.yaml", want: watcher.ChangeReload},
		{path: "/project/config/routes.yaml", want: watcher.ChangeSource},
		{path: "/project/config/routes/annotations.yml", want: watcher.ChangeSource},
		{path: "/project/src/Controller/HomeController.php", want: watcher.ChangeSource},
		{path: "/project/translations/messages.fr.xml", want: watcher.ChangeSource},
		{path: "/project/src/Controller/home.twig", want: watcher.ChangeIgnored},
		{path: "/project/assets/elm/Main.elm", want: watcher.ChangeIgnored},
		{path: "/project/templates/base.yaml", want: watcher.ChangeIgnored},
		{path: "/other/config/routes.yaml", want: watcher.ChangeIgnored},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Classify(tt.path))
		})
	}
}

func TestMatcher_CustomPatterns(t *testing.T) {
	opts := domain.Options{
		ProjectRoot:     "/project",
		WatchFolders:    []string{"routes"},
		WatchExtensions: []string{".json"},
		ReloadTriggers:  []string{"config/bridge.yaml"},
	}

	m, err := watcher.NewMatcher(opts)
	require.NoError(t, err)

	assert.Equal(t, watcher.ChangeSource, m.Classify("/project/routes/api/v1.json"))
	assert.Equal(t, watcher.ChangeReload, m.Classify("/project/config/bridge.yaml"))
	assert.Equal(t, watcher.ChangeIgnored, m.Classify("/project/config/routes.yaml"))
}
