package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/esb/internal/adapters/config"
	"go.trai.ch/esb/internal/core/domain"
)

func TestElmVersion(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "0.19.1", want: domain.ElmVersion019},
		{raw: "0.19.0", want: domain.ElmVersion019},
		{raw: "0.18.0", want: domain.ElmVersion018},
		{raw: "0.19.0 <= v < 0.20.0", want: domain.ElmVersion019},
		{raw: "0.18.0 <= v < 0.19.0", want: domain.ElmVersion018},
		{raw: "0.17.0 <= v < 0.18.0", wantErr: true},
		{raw: "0.17.1", wantErr: true},
		{raw: "latest", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := config.ElmVersionExported(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrElmVersionUnknown)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveEnv_LocalWins(t *testing.T) {
	resolved := config.ResolveEnvExported(
		map[string]string{"FOO": "A"},
		map[string]string{"A": "1"},
		map[string]string{"A": "2"},
	)

	require.NotNil(t, resolved["FOO"])
	assert.Equal(t, "2", *resolved["FOO"])
}

func TestResolveEnv_EmptyLocalHidesBase(t *testing.T) {
	resolved := config.ResolveEnvExported(
		map[string]string{"FOO": "A", "BAR": "B"},
		map[string]string{"A": "1", "B": "2"},
		map[string]string{"A": ""},
	)

	require.Contains(t, resolved, "FOO")
	assert.Nil(t, resolved["FOO"])
	require.NotNil(t, resolved["BAR"])
	assert.Equal(t, "2", *resolved["BAR"])
}
