package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultsValidate(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default().FPS, cfg.FPS)
	require.Equal(t, Default().Quote, cfg.Quote)
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	data := []byte(`
theme: dark
fps: 60
location: "den haag, nl"
effects:
  fake_count: 4
social:
  - label: sourcehut
    url: https://sr.ht
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "dark", cfg.Theme)
	require.Equal(t, 60, cfg.FPS)
	require.Equal(t, "den haag, nl", cfg.Location)
	require.Equal(t, 4, cfg.Effects.FakeCount)
	require.Len(t, cfg.Social, 1)
	require.Equal(t, "sourcehut", cfg.Social[0].Label)
	// untouched keys keep their defaults
	require.Equal(t, Default().Quote, cfg.Quote)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("FOLIO_THEME", "light")
	t.Setenv("FOLIO_FPS", "24")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "light", cfg.Theme)
	require.Equal(t, 24, cfg.FPS)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.Theme = "sepia"
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.FPS = 0
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Timezone = "Atlantis/Underwater"
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Effects.FakeCount = -1
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Effects.ShineIntervalMS = 0
	require.Error(t, cfg.Validate())
}

func TestFrameInterval(t *testing.T) {
	cfg := Default()
	cfg.FPS = 50
	require.Equal(t, "20ms", cfg.FrameInterval().String())
}
