package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("LIFEWEEKS_API_KEY", "")
	t.Setenv("LIFEWEEKS_MODEL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "lifeweeks", cfg.Name)
	assert.Equal(t, "gemini-2.5-flash", cfg.Provider.Model)
	assert.Equal(t, "auto", cfg.UI.Theme)
	assert.Empty(t, cfg.Provider.APIKey)
}

func TestLoad_MalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: [not a map"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("LIFEWEEKS_API_KEY", "")
	t.Setenv("LIFEWEEKS_MODEL", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := DefaultConfig()
	cfg.Provider.Model = "gemini-2.5-pro"
	cfg.Provider.Timeout = "45s"
	cfg.UI.Theme = "dark"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-pro", loaded.Provider.Model)
	assert.Equal(t, 45*time.Second, loaded.Provider.TimeoutDuration())
	assert.Equal(t, "dark", loaded.UI.Theme)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("LIFEWEEKS_API_KEY", "")
	t.Setenv("LIFEWEEKS_MODEL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "gemini-key", cfg.Provider.APIKey)

	// The app-specific variable wins over the shared one.
	t.Setenv("LIFEWEEKS_API_KEY", "lifeweeks-key")
	t.Setenv("LIFEWEEKS_MODEL", "gemini-exp")
	cfg, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "lifeweeks-key", cfg.Provider.APIKey)
	assert.Equal(t, "gemini-exp", cfg.Provider.Model)
}

func TestTimeoutDuration_Fallback(t *testing.T) {
	for _, raw := range []string{"", "soon", "-5s", "0s"} {
		p := ProviderConfig{Timeout: raw}
		assert.Equal(t, 2*time.Minute, p.TimeoutDuration(), "timeout %q", raw)
	}
}
