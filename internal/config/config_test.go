package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configYAML = `api:
  environment: development
  port: "8080"
gin:
  mode: test
backend:
  base_url: http://localhost:3000
session:
  cookie_name: event_management_session
  signing_key: test-secret
  max_age_hours: 168
`

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	conf, err := Load(writeConfigFile(t, configYAML))
	require.NoError(t, err)

	assert.Equal(t, "8080", conf.API.Port)
	assert.Equal(t, "http://localhost:3000", conf.Backend.BaseURL)
	assert.Equal(t, "event_management_session", conf.Session.CookieName)
	assert.Equal(t, 168, conf.Session.MaxAgeHours)
}

func TestLoad_BackendDefault(t *testing.T) {
	conf, err := Load(writeConfigFile(t, `api:
  port: "8080"
`))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", conf.Backend.BaseURL)
}

func TestLoad_FileChangeDoesNotMutateLoadedConfig(t *testing.T) {
	path := writeConfigFile(t, configYAML)

	conf, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "8080", conf.API.Port)

	changed := `api:
  environment: development
  port: "9999"
`
	require.NoError(t, os.WriteFile(path, []byte(changed), 0o644))

	// Give the watcher time to fire; the loaded struct must stay as it
	// was at Load time.
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, "8080", conf.API.Port)
}
