package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConf(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skill.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(envDebug, "true")
	require.NoError(t, Load(filepath.Join(t.TempDir(), "missing.conf")))

	c := Config()
	assert.Equal(t, "skill", c.Name)
	assert.Equal(t, 4242, c.HTTP.Port)
	assert.Equal(t, "/v1/skill", c.GetAPIBase())
	assert.Equal(t, 12*time.Second, c.HTTP.GetRequestsTimeoutOrDefault())
	assert.True(t, c.Metrics)
	assert.True(t, c.Tracing)
}

func TestLoadFile(t *testing.T) {
	path := writeConf(t, `
name = "weather"
title = "Weather skill"
version = 2
debug = true

[http]
port = 8080
requests_timeout = "5s"
cors_origins = ["https://example.com"]

[log]
level = "debug"
format = "human"

[service.location]
url = "https://service-location.example.com"
version = 1
`)
	require.NoError(t, Load(path))

	c := Config()
	assert.Equal(t, "weather", c.Name)
	assert.Equal(t, "/v2/weather", c.GetAPIBase())
	assert.Equal(t, "weather", c.GetSkillID())
	assert.Equal(t, 8080, c.HTTP.Port)
	assert.Equal(t, 5*time.Second, c.HTTP.GetRequestsTimeoutOrDefault())
	assert.Equal(t, []string{"https://example.com"}, c.HTTP.CORSOrigins)
	assert.Equal(t, "debug", c.Log.Level)

	svc, ok := c.Service("location")
	require.True(t, ok)
	assert.Equal(t, "https://service-location.example.com", svc.URL)
	assert.Equal(t, 1, svc.Version)

	_, ok = c.Service("notification")
	assert.False(t, ok)
}

func TestInterpolation(t *testing.T) {
	t.Setenv("WEATHER_API_KEY", "s3cret")
	path := writeConf(t, `
name = "weather"
version = 1

[auth]
scheme = "basic"
key = "${WEATHER_API_KEY}"

[http]
port = ${WEATHER_PORT:4242}
requests_timeout = "12s"
`)
	require.NoError(t, Load(path))

	c := Config()
	assert.Equal(t, "s3cret", c.Auth.Key)
	assert.Equal(t, 4242, c.HTTP.Port)
}

func TestEnvOverrides(t *testing.T) {
	path := writeConf(t, `
name = "weather"
version = 1
debug = true
`)
	t.Setenv(envName, "forecast")
	t.Setenv(envPort, "9090")
	t.Setenv(envAPIBase, "/custom/base/")
	require.NoError(t, Load(path))

	c := Config()
	assert.Equal(t, "forecast", c.Name)
	assert.Equal(t, 9090, c.HTTP.Port)
	assert.Equal(t, "/custom/base", c.GetAPIBase())
}

func TestValidation(t *testing.T) {
	t.Run("MissingKey", func(t *testing.T) {
		path := writeConf(t, `
name = "weather"
version = 1
`)
		assert.Error(t, Load(path))
	})

	t.Run("BadScheme", func(t *testing.T) {
		path := writeConf(t, `
name = "weather"
version = 1
debug = true

[auth]
scheme = "digest"
`)
		assert.Error(t, Load(path))
	})

	t.Run("BadTimeout", func(t *testing.T) {
		path := writeConf(t, `
name = "weather"
version = 1
debug = true

[http]
port = 4242
requests_timeout = "soon"
`)
		assert.Error(t, Load(path))
	})
}

func TestTestInit(t *testing.T) {
	c := TestInit()
	assert.True(t, c.Debug)
	assert.Same(t, c, Config())
}
