// Package config loads the skill configuration from skill.conf (TOML), an
// optional .env file and the process environment. Precedence is environment
// over file over built-in defaults. Values inside the file may reference
// environment variables with the ${NAME:default} syntax.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// DefaultConfigFile is the config file name looked up in the working directory.
const DefaultConfigFile = "skill.conf"

// HTTPConfig holds the server-related configuration.
type HTTPConfig struct {
	Port            int      `toml:"port"`             // Port the skill listens on
	RequestsTimeout string   `toml:"requests_timeout"` // Per-request timeout, Go duration format
	CORSOrigins     []string `toml:"cors_origins"`     // Allowed CORS origins
}

// GetRequestsTimeout returns the per-request timeout as time.Duration.
func (h *HTTPConfig) GetRequestsTimeout() (time.Duration, error) {
	return time.ParseDuration(h.RequestsTimeout)
}

// GetRequestsTimeoutOrDefault returns the per-request timeout as
// time.Duration or panics if the value is invalid.
func (h *HTTPConfig) GetRequestsTimeoutOrDefault() time.Duration {
	d, err := h.GetRequestsTimeout()
	if err != nil {
		panic(fmt.Sprintf("invalid requests_timeout: %v", err))
	}
	return d
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	Scheme string `toml:"scheme"` // "basic", "bearer" or "none"
	User   string `toml:"user"`   // Basic auth user, the dialog manager sends "cvi"
	Key    string `toml:"key"`    // Basic auth password (API key)
	Secret string `toml:"secret"` // HMAC secret for bearer token validation
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // "json" or "human"
}

// I18NConfig holds localization configuration.
type I18NConfig struct {
	Dir string `toml:"dir"` // Directory holding {locale}.yaml / {locale}.po catalogs
}

// ServiceConfig holds the endpoint of one internal partner service.
type ServiceConfig struct {
	URL     string `toml:"url"`     // Base URL of the service
	Version int    `toml:"version"` // API version used in the URL path
}

// ConfigParam holds all configuration parameters for a skill.
type ConfigParam struct {
	// Skill identity
	Name        string `toml:"name"`        // Skill name, used in the default API base
	Title       string `toml:"title"`       // Human-readable title
	Description string `toml:"description"` // Human-readable description
	Version     int    `toml:"version"`     // Skill API version, used in the default API base
	SkillID     string `toml:"id"`          // Skill ID reported by the info endpoint

	APIBase string `toml:"api_base"` // Overrides the default /v{version}/{name} base
	Debug   bool   `toml:"debug"`    // Debug mode disables authentication

	HTTP     HTTPConfig               `toml:"http"`
	Auth     AuthConfig               `toml:"auth"`
	Log      LogConfig                `toml:"log"`
	I18N     I18NConfig               `toml:"i18n"`
	Services map[string]ServiceConfig `toml:"service"`

	Metrics bool `toml:"metrics"` // Expose the Prometheus endpoint
	Tracing bool `toml:"tracing"` // Start a span around each intent call
}

var cfg *ConfigParam

// Config returns the current configuration. Load or TestInit must have been
// called first.
func Config() *ConfigParam {
	return cfg
}

func defaults() *ConfigParam {
	return &ConfigParam{
		Name:    "skill",
		Version: 1,
		HTTP: HTTPConfig{
			Port:            4242,
			RequestsTimeout: "12s",
		},
		Auth: AuthConfig{
			Scheme: "basic",
			User:   "cvi",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		I18N: I18NConfig{
			Dir: "locale",
		},
		Services: map[string]ServiceConfig{},
		Metrics:  true,
		Tracing:  true,
	}
}

// Load reads the configuration from the given file path. A missing file is
// not an error: defaults plus environment apply. An unreadable or invalid
// file is.
func Load(path string) error {
	// .env is optional and only fills variables not already set
	_ = godotenv.Load()

	c := defaults()
	if path == "" {
		path = DefaultConfigFile
	}
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if _, err := toml.Decode(interpolate(string(raw)), c); err != nil {
			return fmt.Errorf("unable to parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// run on defaults
	default:
		return fmt.Errorf("unable to read %s: %w", path, err)
	}

	applyEnvOverrides(c)

	if err := validate(c); err != nil {
		return err
	}
	cfg = c
	return nil
}

// env override names, highest precedence
const (
	envName    = "SKILL_NAME"
	envVersion = "SKILL_VERSION"
	envPort    = "SKILL_HTTP_PORT"
	envAPIBase = "SKILL_API_BASE"
	envAPIKey  = "SKILL_API_KEY"
	envDebug   = "SKILL_DEBUG"
	envLevel   = "LOG_LEVEL"
	envFormat  = "LOG_FORMAT"
)

func applyEnvOverrides(c *ConfigParam) {
	if v := os.Getenv(envName); v != "" {
		c.Name = v
	}
	if v := os.Getenv(envVersion); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Version = n
		}
	}
	if v := os.Getenv(envPort); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.HTTP.Port = n
		}
	}
	if v := os.Getenv(envAPIBase); v != "" {
		c.APIBase = v
	}
	if v := os.Getenv(envAPIKey); v != "" {
		c.Auth.Key = v
	}
	if v := os.Getenv(envDebug); v != "" {
		c.Debug = v == "true" || v == "1"
	}
	if v := os.Getenv(envLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(envFormat); v != "" {
		c.Log.Format = v
	}
}

func validate(c *ConfigParam) error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if c.Version <= 0 {
		return fmt.Errorf("version must be positive")
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port out of range: %d", c.HTTP.Port)
	}
	if _, err := c.HTTP.GetRequestsTimeout(); err != nil {
		return fmt.Errorf("invalid http.requests_timeout: %v", err)
	}
	switch c.Auth.Scheme {
	case "basic", "bearer", "none":
	default:
		return fmt.Errorf("unknown auth.scheme: %s", c.Auth.Scheme)
	}
	if !c.Debug && c.Auth.Scheme == "basic" && c.Auth.Key == "" {
		return fmt.Errorf("auth.key is required outside debug mode")
	}
	return nil
}

// GetAPIBase returns the configured API base, falling back to the
// conventional /v{version}/{name} path.
func (c *ConfigParam) GetAPIBase() string {
	if c.APIBase != "" {
		return "/" + strings.Trim(c.APIBase, "/")
	}
	return fmt.Sprintf("/v%d/%s", c.Version, c.Name)
}

// GetSkillID returns the configured skill ID, falling back to the skill name.
func (c *ConfigParam) GetSkillID() string {
	if c.SkillID != "" {
		return c.SkillID
	}
	return c.Name
}

// Service returns the configuration of a named partner service and whether
// it is configured.
func (c *ConfigParam) Service(name string) (ServiceConfig, bool) {
	s, ok := c.Services[name]
	return s, ok
}

// TestInit installs a configuration for unit tests and returns it. Tests
// may mutate the returned value.
func TestInit() *ConfigParam {
	c := defaults()
	c.Name = "test_skill"
	c.Debug = true
	cfg = c
	return c
}
