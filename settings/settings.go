// Package settings loads and validates process-wide configuration for the
// isminet client from environment variables, optionally layered over a YAML
// settings file. Validation happens once at load time; every invalid field is
// reported in a single aggregated error, and a loaded Settings value is
// immutable for the process lifetime.
package settings

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/isminet/isminet/observability"
)

// Environment variable names.
const (
	EnvAPIKey     = "UNIFI_API_KEY"
	EnvHost       = "UNIFI_HOST"
	EnvPort       = "UNIFI_PORT"
	EnvVerifySSL  = "UNIFI_VERIFY_SSL"
	EnvTimeout    = "UNIFI_TIMEOUT"
	EnvSite       = "UNIFI_SITE"
	EnvAPIVersion = "UNIFI_API_VERSION"
	EnvLogLevel   = "ISMINET_LOG_LEVEL"
	EnvDevMode    = "ISMINET_DEV_MODE"
	EnvLogToFile  = "ISMINET_LOG_TO_FILE"
)

// Defaults applied when the corresponding variable is unset.
const (
	DefaultPort    = 8443
	DefaultTimeout = 10
	DefaultSite    = "default"
)

// APIVersion selects the UniFi Network API generation.
type APIVersion string

const (
	V1 APIVersion = "v1"
	V2 APIVersion = "v2"
)

// Path returns the API path prefix for the version. Both generations are
// served under the same prefix; the version only affects request semantics.
func (v APIVersion) Path() string {
	return "/proxy/network/api"
}

var sitePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Settings is the validated process configuration.
type Settings struct {
	Host       string
	APIKey     string
	Port       int
	VerifySSL  bool
	Timeout    int // seconds
	Site       string
	APIVersion APIVersion

	LogLevel        string
	DevelopmentMode bool
	LogToFile       bool
}

// FieldError is one invalid configuration field.
type FieldError struct {
	Field  string
	Reason string
}

// ConfigError aggregates every invalid configuration field found during
// loading. It is fatal: a process must not start with one.
type ConfigError struct {
	FieldErrors []FieldError
}

func (e *ConfigError) Error() string {
	parts := make([]string, len(e.FieldErrors))
	for i, fe := range e.FieldErrors {
		parts[i] = fe.Field + ": " + fe.Reason
	}
	return "invalid configuration: " + strings.Join(parts, "; ")
}

// Fields returns the names of all invalid fields.
func (e *ConfigError) Fields() []string {
	fields := make([]string, len(e.FieldErrors))
	for i, fe := range e.FieldErrors {
		fields[i] = fe.Field
	}
	return fields
}

// IsConfigError reports whether err is a configuration error.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// fileSettings is the YAML settings file shape. Every field is optional;
// environment variables override anything set here.
type fileSettings struct {
	Host       *string `yaml:"host"`
	APIKey     *string `yaml:"api_key"`
	Port       *int    `yaml:"port"`
	VerifySSL  *bool   `yaml:"verify_ssl"`
	Timeout    *int    `yaml:"timeout"`
	Site       *string `yaml:"site"`
	APIVersion *string `yaml:"api_version"`
	LogLevel   *string `yaml:"log_level"`
	DevMode    *bool   `yaml:"dev_mode"`
	LogToFile  *bool   `yaml:"log_to_file"`
}

// Load builds Settings from the environment alone.
func Load() (*Settings, error) {
	return load(fileSettings{})
}

// LoadFile builds Settings from the YAML file at path layered under the
// environment: a variable set in the environment wins over the file. A
// missing file is not an error; a malformed one is.
func LoadFile(path string) (*Settings, error) {
	var fs fileSettings
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, errors.Wrapf(err, "failed to read settings file %s", path)
	default:
		if err := yaml.Unmarshal(data, &fs); err != nil {
			return nil, errors.Wrapf(err, "failed to parse settings file %s", path)
		}
	}
	return load(fs)
}

//nolint:gocyclo // one branch per configuration field
func load(fs fileSettings) (*Settings, error) {
	var invalid []FieldError
	fail := func(field, reason string) {
		invalid = append(invalid, FieldError{Field: field, Reason: reason})
	}

	s := &Settings{
		Port:       DefaultPort,
		Timeout:    DefaultTimeout,
		Site:       DefaultSite,
		APIVersion: V1,
		LogLevel:   "info",
		LogToFile:  true,
	}
	if fs.Port != nil {
		s.Port = *fs.Port
	}
	if fs.VerifySSL != nil {
		s.VerifySSL = *fs.VerifySSL
	}
	if fs.Timeout != nil {
		s.Timeout = *fs.Timeout
	}
	if fs.Site != nil {
		s.Site = *fs.Site
	}
	if fs.APIVersion != nil {
		s.APIVersion = APIVersion(*fs.APIVersion)
	}
	if fs.LogLevel != nil {
		s.LogLevel = *fs.LogLevel
	}
	if fs.DevMode != nil {
		s.DevelopmentMode = *fs.DevMode
	}
	if fs.LogToFile != nil {
		s.LogToFile = *fs.LogToFile
	}

	s.APIKey = stringOr(EnvAPIKey, deref(fs.APIKey))
	if s.APIKey == "" {
		fail("api_key", "required")
	}

	s.Host = strings.TrimSpace(stringOr(EnvHost, deref(fs.Host)))
	switch {
	case s.Host == "":
		fail("host", "required")
	case strings.Contains(s.Host, "://"):
		fail("host", "must not include a protocol scheme")
	}

	if v, ok := os.LookupEnv(EnvPort); ok {
		p, err := strconv.Atoi(v)
		if err != nil {
			fail("port", "not an integer")
		} else {
			s.Port = p
		}
	}
	if s.Port < 1 || s.Port > 65535 {
		fail("port", "must be between 1 and 65535")
	}

	if v, ok := os.LookupEnv(EnvVerifySSL); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			fail("verify_ssl", "not a boolean")
		} else {
			s.VerifySSL = b
		}
	}

	if v, ok := os.LookupEnv(EnvTimeout); ok {
		t, err := strconv.Atoi(v)
		if err != nil {
			fail("timeout", "not an integer")
		} else {
			s.Timeout = t
		}
	}
	if s.Timeout < 1 || s.Timeout > 300 {
		fail("timeout", "must be between 1 and 300 seconds")
	}

	if v, ok := os.LookupEnv(EnvSite); ok {
		s.Site = v
	}
	if len(s.Site) < 1 || len(s.Site) > 50 {
		fail("site", "must be 1 to 50 characters")
	} else if !sitePattern.MatchString(s.Site) {
		fail("site", "may contain only letters, digits, hyphens, and underscores")
	}

	if v, ok := os.LookupEnv(EnvAPIVersion); ok {
		s.APIVersion = APIVersion(strings.ToLower(v))
	}
	if s.APIVersion != V1 && s.APIVersion != V2 {
		fail("api_version", "must be v1 or v2")
	}

	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		s.LogLevel = v
	}
	s.LogLevel = strings.ToLower(s.LogLevel)
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		fail("log_level", "must be debug, info, warn, or error")
	}

	if v, ok := os.LookupEnv(EnvDevMode); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			fail("dev_mode", "not a boolean")
		} else {
			s.DevelopmentMode = b
		}
	}

	if v, ok := os.LookupEnv(EnvLogToFile); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			fail("log_to_file", "not a boolean")
		} else {
			s.LogToFile = b
		}
	}

	if len(invalid) > 0 {
		return nil, &ConfigError{FieldErrors: invalid}
	}
	return s, nil
}

func stringOr(env, fallback string) string {
	if v, ok := os.LookupEnv(env); ok {
		return v
	}
	return fallback
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// BaseURL is the controller root, https://host:port.
func (s *Settings) BaseURL() string {
	return fmt.Sprintf("https://%s:%d", s.Host, s.Port)
}

// APIURL is the controller root plus the version's API path prefix.
func (s *Settings) APIURL() string {
	return s.BaseURL() + s.APIVersion.Path()
}

// SitePath is the site-scoped API path, /api/s/{site}.
func (s *Settings) SitePath() string {
	return "/api/s/" + s.Site
}

// TimeoutDuration returns the request timeout as a time.Duration.
func (s *Settings) TimeoutDuration() time.Duration {
	return time.Duration(s.Timeout) * time.Second
}

// LoggerConfig maps the logging fields onto the observability package.
func (s *Settings) LoggerConfig() observability.Config {
	return observability.Config{
		Level:       s.LogLevel,
		Development: s.DevelopmentMode,
		LogToFile:   s.LogToFile,
	}
}

// Warning is a non-fatal note about a risky configuration combination.
type Warning struct {
	Message string
	Fields  []observability.Field
}

// Warnings reports risky but valid combinations: SSL verification disabled
// outside development mode, a large timeout, or the non-default API version.
func (s *Settings) Warnings() []Warning {
	var ws []Warning
	if !s.VerifySSL && !s.DevelopmentMode {
		ws = append(ws, Warning{
			Message: "SSL verification disabled outside development mode",
			Fields: []observability.Field{
				{Key: "verify_ssl", Value: s.VerifySSL},
				{Key: "dev_mode", Value: s.DevelopmentMode},
			},
		})
	}
	if s.Timeout > 60 {
		ws = append(ws, Warning{
			Message: "high timeout value configured",
			Fields:  []observability.Field{{Key: "timeout", Value: s.Timeout}},
		})
	}
	if s.APIVersion != V1 {
		ws = append(ws, Warning{
			Message: "non-default API version configured",
			Fields:  []observability.Field{{Key: "api_version", Value: string(s.APIVersion)}},
		})
	}
	return ws
}

// LogWarnings emits configuration warnings at warn level. Warnings are
// advisory and only logged in development mode.
func (s *Settings) LogWarnings(logger observability.Logger) {
	if !s.DevelopmentMode {
		return
	}
	for _, w := range s.Warnings() {
		logger.Warn(w.Message, w.Fields...)
	}
}
