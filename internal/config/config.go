// Package config holds the resolved run configuration and the fatal
// configuration error type shared by the loaders and the spec builder.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the fully resolved configuration for one batch run.
// It is assembled once at process start from flags, environment and the
// OS keyring, then passed down explicitly so the pipeline stays pure.
type Config struct {
	// Token is the Octo API token sent with every request.
	Token string
	// APIURL is the base URL of the Octo automation API.
	APIURL string
	// ProxyFile is the path to the proxy CSV table.
	ProxyFile string
	// CookieFile is the path to the optional cookies JSON file.
	CookieFile string
	// Count is the number of profiles to create. Zero means one
	// profile per proxy row.
	Count int
	// TitlePrefix is prepended to the generated profile titles.
	TitlePrefix string
	// Timeout bounds each API request.
	Timeout time.Duration
	// Quiet disables the progress bar.
	Quiet bool
	// Debug enables verbose logging.
	Debug bool
}

// Sentinel errors for configuration validation.
var (
	// ErrMissingToken is returned when no API token could be resolved
	// from flags, environment or the OS keyring.
	ErrMissingToken = errors.New("no API token configured")
	// ErrFileNotFound is returned when a required input file does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrNoProxies is returned when the proxy table contains no rows.
	ErrNoProxies = errors.New("no proxies loaded")
	// ErrBadCount is returned when the profile count is not positive.
	ErrBadCount = errors.New("profile count must be positive")
)

// ConfigError marks a fatal configuration problem. It is always detected
// during the load/build phase, before any profile creation call is made,
// and aborts the whole run.
type ConfigError struct {
	// Source identifies the offending input (file path or setting name).
	Source string
	// Err is the underlying cause.
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Source, e.Err.Error())
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewError creates a ConfigError for the given source.
func NewError(source string, err error) *ConfigError {
	return &ConfigError{Source: source, Err: err}
}

// Errorf creates a ConfigError with a formatted cause.
func Errorf(source, format string, args ...interface{}) *ConfigError {
	return &ConfigError{Source: source, Err: fmt.Errorf(format, args...)}
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
