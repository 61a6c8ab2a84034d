// Package config resolves client configuration for one invocation.
//
// Values are resolved flags-first: command-line flags (which already
// carry PWPUSH_* environment fallbacks) win over the optional ini file,
// which wins over built-in defaults. The resolved Config is read-only
// for the rest of the process.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"
	"gopkg.in/ini.v1"
)

// Built-in defaults matching the public pwpush.com instance.
const (
	DefaultURL      = "pwpush.com"
	DefaultProtocol = "https"
	DefaultTimeout  = 30 * time.Second
)

// Options carries the raw values collected from flags and environment.
type Options struct {
	URL      string
	Protocol string
	Email    string
	Token    string
	Timeout  time.Duration
}

// Config is the resolved, validated client configuration.
type Config struct {
	BaseURL string
	Email   string
	Token   string
	Timeout time.Duration
}

// Load resolves opts against the ini file defaults and validates the
// result. Partial credentials are demoted to anonymous access rather
// than failing the invocation.
func Load(opts Options) (*Config, error) {
	return load(opts, Path())
}

// Path returns the location of the defaults file. PWPUSH_CONFIG
// overrides the conventional location under the user config directory.
func Path() string {
	if p := os.Getenv("PWPUSH_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pwpush", "config.ini")
}

func load(opts Options, path string) (*Config, error) {
	defaults := fileDefaults(path)

	rawURL := lo.CoalesceOrEmpty(opts.URL, defaults.url, DefaultURL)
	protocol := lo.CoalesceOrEmpty(opts.Protocol, defaults.protocol, DefaultProtocol)
	email := lo.CoalesceOrEmpty(opts.Email, defaults.email)
	token := lo.CoalesceOrEmpty(opts.Token, defaults.token)

	if protocol != "http" && protocol != "https" {
		return nil, fmt.Errorf("invalid protocol %q (expected http or https)", protocol)
	}

	if (email == "") != (token == "") {
		slog.Warn("ignoring partial credentials, sending unauthenticated requests (both --email and --token are required)")
		email, token = "", ""
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Config{
		BaseURL: baseURL(rawURL, protocol),
		Email:   email,
		Token:   token,
		Timeout: timeout,
	}, nil
}

// baseURL combines protocol and instance URL into a single endpoint.
// A URL that already carries a scheme wins over the protocol option.
func baseURL(rawURL, protocol string) string {
	if strings.Contains(rawURL, "://") {
		return strings.TrimRight(rawURL, "/")
	}
	return protocol + "://" + strings.TrimRight(rawURL, "/")
}

type fileValues struct {
	url      string
	protocol string
	email    string
	token    string
}

func fileDefaults(path string) fileValues {
	if path == "" {
		return fileValues{}
	}

	file, err := ini.LooseLoad(path)
	if err != nil {
		slog.Warn("ignoring unreadable config file", "path", path, "error", err)
		return fileValues{}
	}

	section := file.Section("defaults")
	return fileValues{
		url:      section.Key("url").String(),
		protocol: section.Key("protocol").String(),
		email:    section.Key("email").String(),
		token:    section.Key("token").String(),
	}
}
