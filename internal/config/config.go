// Package config holds runtime configuration for the download tooling.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/deadelineurz/rustupolis-downloads/internal/release"
)

// Defaults.
const (
	DefaultOrg        = "deadelineurz"
	DefaultRepo       = "rustupolis"
	DefaultAPIURL     = release.DefaultBaseURL
	DefaultListenAddr = "127.0.0.1:8080"
)

// Environment variables read by WithEnvConfig.
const (
	EnvOrg        = "RUSTUPOLIS_ORG"
	EnvRepo       = "RUSTUPOLIS_REPO"
	EnvAPIURL     = "RUSTUPOLIS_API_URL"
	EnvListenAddr = "RUSTUPOLIS_LISTEN_ADDR"
)

// Config is the resolved configuration.
type Config struct {
	Org        string
	Repo       string
	APIURL     string
	ListenAddr string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Org:        DefaultOrg,
		Repo:       DefaultRepo,
		APIURL:     DefaultAPIURL,
		ListenAddr: DefaultListenAddr,
	}
}

// Builder provides a fluent interface for constructing a Config.
// Explicit setters take precedence over the environment.
type Builder struct {
	useEnv     bool
	repository string
	apiURL     string
	listenAddr string
}

// NewBuilder creates a new config builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithEnvConfig enables loading configuration from environment variables.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithRepository sets the repository in owner/repo form. An empty value is ignored.
func (b *Builder) WithRepository(repository string) *Builder {
	b.repository = repository
	return b
}

// WithAPIURL sets the API base URL. An empty value is ignored.
func (b *Builder) WithAPIURL(apiURL string) *Builder {
	b.apiURL = apiURL
	return b
}

// WithListenAddr sets the server listen address. An empty value is ignored.
func (b *Builder) WithListenAddr(addr string) *Builder {
	b.listenAddr = addr
	return b
}

// Build constructs and validates the Config.
func (b *Builder) Build() (*Config, error) {
	cfg := Default()

	if b.useEnv {
		if v := os.Getenv(EnvOrg); v != "" {
			cfg.Org = v
		}
		if v := os.Getenv(EnvRepo); v != "" {
			cfg.Repo = v
		}
		if v := os.Getenv(EnvAPIURL); v != "" {
			cfg.APIURL = v
		}
		if v := os.Getenv(EnvListenAddr); v != "" {
			cfg.ListenAddr = v
		}
	}

	if b.repository != "" {
		owner, repo, err := ParseRepository(b.repository)
		if err != nil {
			return nil, err
		}
		cfg.Org, cfg.Repo = owner, repo
	}
	if b.apiURL != "" {
		cfg.APIURL = b.apiURL
	}
	if b.listenAddr != "" {
		cfg.ListenAddr = b.listenAddr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseRepository parses owner/repo format.
func ParseRepository(repository string) (owner, repo string, err error) {
	parts := strings.Split(repository, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid repository %q, expected owner/repo", repository)
	}
	return parts[0], parts[1], nil
}

// Validate checks that the configuration can address a repository.
func (c *Config) Validate() error {
	if err := validateName("organisation", c.Org); err != nil {
		return err
	}
	if err := validateName("repository", c.Repo); err != nil {
		return err
	}
	return validateAPIURL(c.APIURL)
}

func validateName(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("empty %s name", kind)
	}
	if strings.ContainsAny(name, "/ ") {
		return fmt.Errorf("invalid %s name %q", kind, name)
	}
	return nil
}

// validateAPIURL accepts http and https URLs with a host.
func validateAPIURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("empty API URL")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid API URL: %w", err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "https" && scheme != "http" {
		return fmt.Errorf("invalid API URL protocol (only http:// and https:// allowed): %q", parsed.Scheme)
	}

	if parsed.Host == "" {
		return fmt.Errorf("API URL must have a hostname")
	}

	return nil
}
