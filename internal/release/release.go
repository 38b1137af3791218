// Package release resolves the newest GitHub release of a repository into
// per-platform download URLs.
package release

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v57/github"
	"github.com/hashicorp/go-hclog"
)

// DefaultBaseURL is the public GitHub REST API endpoint.
const DefaultBaseURL = "https://api.github.com/"

// Asset name fragments that select a platform slot. Matching is case-sensitive.
const (
	linuxMarker   = "linux"
	macMarker     = "macos"
	windowsMarker = "windows"
)

// PlatformAssets holds the download URL of each desktop build of a release.
// A slot is empty when the release has no matching asset.
type PlatformAssets struct {
	Linux string `json:"linux"`
	Mac   string `json:"mac"`
	Win   string `json:"win"`
}

// Empty reports whether no slot was filled.
func (p PlatformAssets) Empty() bool {
	return p.Linux == "" && p.Mac == "" && p.Win == ""
}

// Resolver wraps the GitHub API client.
type Resolver struct {
	client *github.Client
	logger hclog.Logger
}

type options struct {
	httpClient *http.Client
	baseURL    string
	logger     hclog.Logger
}

// Option configures a Resolver.
type Option func(*options)

// WithHTTPClient sets the HTTP client used for API requests.
// The client's own timeout, if any, applies in addition to the request context.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithBaseURL points the resolver at a different API host, such as a
// GitHub Enterprise instance or a test server.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		o.baseURL = baseURL
	}
}

// WithLogger sets the logger. Without it the resolver logs nothing.
func WithLogger(l hclog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// NewResolver creates a new release resolver.
func NewResolver(opts ...Option) (*Resolver, error) {
	o := options{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(&o)
	}

	client := github.NewClient(o.httpClient)

	if o.baseURL != DefaultBaseURL {
		base, err := parseBaseURL(o.baseURL)
		if err != nil {
			return nil, err
		}
		client.BaseURL = base
	}

	logger := o.logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	return &Resolver{
		client: client,
		logger: logger.Named("release"),
	}, nil
}

// parseBaseURL parses an API root and ensures the trailing slash go-github requires.
func parseBaseURL(raw string) (*url.URL, error) {
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q: scheme and host are required", raw)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	return base, nil
}

// FetchLatestReleaseAssets lists the releases of org/repo and maps the assets
// of the newest one onto platform slots.
//
// The API returns releases newest first and only the first entry is used. A
// repository without releases yields a nil result and a nil error. Transport
// failures, non-2xx responses and undecodable bodies are returned as errors.
func (r *Resolver) FetchLatestReleaseAssets(ctx context.Context, org, repo string) (*PlatformAssets, error) {
	r.logger.Debug("listing releases", "org", org, "repo", repo)

	releases, _, err := r.client.Repositories.ListReleases(ctx, org, repo, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list releases for %s/%s: %w", org, repo, err)
	}

	if len(releases) == 0 {
		r.logger.Debug("no releases published", "org", org, "repo", repo)
		return nil, nil
	}

	assets := PlatformAssets{}
	if latest := releases[0]; latest != nil {
		r.logger.Debug("using newest release", "tag", latest.GetTagName(), "assets", len(latest.Assets))
		assets = mapAssets(latest.Assets, r.logger)
	}

	return &assets, nil
}

// MapAssets assigns release assets to platform slots by file name.
//
// Each asset goes to the first slot whose marker its name contains, checked
// in the order linux, macos, windows. When several assets match one slot the
// last of them wins. Assets matching no marker are ignored.
func MapAssets(assets []*github.ReleaseAsset) PlatformAssets {
	return mapAssets(assets, hclog.NewNullLogger())
}

func mapAssets(assets []*github.ReleaseAsset, logger hclog.Logger) PlatformAssets {
	var p PlatformAssets

	for _, asset := range assets {
		if asset == nil {
			continue
		}

		name := asset.GetName()
		downloadURL := asset.GetBrowserDownloadURL()

		var slot string
		switch {
		case strings.Contains(name, linuxMarker):
			p.Linux, slot = downloadURL, "linux"
		case strings.Contains(name, macMarker):
			p.Mac, slot = downloadURL, "mac"
		case strings.Contains(name, windowsMarker):
			p.Win, slot = downloadURL, "win"
		default:
			logger.Debug("ignoring asset", "name", name)
			continue
		}

		logger.Debug("assigned asset", "name", name, "slot", slot, "url", downloadURL)
	}

	return p
}
