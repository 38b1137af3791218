package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildDefaults(t *testing.T) {
	cfg, err := NewBuilder().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := Default()
	if diff := cmp.Diff(&want, cfg); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildWithEnvConfig(t *testing.T) {
	t.Setenv(EnvOrg, "someone")
	t.Setenv(EnvRepo, "something")
	t.Setenv(EnvAPIURL, "https://ghe.example.com/api/v3/")
	t.Setenv(EnvListenAddr, ":9000")

	cfg, err := NewBuilder().WithEnvConfig().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := &Config{
		Org:        "someone",
		Repo:       "something",
		APIURL:     "https://ghe.example.com/api/v3/",
		ListenAddr: ":9000",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildIgnoresEnvWithoutWithEnvConfig(t *testing.T) {
	t.Setenv(EnvOrg, "someone")

	cfg, err := NewBuilder().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if cfg.Org != DefaultOrg {
		t.Errorf("Expected org %q, got %q", DefaultOrg, cfg.Org)
	}
}

func TestBuildExplicitOverridesEnv(t *testing.T) {
	t.Setenv(EnvOrg, "env-org")
	t.Setenv(EnvRepo, "env-repo")
	t.Setenv(EnvAPIURL, "https://env.example.com/")

	cfg, err := NewBuilder().
		WithEnvConfig().
		WithRepository("flag-org/flag-repo").
		WithAPIURL("http://127.0.0.1:1234").
		WithListenAddr(":1").
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := &Config{
		Org:        "flag-org",
		Repo:       "flag-repo",
		APIURL:     "http://127.0.0.1:1234",
		ListenAddr: ":1",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildInvalid(t *testing.T) {
	tests := []struct {
		name    string
		builder *Builder
	}{
		{"bad repository", NewBuilder().WithRepository("no-slash")},
		{"ftp api url", NewBuilder().WithAPIURL("ftp://example.com/")},
		{"api url without host", NewBuilder().WithAPIURL("https://")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.builder.Build(); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestParseRepository(t *testing.T) {
	tests := []struct {
		in        string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{"deadelineurz/rustupolis", "deadelineurz", "rustupolis", false},
		{"a/b", "a", "b", false},
		{"rustupolis", "", "", true},
		{"a/b/c", "", "", true},
		{"/repo", "", "", true},
		{"owner/", "", "", true},
		{"", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			owner, repo, err := ParseRepository(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseRepository(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if owner != tt.wantOwner || repo != tt.wantRepo {
				t.Errorf("ParseRepository(%q) = (%q, %q), want (%q, %q)", tt.in, owner, repo, tt.wantOwner, tt.wantRepo)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Default(), false},
		{"empty org", Config{Repo: "r", APIURL: DefaultAPIURL}, true},
		{"empty repo", Config{Org: "o", APIURL: DefaultAPIURL}, true},
		{"org with slash", Config{Org: "o/x", Repo: "r", APIURL: DefaultAPIURL}, true},
		{"repo with space", Config{Org: "o", Repo: "r x", APIURL: DefaultAPIURL}, true},
		{"empty api url", Config{Org: "o", Repo: "r"}, true},
		{"http api url", Config{Org: "o", Repo: "r", APIURL: "http://localhost:8080/"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
