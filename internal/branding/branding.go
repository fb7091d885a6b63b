// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package before building; //go:embed
// bakes the values into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	HomeDir      string `yaml:"home_dir"`
	EnvPrefix    string `yaml:"env_prefix"`
	GoModule     string `yaml:"go_module"`
	GitHubRepo   string `yaml:"github_repo"`
	TelemetryURL string `yaml:"telemetry_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:      "quarry",
			DisplayName:  "Quarry",
			Description:  "Scaffold and manage Quarry analytics applications",
			HomeDir:      ".quarry",
			EnvPrefix:    "QUARRY",
			GoModule:     "github.com/quarry-analytics/quarry-cli",
			GitHubRepo:   "quarry-analytics/quarry-cli",
			TelemetryURL: "https://track.quarry.dev/t",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "quarry").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Quarry").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".quarry").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "QUARRY").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Used by release scripts, not at runtime.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// TelemetryURL returns the endpoint for anonymous usage events.
func TelemetryURL() string { load(); return defaults.TelemetryURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("DB_TYPE") → "QUARRY_DB_TYPE".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
