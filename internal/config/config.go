package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/quarry-analytics/quarry-cli/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"

	// KeyTelemetry toggles anonymous usage events ("on"/"off", default on).
	KeyTelemetry = "telemetry"

	// KeyAnonymousID stores the generated anonymous machine identity.
	KeyAnonymousID = "anonymous_id"
)

// Dir returns the path to the Quarry config directory (~/.quarry/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.quarry/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// TelemetryEnabled reports whether anonymous usage events may be sent.
// Telemetry is on unless the user set it off (QUARRY_TELEMETRY=off also works).
func TelemetryEnabled() bool {
	return Get(KeyTelemetry) != "off"
}

// AnonymousID returns the stable anonymous machine identity, generating and
// persisting one on first use. Persistence failures fall back to a one-shot
// id so telemetry never blocks the caller.
func AnonymousID() string {
	if id := Get(KeyAnonymousID); id != "" {
		return id
	}
	id := uuid.NewString()
	_ = Set(KeyAnonymousID, id)
	return id
}
