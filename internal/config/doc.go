// Package config manages user-level settings stored at ~/.quarry/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the telemetry opt-out and the anonymous machine identity.
package config
