package scaffold

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// secretBytes is the entropy of the generated API secret; hex-encoding it
// yields 128 characters.
const secretBytes = 64

// Environment parameterizes template file rendering. It is assembled once
// per invocation, after the database driver is resolved, and discarded when
// the files are written.
type Environment struct {
	ProjectName   string
	DBType        string
	APISecret     string
	DriverEnvVars []string
}

// NewEnvironment builds the render environment with a fresh API secret.
func NewEnvironment(projectName, dbType string, driverEnvVars []string) (*Environment, error) {
	secret, err := generateSecret()
	if err != nil {
		return nil, err
	}
	return &Environment{
		ProjectName:   projectName,
		DBType:        dbType,
		APISecret:     secret,
		DriverEnvVars: driverEnvVars,
	}, nil
}

func generateSecret() (string, error) {
	b := make([]byte, secretBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating API secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
