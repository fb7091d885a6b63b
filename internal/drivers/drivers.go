package drivers

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"go.yaml.in/yaml/v3"
)

const (
	// JDBCPackage is the generic bridge driver that connects through a JVM.
	JDBCPackage = "@quarry/jdbc-driver"

	// MavenHelperPackage resolves java.dependencies from package.json at
	// install time. Required whenever the JDBC bridge is installed.
	MavenHelperPackage = "node-java-maven"
)

//go:embed drivers.yaml
var rawRegistry []byte

// MavenDependency is a Maven artifact coordinate pulled in by the
// node-java-maven install hook.
type MavenDependency struct {
	GroupID    string `yaml:"group_id" json:"groupId"`
	ArtifactID string `yaml:"artifact_id" json:"artifactId"`
	Version    string `yaml:"version" json:"version"`
}

// JDBCDescriptor describes how a database type is served through the JDBC
// bridge. MavenDependency is nil for the generic "jdbc" type, where the user
// supplies the driver jar themselves.
type JDBCDescriptor struct {
	MavenDependency *MavenDependency `yaml:"maven_dependency"`
}

// Driver is one registry entry.
type Driver struct {
	Packages []string        `yaml:"packages"`
	EnvVars  []string        `yaml:"env_vars"`
	JDBC     *JDBCDescriptor `yaml:"jdbc"`
}

type registryFile struct {
	Drivers map[string]Driver `yaml:"drivers"`
}

var (
	loadOnce sync.Once
	loadErr  error
	registry map[string]Driver
)

func load() (map[string]Driver, error) {
	loadOnce.Do(func() {
		var f registryFile
		if err := yaml.Unmarshal(rawRegistry, &f); err != nil {
			loadErr = fmt.Errorf("parsing embedded driver registry: %w", err)
			return
		}
		registry = f.Drivers
	})
	return registry, loadErr
}

// Types returns the supported database type keys, sorted.
func Types() ([]string, error) {
	reg, err := load()
	if err != nil {
		return nil, err
	}
	types := make([]string, 0, len(reg))
	for t := range reg {
		types = append(types, t)
	}
	sort.Strings(types)
	return types, nil
}

// Lookup returns the registry entry for a database type.
func Lookup(dbType string) (*Driver, error) {
	reg, err := load()
	if err != nil {
		return nil, err
	}
	d, ok := reg[dbType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, dbType)
	}
	return &d, nil
}

// Packages resolves a database type to its npm driver package(s).
func Packages(dbType string) ([]string, error) {
	d, err := Lookup(dbType)
	if err != nil {
		return nil, err
	}
	return d.Packages, nil
}

// EnvVars returns the environment variable names the driver for dbType reads.
func EnvVars(dbType string) ([]string, error) {
	d, err := Lookup(dbType)
	if err != nil {
		return nil, err
	}
	return d.EnvVars, nil
}

// IsJDBC reports whether dbType resolves to the JDBC bridge driver.
func IsJDBC(dbType string) (bool, error) {
	d, err := Lookup(dbType)
	if err != nil {
		return false, err
	}
	for _, p := range d.Packages {
		if p == JDBCPackage {
			return true, nil
		}
	}
	return false, nil
}

// Descriptor returns the JDBC descriptor for a bridge-served database type.
// Types that resolve to the bridge but declare no descriptor are a registry
// defect surfaced as ErrNoJDBCDescriptor.
func Descriptor(dbType string) (*JDBCDescriptor, error) {
	d, err := Lookup(dbType)
	if err != nil {
		return nil, err
	}
	if d.JDBC == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoJDBCDescriptor, dbType)
	}
	return d.JDBC, nil
}
