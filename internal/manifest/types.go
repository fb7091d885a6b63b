package manifest

import "github.com/quarry-analytics/quarry-cli/internal/drivers"

// FileName is the manifest file name inside a project directory.
const FileName = "package.json"

// InitialVersion is the version every freshly scaffolded app starts at.
const InitialVersion = "0.0.1"

// PackageManifest is the npm package manifest of a scaffolded app.
//
// Dependencies and DevDependencies are written by npm itself during install;
// they appear here so a read-back after installation round-trips.
type PackageManifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private"`
	Scripts         map[string]string `json:"scripts,omitempty"`
	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
	Java            *JavaConfig       `json:"java,omitempty"`
}

// JavaConfig carries Maven coordinates consumed by the node-java-maven
// install hook when the app uses the JDBC bridge driver.
type JavaConfig struct {
	Dependencies []drivers.MavenDependency `json:"dependencies"`
}

// New returns the initial manifest for a project: fixed initial version,
// private flag set, and the template's declared scripts.
func New(name string, scripts map[string]string) *PackageManifest {
	s := make(map[string]string, len(scripts))
	for k, v := range scripts {
		s[k] = v
	}
	return &PackageManifest{
		Name:    name,
		Version: InitialVersion,
		Private: true,
		Scripts: s,
	}
}
