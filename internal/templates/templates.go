package templates

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"sort"
	"text/template"
)

//go:embed files
var templateFS embed.FS

// DefaultName is the template used when the user does not pick one.
const DefaultName = "express"

// Config describes one project template: the npm scripts baked into the
// generated package.json, the files the scaffolder renders (output path →
// embedded template name), and extra dependency lists installed after the
// files are written.
type Config struct {
	Scripts         map[string]string
	Files           map[string]string
	Dependencies    []string
	DevDependencies []string

	// dir is the embedded directory the Files entries resolve against.
	dir string
}

var registry = map[string]*Config{
	"express": {
		Scripts: map[string]string{"dev": "node index.js"},
		Files: map[string]string{
			"index.js": "index.js.tmpl",
			".env":     "env.tmpl",
		},
		dir: "express",
	},
	"serverless": {
		Scripts: map[string]string{"dev": "node index.js"},
		Files: map[string]string{
			"index.js":       "index.js.tmpl",
			"serverless.yml": "serverless.yml.tmpl",
			".env":           "env.tmpl",
		},
		DevDependencies: []string{"serverless"},
		dir:             "serverless",
	},
	"docker": {
		Scripts: map[string]string{"dev": "node index.js"},
		Files: map[string]string{
			"index.js":           "index.js.tmpl",
			"Dockerfile":         "Dockerfile.tmpl",
			"docker-compose.yml": "docker-compose.yml.tmpl",
			".env":               "env.tmpl",
		},
		dir: "docker",
	},
}

// Get returns the registry entry for a template key.
func Get(name string) (*Config, error) {
	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	return c, nil
}

// Names returns the registered template keys, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// RenderFile renders the template behind the given output path with data.
// Rendering is a pure function of data; it touches no filesystem state.
func (c *Config) RenderFile(outPath string, data any) ([]byte, error) {
	tmplName, ok := c.Files[outPath]
	if !ok {
		return nil, fmt.Errorf("template declares no file %q", outPath)
	}

	tmplPath := path.Join("files", c.dir, tmplName)
	raw, err := templateFS.ReadFile(tmplPath)
	if err != nil {
		return nil, fmt.Errorf("reading embedded template %s: %w", tmplPath, err)
	}

	tmpl, err := template.New(tmplName).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", tmplName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", tmplName, err)
	}
	return buf.Bytes(), nil
}
