package scaffold

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/quarry-analytics/quarry-cli/internal/drivers"
	"github.com/quarry-analytics/quarry-cli/internal/manifest"
	"github.com/quarry-analytics/quarry-cli/internal/templates"
)

// CoreServerPackage is installed into every scaffolded app.
const CoreServerPackage = "@quarry/server"

// mavenInstallScript becomes the manifest's install hook when the JDBC
// bridge driver needs Maven artifacts resolved.
const mavenInstallScript = "./node_modules/.bin/node-java-maven"

// CreateOptions are the inputs to a single create invocation. Immutable once
// constructed.
type CreateOptions struct {
	// ProjectName is the directory to create, relative to Dir. Must not
	// collide with an existing directory.
	ProjectName string

	// Template is a key into the template registry.
	Template string

	// DBType is a key into the driver registry. When empty, the user is
	// prompted to choose one.
	DBType string

	// Dir is the parent directory for the new project. Empty means the
	// current working directory. The pipeline never changes the process
	// working directory.
	Dir string
}

// Installer installs npm packages into a project directory.
type Installer interface {
	Install(ctx context.Context, dir string, packages ...string) error
	InstallDev(ctx context.Context, dir string, packages ...string) error
}

// Chooser presents a single-choice list prompt and returns the selected key.
// It is the pipeline's only suspension point requiring user input.
type Chooser interface {
	Choose(message string, options []string) (string, error)
}

// Events receives fire-and-forget usage events. Never on the critical path.
type Events interface {
	Event(name string, properties map[string]string)
}

// Scaffolder runs the create pipeline with injected collaborators so the
// pipeline can run non-interactively in tests and automation.
type Scaffolder struct {
	Installer Installer
	Chooser   Chooser
	Events    Events

	// Out receives progress output; defaults to os.Stdout.
	Out io.Writer
}

// Execute runs the create pipeline top to bottom. Every error is terminal:
// nothing is retried, and partially completed steps are not rolled back.
func (s *Scaffolder) Execute(ctx context.Context, opts CreateOptions) error {
	if opts.ProjectName == "" {
		return ErrEmptyProjectName
	}

	projectDir := filepath.Join(opts.Dir, opts.ProjectName)

	// Refuse to touch an existing directory.
	if _, err := os.Stat(projectDir); err == nil {
		return fmt.Errorf("%w: %s", ErrProjectExists, projectDir)
	}

	// Resolve the template before creating anything on disk.
	templateName := opts.Template
	if templateName == "" {
		templateName = templates.DefaultName
	}
	tmpl, err := templates.Get(templateName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(projectDir, 0755); err != nil {
		return fmt.Errorf("creating project directory %s: %w", projectDir, err)
	}

	// Initial manifest: name, fixed version, private flag, template scripts.
	m := manifest.New(opts.ProjectName, tmpl.Scripts)
	if err := manifest.Write(projectDir, m); err != nil {
		return err
	}

	s.printf("Installing %s...\n", CoreServerPackage)
	if err := s.Installer.Install(ctx, projectDir, CoreServerPackage); err != nil {
		return err
	}

	dbType, err := s.resolveDBType(opts.DBType)
	if err != nil {
		return err
	}

	driverPackages, err := drivers.Packages(dbType)
	if err != nil {
		return err
	}

	isJDBC, err := drivers.IsJDBC(dbType)
	if err != nil {
		return err
	}
	if isJDBC {
		// The bridge needs the Maven helper for its install hook.
		driverPackages = append(driverPackages, drivers.MavenHelperPackage)
	}

	s.printf("Installing %s driver...\n", dbType)
	if err := s.Installer.Install(ctx, projectDir, driverPackages...); err != nil {
		return err
	}

	if isJDBC {
		if err := s.applyJDBCDescriptor(ctx, projectDir, dbType, m); err != nil {
			return err
		}
	}

	envVars, err := drivers.EnvVars(dbType)
	if err != nil {
		return err
	}
	env, err := NewEnvironment(opts.ProjectName, dbType, envVars)
	if err != nil {
		return err
	}

	s.printf("Writing project files...\n")
	if err := writeTemplateFiles(ctx, projectDir, tmpl, env); err != nil {
		return err
	}

	if len(tmpl.Dependencies) > 0 {
		s.printf("Installing template dependencies...\n")
		if err := s.Installer.Install(ctx, projectDir, tmpl.Dependencies...); err != nil {
			return err
		}
	}
	if len(tmpl.DevDependencies) > 0 {
		s.printf("Installing template dev dependencies...\n")
		if err := s.Installer.InstallDev(ctx, projectDir, tmpl.DevDependencies...); err != nil {
			return err
		}
	}

	s.printWarnings(projectDir)
	s.printSuccess(opts.ProjectName)

	if s.Events != nil {
		s.Events.Event("create", map[string]string{
			"dbType":   dbType,
			"template": templateName,
		})
	}

	return nil
}

// resolveDBType returns the requested type, or asks the user to pick one
// from the driver registry when none was supplied.
func (s *Scaffolder) resolveDBType(requested string) (string, error) {
	if requested != "" {
		return requested, nil
	}

	types, err := drivers.Types()
	if err != nil {
		return "", err
	}
	choice, err := s.Chooser.Choose("Select database type", types)
	if err != nil {
		return "", fmt.Errorf("choosing database type: %w", err)
	}
	return choice, nil
}

// applyJDBCDescriptor looks up the database type's JDBC descriptor and, when
// it carries a Maven coordinate, merges the java block into the manifest,
// sets the Maven helper as the install hook, and re-runs installation so the
// hook fires.
func (s *Scaffolder) applyJDBCDescriptor(ctx context.Context, projectDir, dbType string, m *manifest.PackageManifest) error {
	desc, err := drivers.Descriptor(dbType)
	if err != nil {
		return err
	}
	if desc.MavenDependency == nil {
		return nil
	}

	m.Java = &manifest.JavaConfig{
		Dependencies: []drivers.MavenDependency{*desc.MavenDependency},
	}
	m.Scripts["install"] = mavenInstallScript

	if err := manifest.Write(projectDir, m); err != nil {
		return err
	}

	s.printf("Resolving JDBC dependencies...\n")
	return s.Installer.Install(ctx, projectDir)
}

// writeTemplateFiles renders every file the template declares and writes it
// under projectDir. Renders share no mutable state and target disjoint
// paths, so the writes run concurrently.
func writeTemplateFiles(ctx context.Context, projectDir string, tmpl *templates.Config, env *Environment) error {
	g, _ := errgroup.WithContext(ctx)

	for relPath := range tmpl.Files {
		relPath := relPath
		g.Go(func() error {
			content, err := tmpl.RenderFile(relPath, env)
			if err != nil {
				return err
			}

			outPath := filepath.Join(projectDir, relPath)
			if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
				return fmt.Errorf("creating directory for %s: %w", relPath, err)
			}
			if err := os.WriteFile(outPath, content, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			return nil
		})
	}

	return g.Wait()
}

// printWarnings validates the final manifest against its schema and reports
// issues without failing the run.
func (s *Scaffolder) printWarnings(projectDir string) {
	result, err := manifest.ValidateFile(projectDir)
	if err != nil {
		s.printf("Warning: could not validate %s: %v\n", manifest.FileName, err)
		return
	}
	for _, issue := range result.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		s.printf("Warning: %s: %s\n", manifest.FileName, msg)
	}
}

func (s *Scaffolder) printSuccess(projectName string) {
	s.printf("\n✓ %s created.\n\nNext steps:\n", projectName)
	s.printf("  1. cd %s\n", projectName)
	s.printf("  2. Update .env with your database credentials\n")
	s.printf("  3. Run 'npm run dev' to start the development server\n")
}

func (s *Scaffolder) printf(format string, args ...any) {
	out := s.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, format, args...)
}
