package npm

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinNodeVersion is the semver constraint a local Node.js install must satisfy
// before scaffolding starts.
const MinNodeVersion = ">= 14.0.0"

// Client runs npm commands inside a project directory.
type Client struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Install runs `npm install --save <packages>` in dir. With no packages it
// runs a bare `npm install`, which re-resolves package.json and fires any
// declared install hook.
func (c *Client) Install(ctx context.Context, dir string, packages ...string) error {
	return c.run(ctx, dir, installArgs("--save", packages))
}

// InstallDev runs `npm install --save-dev <packages>` in dir.
func (c *Client) InstallDev(ctx context.Context, dir string, packages ...string) error {
	if len(packages) == 0 {
		return nil
	}
	return c.run(ctx, dir, installArgs("--save-dev", packages))
}

func installArgs(saveFlag string, packages []string) []string {
	args := []string{"install"}
	if len(packages) > 0 {
		args = append(args, saveFlag)
		args = append(args, packages...)
	}
	return args
}

func (c *Client) run(ctx context.Context, dir string, args []string) error {
	npmBin, err := exec.LookPath("npm")
	if err != nil {
		return fmt.Errorf("npm is required but was not found in PATH: %w", err)
	}

	cmd := exec.CommandContext(ctx, npmBin, args...)
	cmd.Dir = dir

	stdout := c.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := c.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("npm %s in %s: %w", strings.Join(args, " "), dir, err)
	}
	return nil
}

// CheckNodeVersion verifies that Node.js is installed and satisfies
// MinNodeVersion.
func CheckNodeVersion(ctx context.Context) error {
	nodeBin, err := exec.LookPath("node")
	if err != nil {
		return fmt.Errorf("Node.js is required but was not found in PATH: %w", err)
	}

	out, err := exec.CommandContext(ctx, nodeBin, "--version").Output()
	if err != nil {
		return fmt.Errorf("querying node version: %w", err)
	}

	return checkVersion(strings.TrimSpace(string(out)))
}

// checkVersion validates a raw `node --version` string (e.g. "v18.17.0")
// against MinNodeVersion.
func checkVersion(raw string) error {
	v, err := semver.NewVersion(strings.TrimPrefix(raw, "v"))
	if err != nil {
		return fmt.Errorf("parsing node version %q: %w", raw, err)
	}

	constraint, err := semver.NewConstraint(MinNodeVersion)
	if err != nil {
		return fmt.Errorf("parsing node version constraint: %w", err)
	}

	if !constraint.Check(v) {
		return fmt.Errorf("Node.js %s is too old: %s required", raw, MinNodeVersion)
	}
	return nil
}
