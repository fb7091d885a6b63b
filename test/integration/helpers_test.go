//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupStubTools writes fake node and npm executables into a temp bin
// directory and prepends it to PATH, so the real npm client runs without a
// Node.js toolchain or network access.
//
// The npm stub logs each invocation (one line of arguments) to npm.log next
// to itself.
func setupStubTools(t *testing.T) (binDir, npmLog string) {
	t.Helper()

	binDir = t.TempDir()
	npmLog = filepath.Join(binDir, "npm.log")

	writeExecutable(t, filepath.Join(binDir, "node"), `#!/bin/sh
echo "v18.17.0"
`)
	writeExecutable(t, filepath.Join(binDir, "npm"), `#!/bin/sh
echo "$@" >> `+npmLog+`
exit 0
`)

	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return binDir, npmLog
}

func writeExecutable(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readLog(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	var lines []string
	for _, l := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
