package harness

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"aruba/logging"
)

type build struct {
	err  error
	once sync.Once
	path string
}

var (
	buildsMu sync.Mutex
	builds   = map[string]*build{}
)

// BuildBinary compiles the main package at pkg (relative to the module root,
// e.g. "." or "./cmd/tool") once per test run and returns the binary path.
// Call it from TestMain and pair it with CleanupBinaries.
func BuildBinary(pkg string) (string, error) {
	buildsMu.Lock()
	b, ok := builds[pkg]
	if !ok {
		b = &build{}
		builds[pkg] = b
	}
	buildsMu.Unlock()

	b.once.Do(func() {
		b.path, b.err = compile(pkg)
	})

	return b.path, b.err
}

// CleanupBinaries removes every binary built by BuildBinary
func CleanupBinaries() {
	buildsMu.Lock()
	defer buildsMu.Unlock()

	for pkg, b := range builds {
		if b.path == "" {
			continue
		}
		if err := os.RemoveAll(filepath.Dir(b.path)); err != nil {
			logging.Logger.Warn("Failed to cleanup binary directory", "pkg", pkg, "error", err)
		}
	}
	builds = map[string]*build{}
}

func compile(pkg string) (string, error) {
	tempDir, err := os.MkdirTemp("", "aruba-build-*")
	if err != nil {
		return "", err
	}

	projectRoot, err := findProjectRoot()
	if err != nil {
		return "", err
	}

	name := filepath.Base(filepath.Join(projectRoot, pkg))
	binaryPath := filepath.Join(tempDir, name)

	cmd := exec.Command("go", "build", "-o", binaryPath, pkg)
	cmd.Dir = projectRoot
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to build %s: %w", pkg, err)
	}
	return binaryPath, nil
}

// findProjectRoot uses go list to find the module root directory.
func findProjectRoot() (string, error) {
	cmd := exec.Command("go", "list", "-m", "-f", "{{.Dir}}")
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
