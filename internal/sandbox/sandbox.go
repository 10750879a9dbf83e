// Package sandbox manages the scratch directory tree that commands and file
// helpers operate in. The directory is always passed explicitly; the process
// working directory is never changed.
package sandbox

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"aruba/internal/domain"
	"aruba/logging"
)

// DefaultRoot is the scratch root used when none is configured
const DefaultRoot = "tmp/aruba"

// Sandbox is an ordered stack of path segments under a fixed root
type Sandbox struct {
	dirs []string
	root string
}

// New creates a sandbox rooted at root (DefaultRoot when empty)
func New(root string) *Sandbox {
	if root == "" {
		root = DefaultRoot
	}
	return &Sandbox{root: root}
}

// Root returns the scratch root
func (s *Sandbox) Root() string {
	return s.root
}

// CurrentDir returns the root joined with every segment appended so far
func (s *Sandbox) CurrentDir() string {
	return filepath.Join(append([]string{s.root}, s.dirs...)...)
}

// Cd descends into dir. The directory does not have to exist yet (it is
// created by the next InCurrentDir), but an existing non-directory is rejected
// and the segment is not kept.
func (s *Sandbox) Cd(dir string) error {
	next := filepath.Join(s.CurrentDir(), dir)

	info, err := os.Stat(next)
	if err == nil && !info.IsDir() {
		return fmt.Errorf("%s: %w", next, domain.ErrNotADirectory)
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", next, err)
	}

	s.dirs = append(s.dirs, dir)
	logging.Logger.Debug("Changed sandbox directory", "dir", next)
	return nil
}

// InCurrentDir makes sure the current directory exists and calls action with it
func (s *Sandbox) InCurrentDir(action func(dir string) error) error {
	dir := s.CurrentDir()
	if err := Mkdir(dir); err != nil {
		return err
	}
	return action(dir)
}

// Path resolves name relative to the current directory
func (s *Sandbox) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.CurrentDir(), name)
}

// Mkdir creates dir and any missing parents. Existing directories are left alone.
func Mkdir(dir string) error {
	if IsDirectory(dir) {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
