package sandbox

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"aruba/internal/domain"
)

// CreateFile writes content to name, creating parent directories as needed
func (s *Sandbox) CreateFile(name, content string) error {
	return s.InCurrentDir(func(dir string) error {
		path := filepath.Join(dir, name)
		if err := Mkdir(filepath.Dir(path)); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
		return nil
	})
}

// AppendToFile appends content to name, creating the file if it is missing
func (s *Sandbox) AppendToFile(name, content string) error {
	return s.InCurrentDir(func(dir string) error {
		f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", name, err)
		}
		defer f.Close()

		if _, err := f.WriteString(content); err != nil {
			return fmt.Errorf("failed to append to %s: %w", name, err)
		}
		return nil
	})
}

// CreateDir creates name (and its parents) inside the sandbox
func (s *Sandbox) CreateDir(name string) error {
	return s.InCurrentDir(func(dir string) error {
		return Mkdir(filepath.Join(dir, name))
	})
}

// ReadFile returns the content of name. A missing file yields ErrFileNotFound.
func (s *Sandbox) ReadFile(name string) (string, error) {
	var content string
	err := s.InCurrentDir(func(dir string) error {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", name, domain.ErrFileNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		content = string(data)
		return nil
	})
	return content, err
}

// Clean removes the whole sandbox root
func (s *Sandbox) Clean() error {
	if err := os.RemoveAll(s.root); err != nil {
		return fmt.Errorf("failed to remove %s: %w", s.root, err)
	}
	return nil
}
