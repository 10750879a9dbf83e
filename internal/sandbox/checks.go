package sandbox

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"aruba/internal/domain"
)

// IsFile reports whether path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDirectory reports whether path exists and is a directory
func IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Contains reports whether content holds partial as a literal substring
func Contains(content, partial string) bool {
	return strings.Contains(content, partial)
}

// Unescape decodes backslash escape sequences such as \n, \t and \u00e9.
// A bare double quote is rejected.
func Unescape(s string) (string, error) {
	unquoted, err := strconv.Unquote(`"` + strings.ReplaceAll(s, "\n", `\n`) + `"`)
	if err != nil {
		return "", fmt.Errorf("invalid escape sequence in %q: %w", s, err)
	}
	return unquoted, nil
}

// CheckFilePresence checks each path is (or is not) a regular file.
// The first path that fails is reported.
func (s *Sandbox) CheckFilePresence(paths []string, expectPresent bool) error {
	return s.checkPresence(paths, expectPresent, "file", IsFile)
}

// CheckDirectoryPresence checks each path is (or is not) a directory
func (s *Sandbox) CheckDirectoryPresence(paths []string, expectPresent bool) error {
	return s.checkPresence(paths, expectPresent, "directory", IsDirectory)
}

func (s *Sandbox) checkPresence(paths []string, expectPresent bool, kind string, exists func(string) bool) error {
	return s.InCurrentDir(func(string) error {
		for _, path := range paths {
			if exists(s.Path(path)) == expectPresent {
				continue
			}
			if expectPresent {
				return fmt.Errorf("expected %s to be a %s: %w", path, kind, domain.ErrAssertion)
			}
			return fmt.Errorf("expected %s not to be a %s: %w", path, kind, domain.ErrAssertion)
		}
		return nil
	})
}

// CheckFileContent checks whether file contains partial literally
func (s *Sandbox) CheckFileContent(file, partial string, expectMatch bool) error {
	content, err := s.ReadFile(file)
	if err != nil {
		return err
	}

	if Contains(content, partial) == expectMatch {
		return nil
	}
	if expectMatch {
		return fmt.Errorf("expected %s to contain %q, got:\n%s: %w", file, partial, content, domain.ErrAssertion)
	}
	return fmt.Errorf("expected %s not to contain %q, got:\n%s: %w", file, partial, content, domain.ErrAssertion)
}
