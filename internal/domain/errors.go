package domain

import (
	"errors"
	"fmt"
)

var (
	ErrAssertion          = errors.New("assertion failed")
	ErrCommandFailed      = errors.New("command failed")
	ErrFileNotFound       = errors.New("file not found")
	ErrMissingRubyVersion = errors.New("you haven't specified what ruby version rvm should use")
	ErrNotADirectory      = errors.New("not a directory")
)

// CommandFailedError is returned when a command that must succeed exits nonzero.
type CommandFailedError struct {
	Command  string
	ExitCode int
	Output   string
}

func (e *CommandFailedError) Error() string {
	return fmt.Sprintf("Exit status was %d. Output:\n%s", e.ExitCode, e.Output)
}

// Unwrap lets callers match with errors.Is(err, ErrCommandFailed)
func (e *CommandFailedError) Unwrap() error {
	return ErrCommandFailed
}
