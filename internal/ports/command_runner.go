package ports

import "context"

// CommandRunner runs shell command lines inside the sandbox
type CommandRunner interface {
	// Run executes commandLine and returns the captured stderr.
	// With failOnError, a nonzero exit status is returned as an error.
	Run(ctx context.Context, commandLine string, failOnError bool) (string, error)
}

// FileCreator writes files inside the sandbox
type FileCreator interface {
	CreateFile(name, content string) error
}
