package harness

import "aruba/internal/domain"

// CommandResult holds the result of running a command
type CommandResult struct {
	Command  string
	ExitCode int
	Stderr   string
	Stdout   string
}

func newCommandResult(r domain.Result) CommandResult {
	return CommandResult{
		Command:  r.Command,
		ExitCode: r.ExitCode,
		Stderr:   r.Stderr,
		Stdout:   r.Stdout,
	}
}

// CombinedOutput returns stdout, then stderr after a separator line if any
func (r CommandResult) CombinedOutput() string {
	return domain.CombinedOutput(r.Stdout, r.Stderr)
}
