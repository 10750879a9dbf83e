package domain

import "strings"

// SeparatorWidth is the width of the dashed line between stdout and stderr
const SeparatorWidth = 70

// Result is the outcome of the most recent command run
type Result struct {
	Command  string
	ExitCode int
	Stderr   string
	Stdout   string
}

// Success reports whether the command exited with status 0
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// CombinedOutput returns stdout followed by stderr, separated by a dashed line
func (r Result) CombinedOutput() string {
	return CombinedOutput(r.Stdout, r.Stderr)
}

// CombinedOutput joins stdout and stderr the way failure messages show them.
// stdout is returned unchanged when stderr is empty.
func CombinedOutput(stdout, stderr string) string {
	if stderr == "" {
		return stdout
	}
	return stdout + "\n" + strings.Repeat("-", SeparatorWidth) + "\n" + stderr
}
