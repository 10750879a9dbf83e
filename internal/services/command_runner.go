package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"aruba/internal/domain"
	"aruba/internal/ports"
	"aruba/internal/rewrite"
	"aruba/internal/sandbox"
	"aruba/logging"
)

// DefaultShell runs every command line
const DefaultShell = "/bin/sh"

// AnnounceOptions selects what the runner publishes to its announcer
type AnnounceOptions struct {
	Cmd    bool
	Stderr bool
	Stdout bool
}

// CommandRunnerOptions configures a CommandRunner. Zero values pick defaults.
type CommandRunnerOptions struct {
	Announce    AnnounceOptions
	Announcer   ports.Announcer
	DefaultRuby string
	Rewriter    *rewrite.Rewriter
	Shell       string
}

// CommandRunner runs command lines inside the sandbox and remembers the last result
type CommandRunner struct {
	announce    AnnounceOptions
	announcer   ports.Announcer
	defaultRuby string
	env         []string
	lastResult  domain.Result
	rewriter    *rewrite.Rewriter
	sandbox     *sandbox.Sandbox
	shell       string
	toolchain   *domain.Toolchain
}

// Compile-time interface verification
var _ ports.CommandRunner = (*CommandRunner)(nil)

// NewCommandRunner creates a runner. toolchain is shared with ToolchainService
// and read on every run.
func NewCommandRunner(sb *sandbox.Sandbox, toolchain *domain.Toolchain, opts CommandRunnerOptions) *CommandRunner {
	if toolchain == nil {
		toolchain = &domain.Toolchain{}
	}
	if opts.Rewriter == nil {
		opts.Rewriter = rewrite.NewRewriter()
	}
	if opts.Shell == "" {
		opts.Shell = DefaultShell
	}
	if opts.DefaultRuby == "" {
		opts.DefaultRuby = rewrite.DefaultRuby()
	}

	return &CommandRunner{
		announce:    opts.Announce,
		announcer:   opts.Announcer,
		defaultRuby: opts.DefaultRuby,
		rewriter:    opts.Rewriter,
		sandbox:     sb,
		shell:       opts.Shell,
		toolchain:   toolchain,
	}
}

// SetAnnounce replaces the announce flags
func (r *CommandRunner) SetAnnounce(opts AnnounceOptions) {
	r.announce = opts
}

// Announcing returns the current announce flags
func (r *CommandRunner) Announcing() AnnounceOptions {
	return r.announce
}

// SetEnv adds an environment variable for every later run
func (r *CommandRunner) SetEnv(key, value string) {
	r.env = append(r.env, key+"="+value)
}

// LastResult returns the outcome of the most recent run
func (r *CommandRunner) LastResult() domain.Result {
	return r.lastResult
}

// CombinedOutput returns the last stdout and stderr joined by a separator
func (r *CommandRunner) CombinedOutput() string {
	return r.lastResult.CombinedOutput()
}

// Rewrite returns commandLine as it will be executed
func (r *CommandRunner) Rewrite(commandLine string) string {
	return r.rewriter.Rewrite(commandLine, rewrite.Interpreter(*r.toolchain, r.defaultRuby))
}

// Run executes commandLine through the shell inside the sandbox directory.
// Stdout is read through a pipe until the child closes it; stderr goes to a
// temp file. A nonzero exit is an error only when failOnError is set.
// The captured stderr is returned either way.
func (r *CommandRunner) Run(ctx context.Context, commandLine string, failOnError bool) (string, error) {
	cmdLine := r.Rewrite(commandLine)
	if r.announce.Cmd {
		r.say("$ " + cmdLine)
	}

	stderrFile, err := os.CreateTemp("", "aruba-stderr-*")
	if err != nil {
		return "", fmt.Errorf("failed to create stderr file: %w", err)
	}
	defer func() {
		stderrFile.Close()
		if err := os.Remove(stderrFile.Name()); err != nil {
			logging.Logger.Warn("Failed to remove stderr file", "path", stderrFile.Name(), "error", err)
		}
	}()

	var stdout string
	var exitCode int
	err = r.sandbox.InCurrentDir(func(dir string) error {
		logging.Logger.Debug("Running command", "command", cmdLine, "dir", dir)

		cmd := exec.CommandContext(ctx, r.shell, "-c", cmdLine)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(), r.env...)
		cmd.Stderr = stderrFile

		pipe, err := cmd.StdoutPipe()
		if err != nil {
			return fmt.Errorf("failed to open stdout pipe: %w", err)
		}
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("failed to start %q: %w", cmdLine, err)
		}

		out, readErr := io.ReadAll(pipe)
		stdout = string(out)
		if r.announce.Stdout {
			r.say(stdout)
		}

		exitCode, err = exitStatus(cmd.Wait())
		if err != nil {
			return fmt.Errorf("failed to wait for %q: %w", cmdLine, err)
		}
		if readErr != nil {
			return fmt.Errorf("failed to read stdout: %w", readErr)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	stderr, err := os.ReadFile(stderrFile.Name())
	if err != nil {
		return "", fmt.Errorf("failed to read stderr file: %w", err)
	}

	r.lastResult = domain.Result{
		Command:  cmdLine,
		ExitCode: exitCode,
		Stderr:   string(stderr),
		Stdout:   stdout,
	}
	if r.announce.Stderr {
		r.say(r.lastResult.Stderr)
	}

	logging.Logger.Debug("Command finished", "command", cmdLine, "exit_code", exitCode)

	if exitCode != 0 && failOnError {
		return r.lastResult.Stderr, &domain.CommandFailedError{
			Command:  cmdLine,
			ExitCode: exitCode,
			Output:   r.lastResult.CombinedOutput(),
		}
	}

	return r.lastResult.Stderr, nil
}

func (r *CommandRunner) say(msg string) {
	if r.announcer != nil {
		r.announcer.Announce(msg)
	}
}

// exitStatus maps the error from Wait to a raw exit code. Signals are not
// told apart from other failures.
func exitStatus(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
