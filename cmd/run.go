package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"aruba/internal/domain"
	"aruba/internal/services"
)

// RunCmd runs a shell command inside the sandbox
type RunCmd struct {
	AllowFailure   bool   `help:"Exit 0 even when the command exits nonzero"`
	AnnounceCmd    bool   `help:"Print the command line before running it"`
	AnnounceStderr bool   `help:"Print stderr as soon as it is captured"`
	AnnounceStdout bool   `help:"Print stdout as soon as it is captured"`
	Command        string `arg:"" help:"Shell command line to run"`
	EmptyGemset    bool   `help:"Delete and recreate the gemset first (skipped when GOTGEMS is set)"`
	Gemset         string `help:"rvm gemset to use (requires --rvm to reset it)"`
	RVM            string `name:"rvm" help:"rvm ruby version, or an alias from the rvm config file"`
}

// Run executes the command and mirrors its output
func (r *RunCmd) Run(cli *CLI) error {
	container, err := NewContainer(cli)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	ctx := context.Background()
	if r.RVM != "" {
		if err := container.Toolchain.UseRVM(r.RVM); err != nil {
			return err
		}
	}
	if r.Gemset != "" {
		if err := container.Toolchain.UseRVMGemset(ctx, r.Gemset, r.EmptyGemset); err != nil {
			return fmt.Errorf("failed to select gemset %s: %w", r.Gemset, err)
		}
	}

	flags := services.AnnounceOptions{Cmd: r.AnnounceCmd, Stderr: r.AnnounceStderr, Stdout: r.AnnounceStdout}
	if flags != (services.AnnounceOptions{}) {
		container.Runner.SetAnnounce(flags)
	}
	announce := container.Runner.Announcing()

	_, runErr := container.Runner.Run(ctx, r.Command, !r.AllowFailure)

	var failed *domain.CommandFailedError
	if runErr != nil && !errors.As(runErr, &failed) {
		return runErr
	}

	result := container.Runner.LastResult()
	if !announce.Stdout {
		fmt.Fprint(os.Stdout, result.Stdout)
	}
	if !announce.Stderr {
		fmt.Fprint(os.Stderr, result.Stderr)
	}

	if failed != nil {
		return &ExitError{
			Code: failed.ExitCode,
			Err:  fmt.Errorf("%q exited with status %d: %w", failed.Command, failed.ExitCode, domain.ErrCommandFailed),
		}
	}
	return nil
}
